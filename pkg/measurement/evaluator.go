// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package measurement

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/register"
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/set"
	log "github.com/sirupsen/logrus"
)

// DefaultImaginaryTolerance is the largest imaginary part permitted for the
// expectation value of an operator.
const DefaultImaginaryTolerance = 1e-8

// FLIPPED_SUFFIX is appended to the name of a bit register to give the name of
// its partner register, measured with inverted readout.
const FLIPPED_SUFFIX = "_flipped"

// Evaluator turns the registers produced by running the circuits of a
// measurement into expectation values.  An evaluator holds no mutable state
// (other than a cache of parsed expressions, which is safe for concurrent
// use), hence it can be used from any number of goroutines at once.
type Evaluator struct {
	// Largest permitted imaginary part for operator expectation values.  A
	// negative tolerance disables the check.
	imaginaryTolerance float64
	// Whether registers contributing to one evaluation must hold the same
	// number of shots.
	strictShotCounts bool
	// Cache of parsed symbolic expressions.
	cache *calculator.Cache
}

// NewEvaluator constructs an evaluator with a given configuration.
func NewEvaluator(imaginaryTolerance float64, strictShotCounts bool, cache *calculator.Cache) *Evaluator {
	return &Evaluator{imaginaryTolerance, strictShotCounts, cache}
}

// DefaultEvaluator constructs an evaluator with the default configuration.
func DefaultEvaluator() *Evaluator {
	return NewEvaluator(DefaultImaginaryTolerance, true, calculator.NewCache(calculator.DefaultCacheSize))
}

// Evaluate the registers produced by running the circuits of a measurement.
// For measurements which only collect registers, there is no result.
func (e *Evaluator) Evaluate(m Measurement, regs register.Registers) (util.Option[map[string]float64], error) {
	var (
		result map[string]float64
		err    error
	)
	//
	switch m := m.(type) {
	case *PauliZProduct:
		result, err = e.EvaluatePauliZProduct(&m.Input, regs.Bits)
	case *CheatedPauliZProduct:
		result, err = e.EvaluateCheatedPauliZProduct(&m.Input, regs.Floats)
	case *Cheated:
		result, err = e.EvaluateCheated(&m.Input, regs.Complexes)
	case *ClassicalRegister:
		return util.None[map[string]float64](), nil
	default:
		return util.None[map[string]float64](), fmt.Errorf("unknown measurement %T", m)
	}
	//
	if err != nil {
		return util.None[map[string]float64](), err
	}
	//
	log.Debugf("evaluated %d expectation values from %T", len(result), m)
	//
	return util.Some(result), nil
}

// EvaluatePauliZProduct computes expectation values from bit registers.  The
// value of each Pauli product is the mean over all shots of its parity (+1 or
// -1), where values for the same index under different registers are summed.
// With flipped measurement, the mean for each register is averaged with that
// of its flipped partner.
func (e *Evaluator) EvaluatePauliZProduct(input *PauliZProductInput,
	bits map[string]register.BitRegister) (map[string]float64, error) {
	var (
		products   = make([]float64, input.NumberPauliProducts)
		extensions = []string{""}
		shots      = newShotCounter(e.strictShotCounts)
	)
	//
	if input.UseFlippedMeasurement {
		extensions = append(extensions, FLIPPED_SUFFIX)
	}
	//
	for _, name := range util.SortedKeys(input.PauliProductQubitMasks) {
		masks := input.PauliProductQubitMasks[name]
		// Flipped registers are only read as partners of their base register.
		if input.UseFlippedMeasurement && strings.HasSuffix(name, FLIPPED_SUFFIX) {
			continue
		}
		//
		for _, index := range util.SortedKeys(masks) {
			if index >= input.NumberPauliProducts {
				return nil, &roqoqo.PauliProductIndexError{Index: index, NumberPauliProducts: input.NumberPauliProducts}
			}
		}
		//
		for pass, ext := range extensions {
			regName := name + ext
			//
			reg, ok := bits[regName]
			if !ok {
				return nil, &roqoqo.MissingRegisterError{Name: regName}
			} else if err := shots.check(regName, reg.Shots()); err != nil {
				return nil, err
			}
			//
			means, err := parityMeans(regName, reg, masks, pass == 1)
			if err != nil {
				return nil, err
			}
			//
			for index, mean := range means {
				products[index] += mean / float64(len(extensions))
			}
		}
	}
	//
	return evaluateExpVals(input.MeasuredExpVals, products, e.cache)
}

// Computes the mean parity of each masked set of bits over all shots.  For a
// flipped register each bit is inverted before computing its parity.
func parityMeans(name string, reg register.BitRegister, masks map[uint]set.SortedSet[uint],
	flipped bool) (map[uint]float64, error) {
	width, err := reg.Width(name)
	if err != nil {
		return nil, err
	}
	//
	means := make(map[uint]float64, len(masks))
	//
	for index, mask := range masks {
		if q, ok := mask.Max(); ok && q >= uint(width) {
			return nil, &roqoqo.MismatchedRegisterDimensionError{Name: name, Dim: uint(width), NumberQubits: q + 1}
		}
		//
		sum := 0.0
		//
		for _, shot := range reg {
			parity := false
			//
			for _, q := range mask {
				if shot[q] != flipped {
					parity = !parity
				}
			}
			//
			if parity {
				sum--
			} else {
				sum++
			}
		}
		//
		means[index] = sum / float64(len(reg))
	}
	//
	return means, nil
}

// EvaluateCheatedPauliZProduct computes expectation values from float
// registers, where the first entry of the first shot of each register holds
// the value of its Pauli product.
func (e *Evaluator) EvaluateCheatedPauliZProduct(input *CheatedPauliZProductInput,
	floats map[string]register.FloatRegister) (map[string]float64, error) {
	n := input.NumberPauliProducts()
	products := make([]float64, n)
	//
	for _, name := range util.SortedKeys(input.PauliProductKeys) {
		index := input.PauliProductKeys[name]
		//
		if index >= n {
			return nil, &roqoqo.PauliProductIndexError{Index: index, NumberPauliProducts: n}
		}
		//
		reg, ok := floats[name]
		if !ok {
			return nil, &roqoqo.MissingRegisterError{Name: name}
		} else if len(reg) == 0 || len(reg[0]) == 0 {
			return nil, &roqoqo.EmptyRegisterError{Name: name}
		}
		//
		products[index] = reg[0][0]
	}
	//
	return evaluateExpVals(input.MeasuredExpVals, products, e.cache)
}

// EvaluateCheated computes the expectation value of each operator, averaged
// over the shots of its complex register.  Each shot is either a state vector
// (of length 2^n) or a row-major density matrix (of length 4^n).
func (e *Evaluator) EvaluateCheated(input *CheatedInput,
	complexes map[string]register.ComplexRegister) (map[string]float64, error) {
	var (
		result = make(map[string]float64, len(input.MeasuredOperators))
		shots  = newShotCounter(e.strictShotCounts)
	)
	//
	for _, name := range util.SortedKeys(input.MeasuredOperators) {
		op := input.MeasuredOperators[name]
		//
		reg, ok := complexes[op.Readout]
		if !ok {
			return nil, &roqoqo.MissingRegisterError{Name: op.Readout}
		} else if err := shots.check(op.Readout, reg.Shots()); err != nil {
			return nil, err
		}
		//
		sum := complex128(0)
		//
		for _, shot := range reg {
			value, err := expectationValue(op, shot, input.NumberQubits)
			if err != nil {
				return nil, err
			}
			//
			sum += value
		}
		//
		mean := sum / complex(float64(len(reg)), 0)
		//
		if e.imaginaryTolerance >= 0 && math.Abs(imag(mean)) > e.imaginaryTolerance {
			return nil, &roqoqo.ImaginaryResidueError{Name: name, Residue: imag(mean), Tolerance: e.imaginaryTolerance}
		}
		//
		result[name] = real(mean)
	}
	//
	log.Debugf("evaluated %d operators over %d qubits", len(result), input.NumberQubits)
	//
	return result, nil
}

// Computes the expectation value of a sparse operator for a single shot,
// which is either a state vector ψ giving <ψ|O|ψ>, or a density matrix ρ giving
// Tr(ρO).
func expectationValue(op CheatedOperator, shot []complex128, numberQubits uint) (complex128, error) {
	var (
		value = complex128(0)
		dim   = hilbertDimension(numberQubits)
	)
	//
	for _, entry := range op.Operator {
		if uint64(entry.Row) >= dim || uint64(entry.Col) >= dim {
			return 0, &roqoqo.MismatchedOperatorDimensionError{Row: entry.Row, Column: entry.Col,
				NumberQubits: numberQubits}
		}
	}
	//
	switch {
	case dim > 0 && uint64(len(shot)) == dim:
		for _, entry := range op.Operator {
			value += cmplx.Conj(shot[entry.Row]) * entry.Value * shot[entry.Col]
		}
	case dim > 0 && dim <= math.MaxUint32 && uint64(len(shot)) == dim*dim:
		// Tr(ρO) = Σ_ij ρ[j][i] O[i][j]
		for _, entry := range op.Operator {
			value += entry.Value * shot[uint64(entry.Col)*dim+uint64(entry.Row)]
		}
	default:
		return 0, &roqoqo.MismatchedRegisterDimensionError{Name: op.Readout, Dim: uint(len(shot)),
			NumberQubits: numberQubits}
	}
	//
	return value, nil
}

// Returns 2^n, or zero if this exceeds any addressable register.
func hilbertDimension(n uint) uint64 {
	if n >= 63 {
		return 0
	}
	//
	return uint64(1) << n
}

// Evaluates every expectation value given the value of each Pauli product.
func evaluateExpVals(expVals map[string]PauliProductsToExpVal, products []float64,
	cache *calculator.Cache) (map[string]float64, error) {
	var (
		result = make(map[string]float64, len(expVals))
		calc   *calculator.Calculator
	)
	// Construct calculator on demand
	getCalculator := func() *calculator.Calculator {
		if calc == nil {
			calc = calculator.NewCalculatorWithCache(cache)
			for i, p := range products {
				calc.Set(pauliProductVariable(i), p)
			}
		}
		//
		return calc
	}
	//
	for _, name := range util.SortedKeys(expVals) {
		value, err := expVals[name].evaluate(products, getCalculator)
		if err != nil {
			return nil, err
		}
		//
		result[name] = value
	}
	//
	return result, nil
}

// Checks that every register contributing to an evaluation holds the same
// non-zero number of shots.
type shotCounter struct {
	strict   bool
	expected int
}

func newShotCounter(strict bool) *shotCounter {
	return &shotCounter{strict, -1}
}

func (p *shotCounter) check(name string, shots int) error {
	if shots == 0 {
		return &roqoqo.EmptyRegisterError{Name: name}
	} else if !p.strict {
		return nil
	} else if p.expected < 0 {
		p.expected = shots
		return nil
	} else if shots != p.expected {
		return &roqoqo.ShotCountMismatchError{Name: name, Expected: uint(p.expected), Found: uint(shots)}
	}
	//
	return nil
}
