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
package calculator

import "math"

// function describes a builtin function which can be called from within an
// expression.
type function struct {
	arity int
	apply func(args []float64) float64
}

func unary(fn func(float64) float64) function {
	return function{1, func(args []float64) float64 { return fn(args[0]) }}
}

func binaryFn(fn func(float64, float64) float64) function {
	return function{2, func(args []float64) float64 { return fn(args[0], args[1]) }}
}

// Builtin functions.  The arity of every call is checked when an expression is
// parsed, hence apply can index its arguments without checking.
var functions = map[string]function{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"exp":   unary(math.Exp),
	"ln":    unary(math.Log),
	"log":   unary(math.Log),
	"log10": unary(math.Log10),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"round": unary(math.Round),
	"sign":  unary(sign),
	"atan2": binaryFn(math.Atan2),
	"pow":   binaryFn(math.Pow),
	"max":   binaryFn(math.Max),
	"min":   binaryFn(math.Min),
}

// Named constants, which are resolved when an expression is parsed.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
