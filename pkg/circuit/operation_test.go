package circuit

import (
	"testing"

	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/set"
	"github.com/roqoqo/roqoqo-go/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Operation_01(t *testing.T) {
	op, err := NewGate("RotateX", []uint{0}, calculator.NewFloat(0.5))
	require.NoError(t, err)
	assert.Equal(t, SingleQubitGate, op.Kind())
	assert.Equal(t, version.Base, op.MinimumSupportedVersion())
	assert.False(t, op.IsParametrized())
	assert.Equal(t, "RotateX(q0, 0.5)", op.String())
}

func Test_Operation_02(t *testing.T) {
	var unknown *roqoqo.UnknownOperationError
	//
	_, err := NewGate("Rotate", []uint{0})
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Rotate", unknown.Name)
}

func Test_Operation_03(t *testing.T) {
	var arity *roqoqo.OperationArityError
	// Wrong number of qubits
	_, err := NewGate("CNOT", []uint{0})
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, "qubits", arity.What)
	assert.Equal(t, 2, arity.Expected)
	assert.Equal(t, 1, arity.Found)
	// Wrong number of parameters
	_, err = NewGate("RotateZ", []uint{0})
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, "parameters", arity.What)
	// Multi qubit gates need at least one qubit
	_, err = NewGate("MultiQubitMS", nil, calculator.NewFloat(1))
	require.ErrorAs(t, err, &arity)
	// Repeated qubits
	_, err = NewGate("CNOT", []uint{1, 1})
	assert.Error(t, err)
}

func Test_Operation_04(t *testing.T) {
	checkVersion(t, MustGate("PhaseShiftedControlledPhase", []uint{0, 1}, f(1), f(2)), version.New(1, 2, 0))
	checkVersion(t, MustGate("Toffoli", []uint{0, 1, 2}), version.New(1, 3, 0))
	checkVersion(t, MustGate("GPi2", []uint{0}, f(1)), version.New(1, 4, 0))
	checkVersion(t, MustGate("Identity", []uint{0}), version.New(1, 7, 0))
	checkVersion(t, MustGate("EchoCrossResonance", []uint{0, 1}), version.New(1, 8, 0))
	checkVersion(t, InputBit("ro", 0, true), version.New(1, 8, 0))
	checkVersion(t, MustGate("InvSGate", []uint{0}), version.New(1, 14, 0))
	checkVersion(t, MustGate("SqrtPauliY", []uint{0}), version.New(1, 15, 0))
}

func Test_Operation_05(t *testing.T) {
	// Nested circuits raise the version of their container
	body := MustCircuit(MustGate("Toffoli", []uint{0, 1, 2}))
	loop := PragmaLoop(f(2), body)
	checkVersion(t, loop, version.New(1, 3, 0))
	// Loops themselves require 1.1
	checkVersion(t, PragmaLoop(f(2), MustCircuit(MustGate("PauliX", []uint{0}))), version.New(1, 1, 0))
}

func Test_Operation_06(t *testing.T) {
	calc := calculator.NewCalculator()
	calc.Set("theta", 0.25)
	//
	op := MustGate("RotateY", []uint{3}, calculator.NewSymbol("2 * theta"))
	assert.True(t, op.IsParametrized())
	//
	nop, err := op.SubstituteParameters(calc)
	require.NoError(t, err)
	assert.Equal(t, MustGate("RotateY", []uint{3}, f(0.5)), nop)
	// Original is unchanged
	assert.True(t, op.IsParametrized())
	// Unbound parameters
	var cerr *roqoqo.CalculatorError
	//
	unbound := MustGate("RotateY", []uint{3}, calculator.NewSymbol("phi"))
	_, err = unbound.SubstituteParameters(calc)
	assert.ErrorAs(t, err, &cerr)
}

func Test_Operation_07(t *testing.T) {
	op := MustGate("CNOT", []uint{0, 1})
	//
	nop, err := op.RemapQubits(map[uint]uint{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 0}, nop.Qubits)
	assert.Equal(t, []uint{0, 1}, op.Qubits)
	//
	pp := PragmaGetPauliProduct(map[uint]uint{0: 3, 2: 1}, "ro", MustCircuit(MustGate("Hadamard", []uint{2})))
	nop, err = pp.RemapQubits(map[uint]uint{0: 2, 2: 0})
	require.NoError(t, err)
	assert.Equal(t, map[uint]uint{2: 3, 0: 1}, nop.Paulis)
	assert.Equal(t, []uint{0}, nop.Body.Get(0).Qubits)
}

func Test_Operation_08(t *testing.T) {
	checkInvolved(t, MustGate("CNOT", []uint{3, 1}), set.FromArray[uint](1, 3), false)
	checkInvolved(t, MeasureQubit(2, "ro", 0), set.FromArray[uint](2), false)
	checkInvolved(t, PragmaGetStateVector("ro", nil), nil, true)
	checkInvolved(t, DefinitionBit("ro", 2, true), nil, false)
	checkInvolved(t, PragmaSetNumberOfMeasurements(10, "ro"), nil, false)
	checkInvolved(t, PragmaLoop(f(2), MustCircuit(MustGate("PauliX", []uint{4}))), set.FromArray[uint](4), false)
}

func Test_Operation_09(t *testing.T) {
	valid := PragmaGetPauliProduct(map[uint]uint{0: 3}, "ro", Circuit{})
	assert.NoError(t, valid.Validate())
	//
	invalid := PragmaGetPauliProduct(map[uint]uint{0: 4}, "ro", Circuit{})
	assert.Error(t, invalid.Validate())
	//
	unnamed := MeasureQubit(0, "", 0)
	assert.Error(t, unnamed.Validate())
	//
	op := MustGate("PauliX", []uint{0})
	op.Body = &Circuit{}
	assert.Error(t, op.Validate())
}

func Test_Operation_10(t *testing.T) {
	for _, m := range []map[uint]uint{{0: 1}, {0: 1, 1: 1}, {0: 2, 1: 0}} {
		var merr *roqoqo.QubitMappingError
		assert.ErrorAs(t, CheckMapping(m), &merr)
	}
	//
	assert.NoError(t, CheckMapping(nil))
	assert.NoError(t, CheckMapping(map[uint]uint{0: 0}))
	assert.NoError(t, CheckMapping(map[uint]uint{0: 2, 1: 0, 2: 1}))
}

func Test_Catalogue_01(t *testing.T) {
	for _, name := range []string{"RotateX", "CNOT", "Toffoli", "MultiQubitZZ", "MeasureQubit", "PragmaLoop",
		"DefinitionBit"} {
		shape, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.True(t, version.Library().Supports(shape.Version), name)
	}
	//
	_, ok := Lookup("NotAGate")
	assert.False(t, ok)
	assert.Greater(t, Names(), 60)
}

// ============================================================================
// Helpers
// ============================================================================

func f(v float64) calculator.Float {
	return calculator.NewFloat(v)
}

func checkVersion(t *testing.T, op Operation, expected version.Version) {
	t.Helper()
	assert.Equal(t, expected, op.MinimumSupportedVersion(), op.Name)
}

func checkInvolved(t *testing.T, op Operation, expected set.SortedSet[uint], all bool) {
	t.Helper()
	//
	qubits, isAll := op.InvolvedQubits()
	assert.Equal(t, expected, qubits, op.Name)
	assert.Equal(t, all, isAll, op.Name)
}
