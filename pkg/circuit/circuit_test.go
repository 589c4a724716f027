package circuit

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/iter"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/set"
	"github.com/roqoqo/roqoqo-go/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Circuit_01(t *testing.T) {
	var c Circuit
	//
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, version.Base, c.MinimumSupportedVersion())
	assert.Empty(t, iter.Collect(c.Iter()))
}

func Test_Circuit_02(t *testing.T) {
	c := MustCircuit(
		MustGate("Hadamard", []uint{0}),
		DefinitionBit("ro", 2, true),
		MustGate("CNOT", []uint{0, 1}),
		MeasureQubit(0, "ro", 0),
	)
	// Definitions come first
	names := []string{}
	for op := range iter.All(c.Iter()) {
		names = append(names, op.Name)
	}
	//
	assert.Equal(t, []string{"DefinitionBit", "Hadamard", "CNOT", "MeasureQubit"}, names)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "CNOT", c.Get(2).Name)
	assert.Len(t, c.Definitions(), 1)
	assert.Len(t, c.Operations(), 3)
}

func Test_Circuit_03(t *testing.T) {
	var c Circuit
	// Nothing added on failure
	err := c.Add(MustGate("PauliX", []uint{0}), Operation{Name: "Nope"})
	assert.Error(t, err)
	assert.True(t, c.IsEmpty())
}

func Test_Circuit_04(t *testing.T) {
	a := MustCircuit(DefinitionFloat("a", 1, true), MustGate("PauliX", []uint{0}))
	b := MustCircuit(MustGate("PauliY", []uint{1}), DefinitionComplex("b", 1, false))
	//
	c := a.Concat(b)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"DefinitionFloat", "DefinitionComplex", "PauliX", "PauliY"}, opNames(c))
	// Operands are not affected
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())
}

func Test_Circuit_05(t *testing.T) {
	c := MustCircuit(
		MustGate("PauliX", []uint{0}),
		MustGate("Toffoli", []uint{0, 1, 2}),
		MustGate("GPi", []uint{0}, f(1)),
	)
	assert.Equal(t, version.New(1, 4, 0), c.MinimumSupportedVersion())
}

func Test_Circuit_06(t *testing.T) {
	c := MustCircuit(
		InputSymbolic("alpha", 2),
		MustGate("RotateX", []uint{0}, calculator.NewSymbol("alpha * beta")),
		PragmaLoop(calculator.NewSymbol("beta"), MustCircuit(MustGate("RotateZ", []uint{1},
			calculator.NewSymbol("alpha")))),
	)
	assert.True(t, c.IsParametrized())
	//
	calc := calculator.NewCalculator()
	calc.Set("beta", 3)
	//
	nc, err := c.SubstituteParameters(calc)
	require.NoError(t, err)
	assert.False(t, nc.IsParametrized())
	assert.Equal(t, []calculator.Float{f(6)}, nc.Get(1).Params)
	assert.Equal(t, []calculator.Float{f(3)}, nc.Get(2).Params)
	assert.Equal(t, []calculator.Float{f(2)}, nc.Get(2).Body.Get(0).Params)
	// Inputs do not leak into the calculator given
	_, ok := calc.Get("alpha")
	assert.False(t, ok)
}

func Test_Circuit_07(t *testing.T) {
	c := MustCircuit(MustGate("CNOT", []uint{0, 1}), MustGate("PauliZ", []uint{2}))
	//
	nc, err := c.RemapQubits(map[uint]uint{0: 2, 2: 0})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 1}, nc.Get(0).Qubits)
	assert.Equal(t, []uint{0}, nc.Get(1).Qubits)
	//
	var merr *roqoqo.QubitMappingError
	_, err = c.RemapQubits(map[uint]uint{0: 3})
	assert.ErrorAs(t, err, &merr)
}

func Test_Circuit_08(t *testing.T) {
	c := MustCircuit(MustGate("CNOT", []uint{0, 3}), MeasureQubit(5, "ro", 0))
	qubits, all := c.InvolvedQubits()
	assert.False(t, all)
	assert.Equal(t, set.FromArray[uint](0, 3, 5), qubits)
	//
	require.NoError(t, c.Add(PragmaRepeatedMeasurement("ro", 100)))
	_, all = c.InvolvedQubits()
	assert.True(t, all)
}

func Test_Circuit_09(t *testing.T) {
	for _, c := range testCircuits() {
		var (
			buffer  bytes.Buffer
			decoded Circuit
		)
		//
		require.NoError(t, gob.NewEncoder(&buffer).Encode(c))
		require.NoError(t, gob.NewDecoder(&buffer).Decode(&decoded))
		assert.Equal(t, c, decoded)
	}
}

func Test_Circuit_10(t *testing.T) {
	for _, c := range testCircuits() {
		var decoded Circuit
		//
		data, err := json.Marshal(c)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, c, decoded)
	}
}

func Test_Circuit_11(t *testing.T) {
	c := MustCircuit(DefinitionBit("ro", 1, true), MustGate("RotateX", []uint{0}, calculator.NewSymbol("theta")))
	//
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"definitions": [{"name": "DefinitionBit", "readout": "ro", "index": 1, "flag": true}],
		"operations": [{"name": "RotateX", "qubits": [0], "params": ["theta"]}],
		"_roqoqo_version": {"major_version": 1, "minor_version": 0, "patch_version": 0}
	}`, string(data))
}

func Test_Circuit_12(t *testing.T) {
	var c Circuit
	// Decoding validates operations
	err := json.Unmarshal([]byte(`{"definitions": [], "operations": [{"name": "CNOT", "qubits": [0]}]}`), &c)
	assert.Error(t, err)
	// Definitions are placed according to their kind
	err = json.Unmarshal([]byte(`{"operations": [{"name": "DefinitionBit", "readout": "ro", "index": 1}]}`), &c)
	require.NoError(t, err)
	assert.Len(t, c.Definitions(), 1)
	assert.Empty(t, c.Operations())
}

// ============================================================================
// Helpers
// ============================================================================

func opNames(c Circuit) []string {
	var names []string
	//
	for op := range iter.All(c.Iter()) {
		names = append(names, op.Name)
	}
	//
	return names
}

func testCircuits() []Circuit {
	return []Circuit{
		{},
		MustCircuit(MustGate("Hadamard", []uint{0})),
		MustCircuit(
			DefinitionBit("ro", 2, true),
			DefinitionComplex("sv", 4, true),
			InputSymbolic("x", 0.5),
			MustGate("RotateX", []uint{0}, calculator.NewSymbol("x / 2")),
			MustGate("MultiQubitZZ", []uint{0, 1, 2}, f(0)),
			PragmaSetNumberOfMeasurements(100, "ro"),
			PragmaGetStateVector("sv", nil),
			PragmaGetPauliProduct(map[uint]uint{0: 1, 1: 3}, "pp", MustCircuit(MustGate("SGate", []uint{1}))),
			PragmaLoop(f(3), MustCircuit(MustGate("PauliX", []uint{0}))),
			MeasureQubit(1, "ro", 1),
		),
	}
}
