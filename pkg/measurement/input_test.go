package measurement

import (
	"testing"

	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PauliZProductInput_01(t *testing.T) {
	input := NewPauliZProductInput(3, false)
	assert.Equal(t, uint(0), input.NumberPauliProducts)
	assert.Empty(t, input.MeasuredExpVals)
	assert.Empty(t, input.PauliProductQubitMasks)
}

func Test_PauliZProductInput_02(t *testing.T) {
	input := NewPauliZProductInput(3, false)
	//
	i, err := input.AddPauliZProduct("ro", []uint{0, 2})
	require.NoError(t, err)
	assert.Equal(t, uint(0), i)
	// Same set, different order
	j, err := input.AddPauliZProduct("ro", []uint{2, 0})
	require.NoError(t, err)
	assert.Equal(t, i, j)
	assert.Equal(t, uint(1), input.NumberPauliProducts)
	// Same set, different register
	k, err := input.AddPauliZProduct("ro2", []uint{0, 2})
	require.NoError(t, err)
	assert.Equal(t, uint(1), k)
	assert.Equal(t, uint(2), input.NumberPauliProducts)
	// Identity
	l, err := input.AddPauliZProduct("ro", nil)
	require.NoError(t, err)
	assert.Equal(t, uint(2), l)
	l, err = input.AddPauliZProduct("ro", []uint{})
	require.NoError(t, err)
	assert.Equal(t, uint(2), l)
	//
	assert.Equal(t, set.FromArray[uint](0, 2), input.PauliProductQubitMasks["ro"][0])
	assert.Nil(t, input.PauliProductQubitMasks["ro"][2])
}

func Test_PauliZProductInput_03(t *testing.T) {
	for n := uint(0); n < 5; n++ {
		var perr *roqoqo.PauliProductExceedsQubitsError
		//
		input := NewPauliZProductInput(n, false)
		_, err := input.AddPauliZProduct("ro", []uint{0, n})
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, n, perr.Qubit)
		assert.Equal(t, n, perr.NumberQubits)
		assert.Equal(t, uint(0), input.NumberPauliProducts)
	}
}

func Test_PauliZProductInput_04(t *testing.T) {
	var (
		used  *roqoqo.ExpValUsedTwiceError
		index *roqoqo.PauliProductIndexError
	)
	//
	input := NewPauliZProductInput(2, false)
	_, err := input.AddPauliZProduct("ro", []uint{0})
	require.NoError(t, err)
	//
	require.NoError(t, input.AddLinearExpVal("a", map[uint]float64{0: 1}))
	assert.ErrorAs(t, input.AddLinearExpVal("a", map[uint]float64{0: 2}), &used)
	assert.ErrorAs(t, input.AddSymbolicExpVal("a", "pauli_product_0"), &used)
	assert.Equal(t, "a", used.Name)
	// Unregistered index
	require.ErrorAs(t, input.AddLinearExpVal("b", map[uint]float64{1: 1}), &index)
	assert.Equal(t, uint(1), index.Index)
	// Symbolic expressions are not checked on registration
	require.NoError(t, input.AddSymbolicExpVal("c", "pauli_product_7 +"))
	assert.Len(t, input.MeasuredExpVals, 2)
}

func Test_PauliZProductInput_05(t *testing.T) {
	input := NewPauliZProductInput(2, true)
	_, err := input.AddPauliZProduct("ro", []uint{1})
	require.NoError(t, err)
	//
	clone := input.Clone()
	_, err = clone.AddPauliZProduct("ro", []uint{0})
	require.NoError(t, err)
	assert.Equal(t, uint(1), input.NumberPauliProducts)
	assert.Len(t, input.PauliProductQubitMasks["ro"], 1)
	assert.True(t, clone.UseFlippedMeasurement)
}

func Test_CheatedPauliZProductInput_01(t *testing.T) {
	input := NewCheatedPauliZProductInput()
	assert.Equal(t, uint(0), input.AddPauliProduct("a"))
	assert.Equal(t, uint(1), input.AddPauliProduct("b"))
	assert.Equal(t, uint(0), input.AddPauliProduct("a"))
	assert.Equal(t, uint(2), input.NumberPauliProducts())
	//
	require.NoError(t, input.AddLinearExpVal("x", map[uint]float64{0: 1, 1: 2}))
	assert.Error(t, input.AddLinearExpVal("x", nil))
	assert.Error(t, input.AddLinearExpVal("y", map[uint]float64{2: 1}))
	require.NoError(t, input.AddSymbolicExpVal("z", "pauli_product_0"))
}

func Test_CheatedInput_01(t *testing.T) {
	var merr *roqoqo.MismatchedOperatorDimensionError
	//
	input := NewCheatedInput(1)
	require.NoError(t, input.AddOperatorExpVal("z", pauliZ(), "sv"))
	assert.Error(t, input.AddOperatorExpVal("z", pauliZ(), "sv"))
	//
	err := input.AddOperatorExpVal("bad", []SparseEntry{{0, 2, 1}}, "sv")
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, uint(2), merr.Column)
	assert.Equal(t, uint(1), merr.NumberQubits)
	// No qubits gives a one dimensional space
	input = NewCheatedInput(0)
	require.NoError(t, input.AddOperatorExpVal("one", []SparseEntry{{0, 0, 1}}, "sv"))
	assert.Error(t, input.AddOperatorExpVal("two", []SparseEntry{{1, 0, 1}}, "sv"))
}

func Test_ExpVal_01(t *testing.T) {
	lin := Linear(nil)
	coeffs, ok := lin.Linear()
	assert.True(t, ok)
	assert.Empty(t, coeffs)
	assert.False(t, lin.IsSymbolic())
	_, ok = lin.Symbolic()
	assert.False(t, ok)
	//
	sym := Symbolic("pauli_product_0")
	expr, ok := sym.Symbolic()
	assert.True(t, ok)
	assert.Equal(t, "pauli_product_0", expr)
	_, ok = sym.Linear()
	assert.False(t, ok)
	// Coefficients are copied
	m := map[uint]float64{0: 1}
	lin = Linear(m)
	m[0] = 2
	coeffs, _ = lin.Linear()
	assert.Equal(t, map[uint]float64{0: 1}, coeffs)
}

// Pauli Z operator over one qubit
func pauliZ() []SparseEntry {
	return []SparseEntry{{0, 0, 1}, {1, 1, -1}}
}
