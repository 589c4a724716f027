package calculator

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Float_01(t *testing.T) {
	f := NewFloat(1.5)
	assert.True(t, f.IsFloat())
	assert.False(t, f.IsSymbolic())
	//
	v, err := f.Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, "1.5", f.String())
}

func Test_Float_02(t *testing.T) {
	var nce *NotConvertibleError
	//
	f := NewSymbol("theta")
	assert.True(t, f.IsSymbolic())
	_, err := f.Float()
	assert.ErrorAs(t, err, &nce)
	// Empty expression is zero
	assert.Equal(t, NewFloat(0), NewSymbol(""))
}

func Test_Float_03(t *testing.T) {
	a, b := NewFloat(3), NewFloat(2)
	assert.Equal(t, NewFloat(5), a.Add(b))
	assert.Equal(t, NewFloat(1), a.Sub(b))
	assert.Equal(t, NewFloat(6), a.Mul(b))
	assert.Equal(t, NewFloat(-3), a.Neg())
	//
	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, NewFloat(1.5), q)
	//
	_, err = a.Div(NewFloat(0))
	assert.Error(t, err)
}

func Test_Float_04(t *testing.T) {
	theta := NewSymbol("theta")
	assert.Equal(t, "(theta + 1)", theta.Add(NewFloat(1)).String())
	assert.Equal(t, "(theta * 2)", theta.Mul(NewFloat(2)).String())
	assert.Equal(t, "(theta - (-1))", theta.Sub(NewFloat(-1)).String())
	assert.Equal(t, "(-theta)", theta.Neg().String())
	assert.Equal(t, "((a + b) * c)", NewSymbol("a + b").Mul(NewSymbol("c")).String())
	// Identities
	assert.Equal(t, theta, theta.Add(NewFloat(0)))
	assert.Equal(t, theta, NewFloat(0).Add(theta))
	assert.Equal(t, theta, theta.Mul(NewFloat(1)))
	assert.Equal(t, theta, NewFloat(1).Mul(theta))
	//
	q, err := theta.Div(NewFloat(2))
	require.NoError(t, err)
	assert.Equal(t, "(theta / 2)", q.String())
}

func Test_Float_05(t *testing.T) {
	calc := NewCalculator()
	calc.Set("a", 2)
	calc.Set("b", 3)
	// Combined expressions must evaluate as expected
	f := NewSymbol("a + b").Mul(NewSymbol("a")).Sub(NewFloat(1e-20).Neg())
	v, err := calc.EvaluateFloat(f)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, v, 1e-12)
	//
	vars, err := f.Variables()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, vars)
}

func Test_Float_06(t *testing.T) {
	checkFloatJSON(t, NewFloat(0.25), "0.25")
	checkFloatJSON(t, NewSymbol("theta / 2"), `"theta / 2"`)
	//
	var f Float
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func Test_Float_07(t *testing.T) {
	for _, f := range []Float{NewFloat(0), NewFloat(-1.25), NewSymbol("x")} {
		var (
			buffer  bytes.Buffer
			decoded Float
		)
		//
		require.NoError(t, gob.NewEncoder(&buffer).Encode(f))
		require.NoError(t, gob.NewDecoder(&buffer).Decode(&decoded))
		assert.Equal(t, f, decoded)
	}
}

func checkFloatJSON(t *testing.T, f Float, expected string) {
	var decoded Float
	//
	t.Helper()
	//
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, f, decoded)
}
