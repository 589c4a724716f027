package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/roqoqo/roqoqo-go/pkg/backend"
	"github.com/roqoqo/roqoqo-go/pkg/circuit"
	"github.com/roqoqo/roqoqo-go/pkg/measurement"
	"github.com/roqoqo/roqoqo-go/pkg/register"
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/iter"
	"github.com/roqoqo/roqoqo-go/pkg/version"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_01(t *testing.T) {
	cfg := Default()
	//
	assert.Equal(t, "1.15.0", cfg.Version)
	assert.Equal(t, 1e-8, *cfg.Evaluation.ImaginaryTolerance)
	assert.True(t, *cfg.Evaluation.StrictShotCounts)
	assert.Equal(t, 128, cfg.Evaluation.ExpressionCacheSize)
	assert.Equal(t, runtime.NumCPU(), cfg.Backend.Parallelism)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func Test_Config_02(t *testing.T) {
	cfg, err := Parse([]byte(`
version: 1.4.0
evaluation:
  imaginaryTolerance: -1
  strictShotCounts: false
  expressionCacheSize: -1
backend:
  parallelism: 3
log:
  level: debug
`))
	require.NoError(t, err)
	//
	assert.Equal(t, "1.4.0", cfg.Version)
	assert.Equal(t, -1.0, *cfg.Evaluation.ImaginaryTolerance)
	assert.False(t, *cfg.Evaluation.StrictShotCounts)
	assert.Equal(t, -1, cfg.Evaluation.ExpressionCacheSize)
	assert.Equal(t, 3, cfg.Backend.Parallelism)
	assert.Equal(t, "debug", cfg.Log.Level)
	//
	v, err := cfg.LibraryVersion()
	require.NoError(t, err)
	assert.Equal(t, version.New(1, 4, 0), v)
	//
	codec, err := cfg.NewCodec()
	require.NoError(t, err)
	assert.Equal(t, v, codec.Version())
}

func Test_Config_03(t *testing.T) {
	// Zero tolerance is retained
	cfg, err := Parse([]byte("evaluation:\n  imaginaryTolerance: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, *cfg.Evaluation.ImaginaryTolerance)
	assert.True(t, *cfg.Evaluation.StrictShotCounts)
	// Empty document
	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Config_04(t *testing.T) {
	for _, doc := range []string{
		"version: one\n",
		"log:\n  level: loud\n",
		"unknown: 1\n",
		"backend: [1, 2]\n",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func Test_Config_05(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roqoqo.yaml")
	//
	cfg := Default()
	cfg.Backend.Parallelism = 5
	data, err := cfg.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	//
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	//
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func Test_Config_06(t *testing.T) {
	level := log.GetLevel()
	defer log.SetLevel(level)
	//
	cfg := Default()
	cfg.Log.Level = "warn"
	require.NoError(t, cfg.ApplyLogging())
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	//
	cfg.Log.Level = "nope"
	assert.Error(t, cfg.ApplyLogging())
}

func Test_Config_07(t *testing.T) {
	var residue *roqoqo.ImaginaryResidueError
	//
	input := measurement.NewCheatedInput(1)
	require.NoError(t, input.AddOperatorExpVal("nh", []measurement.SparseEntry{{Row: 0, Col: 0, Value: 1i}}, "sv"))
	complexes := map[string]register.ComplexRegister{"sv": {{1, 0}}}
	//
	_, err := Default().NewEvaluator().EvaluateCheated(input, complexes)
	assert.ErrorAs(t, err, &residue)
	//
	cfg, err := Parse([]byte("evaluation:\n  imaginaryTolerance: -1\n"))
	require.NoError(t, err)
	result, err := cfg.NewEvaluator().EvaluateCheated(input, complexes)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result["nh"])
}

func Test_Config_08(t *testing.T) {
	b := backend.BackendFunc(func(ctx context.Context, ops iter.Iterator[circuit.Operation]) (register.Registers,
		error) {
		regs := register.NewRegisters()
		regs.Bits["ro"] = register.BitRegister{{true}}
		//
		return regs, nil
	})
	//
	cfg := Default()
	cfg.Backend.Parallelism = 2
	runner := cfg.NewRunner(b)
	assert.Equal(t, 2, runner.Parallelism())
	//
	c := circuit.MustCircuit(circuit.MeasureQubit(0, "ro", 0))
	m := measurement.NewClassicalRegister(util.None[circuit.Circuit](), []circuit.Circuit{c, c})
	regs, err := runner.RunMeasurementRegistersConcurrently(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 2, regs.Bits["ro"].Shots())
	// Later options take precedence
	assert.Equal(t, 1, cfg.NewRunner(b, backend.WithParallelism(1)).Parallelism())
}
