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
package config

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/roqoqo/roqoqo-go/pkg/backend"
	"github.com/roqoqo/roqoqo-go/pkg/binfile"
	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/measurement"
	"github.com/roqoqo/roqoqo-go/pkg/version"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	defaultLogLevel = "info"
)

// Config determines how circuits are run, how measurements are evaluated and
// which library version is reported when encoding.
type Config struct {
	// Library version on whose behalf files are encoded and decoded.
	Version    string           `yaml:"version"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Backend    BackendConfig    `yaml:"backend"`
	Log        LogConfig        `yaml:"log"`
}

// EvaluationConfig configures the evaluation of measurements.
type EvaluationConfig struct {
	// Largest permitted imaginary part of an operator expectation value.  A
	// negative tolerance disables the check.
	ImaginaryTolerance *float64 `yaml:"imaginaryTolerance"`
	// Whether registers contributing to one evaluation must hold the same
	// number of shots.
	StrictShotCounts *bool `yaml:"strictShotCounts"`
	// Number of parsed expressions cached.  A negative size disables caching.
	ExpressionCacheSize int `yaml:"expressionCacheSize"`
}

// BackendConfig configures the running of circuits.
type BackendConfig struct {
	// Maximum number of circuits run at once.
	Parallelism int `yaml:"parallelism"`
}

// LogConfig configures logging.
type LogConfig struct {
	// One of panic, fatal, error, warn, info, debug or trace.
	Level string `yaml:"level"`
}

// Default returns the configuration used when none is given.
func Default() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of the Config with any missing fields set to
// their default values.
func (c Config) WithDefaults() Config {
	cpy := c
	if cpy.Version == "" {
		cpy.Version = version.Library().String()
	}
	if cpy.Evaluation.ImaginaryTolerance == nil {
		tolerance := measurement.DefaultImaginaryTolerance
		cpy.Evaluation.ImaginaryTolerance = &tolerance
	}
	if cpy.Evaluation.StrictShotCounts == nil {
		strict := true
		cpy.Evaluation.StrictShotCounts = &strict
	}
	if cpy.Evaluation.ExpressionCacheSize == 0 {
		cpy.Evaluation.ExpressionCacheSize = calculator.DefaultCacheSize
	}
	if cpy.Backend.Parallelism <= 0 {
		cpy.Backend.Parallelism = runtime.NumCPU()
	}
	if cpy.Log.Level == "" {
		cpy.Log.Level = defaultLogLevel
	}
	return cpy
}

// Load reads the configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	//
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	//
	log.Debugf("loaded config %s (version %s)", path, cfg.Version)
	//
	return cfg, nil
}

// Parse reads the configuration from a YAML document.  Unknown fields are
// rejected, and missing fields are given their default values.
func Parse(data []byte) (Config, error) {
	var cfg Config
	//
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	//
	cfg = cfg.WithDefaults()
	//
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	//
	return cfg, nil
}

// Marshal writes the configuration as a YAML document.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	//
	return data, nil
}

// Validate checks the version and log level can be parsed.
func (c Config) Validate() error {
	if _, err := c.LibraryVersion(); err != nil {
		return err
	} else if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	//
	return nil
}

// LibraryVersion returns the library version given by this configuration.
func (c Config) LibraryVersion() (version.Version, error) {
	v, err := version.Parse(c.Version)
	if err != nil {
		return version.Version{}, errors.Wrapf(err, "invalid version %q", c.Version)
	}
	//
	return v, nil
}

// ApplyLogging sets the level of the standard logger.
func (c Config) ApplyLogging() error {
	level, err := log.ParseLevel(c.WithDefaults().Log.Level)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	//
	log.SetLevel(level)
	//
	return nil
}

// NewEvaluator constructs an evaluator as configured.
func (c Config) NewEvaluator() *measurement.Evaluator {
	cfg := c.WithDefaults().Evaluation
	//
	return measurement.NewEvaluator(*cfg.ImaginaryTolerance, *cfg.StrictShotCounts,
		calculator.NewCache(cfg.ExpressionCacheSize))
}

// NewCodec constructs a codec for the configured library version.
func (c Config) NewCodec() (*binfile.Codec, error) {
	v, err := c.WithDefaults().LibraryVersion()
	if err != nil {
		return nil, err
	}
	//
	return binfile.NewCodec(v), nil
}

// NewRunner constructs a runner for a given backend, with the configured
// parallelism and evaluator.  Further options (e.g. metrics) are applied
// afterwards.
func (c Config) NewRunner(b backend.Backend, opts ...backend.RunnerOption) *backend.Runner {
	cfg := c.WithDefaults()
	options := append([]backend.RunnerOption{
		backend.WithParallelism(cfg.Backend.Parallelism),
		backend.WithEvaluator(cfg.NewEvaluator()),
	}, opts...)
	//
	return backend.NewRunner(b, options...)
}
