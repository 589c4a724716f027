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
package backend

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/roqoqo/roqoqo-go/pkg/circuit"
	"github.com/roqoqo/roqoqo-go/pkg/measurement"
	"github.com/roqoqo/roqoqo-go/pkg/register"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Runner runs circuits and measurements on a backend, evaluating the
// resulting registers.
type Runner struct {
	backend   Backend
	evaluator *measurement.Evaluator
	// Maximum number of circuits run at once by the concurrent variants.
	parallelism int
	// Metrics for circuit runs (nil if not recorded).
	metrics *Metrics
}

// RunnerOption configures a runner.
type RunnerOption func(*Runner)

// WithParallelism bounds the number of circuits run at once by the concurrent
// variants.  Values less than one are treated as one.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) {
		r.parallelism = max(1, n)
	}
}

// WithEvaluator sets the evaluator used to turn registers into expectation
// values.
func WithEvaluator(evaluator *measurement.Evaluator) RunnerOption {
	return func(r *Runner) {
		r.evaluator = evaluator
	}
}

// WithMetrics records every circuit run.
func WithMetrics(metrics *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = metrics
	}
}

// NewRunner constructs a runner for a given backend.  By default, circuits
// are run with one goroutine per CPU using the default evaluator.
func NewRunner(backend Backend, opts ...RunnerOption) *Runner {
	r := &Runner{backend, measurement.DefaultEvaluator(), runtime.NumCPU(), nil}
	//
	for _, opt := range opts {
		opt(r)
	}
	//
	return r
}

// Parallelism returns the maximum number of circuits run at once.
func (r *Runner) Parallelism() int {
	return r.parallelism
}

// RunCircuit runs a single circuit, returning the registers it writes.
func (r *Runner) RunCircuit(ctx context.Context, c circuit.Circuit) (register.Registers, error) {
	return r.RunCircuitIterator(ctx, c.Iter())
}

// RunCircuitIterator runs the circuit given by a sequence of operations,
// returning the registers it writes.
func (r *Runner) RunCircuitIterator(ctx context.Context,
	ops iter.Iterator[circuit.Operation]) (register.Registers, error) {
	if err := ctx.Err(); err != nil {
		return register.Registers{}, err
	}
	//
	stats := util.NewPerfStats()
	//
	r.metrics.started()
	regs, err := r.backend.RunCircuitIterator(ctx, ops)
	r.metrics.finished(stats.Elapsed(), regs, err)
	//
	if err != nil {
		return register.Registers{}, err
	} else if err := regs.Validate(); err != nil {
		return register.Registers{}, errors.Wrap(err, "backend returned malformed registers")
	}
	//
	stats.Log("running circuit")
	//
	return regs, nil
}

// RunMeasurementRegisters runs every circuit of a measurement in order,
// returning the registers of all runs merged.  Where several circuits write
// the same register, their shots are concatenated in circuit order.
func (r *Runner) RunMeasurementRegisters(ctx context.Context, m measurement.Measurement) (register.Registers, error) {
	var (
		runs  = m.RunCircuits()
		stats = util.NewPerfStats()
		regs  = register.NewRegisters()
	)
	//
	for i := range runs {
		batch, err := r.RunCircuit(ctx, runs[i])
		if err != nil {
			return register.Registers{}, errors.Wrapf(err, "circuit %d of %d", i+1, len(runs))
		}
		//
		regs.Append(batch)
	}
	//
	stats.Log("running %d circuits", len(runs))
	//
	return regs, nil
}

// RunMeasurementRegistersConcurrently runs the circuits of a measurement
// concurrently, bounded by the runner's parallelism.  Registers are merged in
// circuit order, hence the result is the same as for the sequential variant.
// The first failure cancels any circuits yet to run.
func (r *Runner) RunMeasurementRegistersConcurrently(ctx context.Context,
	m measurement.Measurement) (register.Registers, error) {
	var (
		runs    = m.RunCircuits()
		batches = make([]register.Registers, len(runs))
		stats   = util.NewPerfStats()
		regs    = register.NewRegisters()
	)
	//
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	//
	for i := range runs {
		g.Go(func() error {
			batch, err := r.RunCircuit(gctx, runs[i])
			if err != nil {
				return errors.Wrapf(err, "circuit %d of %d", i+1, len(runs))
			}
			//
			batches[i] = batch
			//
			return nil
		})
	}
	//
	if err := g.Wait(); err != nil {
		return register.Registers{}, err
	}
	//
	for _, batch := range batches {
		regs.Append(batch)
	}
	//
	stats.Log("running %d circuits (parallelism %d)", len(runs), r.parallelism)
	//
	return regs, nil
}

// RunMeasurement runs every circuit of a measurement and evaluates the
// resulting registers.
func (r *Runner) RunMeasurement(ctx context.Context,
	m measurement.Measurement) (util.Option[map[string]float64], error) {
	regs, err := r.RunMeasurementRegisters(ctx, m)
	if err != nil {
		return util.None[map[string]float64](), err
	}
	//
	return r.evaluator.Evaluate(m, regs)
}

// RunMeasurementConcurrently runs the circuits of a measurement concurrently
// and evaluates the resulting registers.
func (r *Runner) RunMeasurementConcurrently(ctx context.Context,
	m measurement.Measurement) (util.Option[map[string]float64], error) {
	regs, err := r.RunMeasurementRegistersConcurrently(ctx, m)
	if err != nil {
		return util.None[map[string]float64](), err
	}
	//
	log.Debugf("evaluating %T over %d bit, %d float and %d complex registers", m, len(regs.Bits),
		len(regs.Floats), len(regs.Complexes))
	//
	return r.evaluator.Evaluate(m, regs)
}
