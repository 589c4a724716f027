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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/roqoqo/roqoqo-go/pkg/register"
)

const (
	metricsNamespace = "roqoqo"
	metricsSubsystem = "backend"
)

// Metrics records circuit runs performed through a runner.  A nil *Metrics
// records nothing.
type Metrics struct {
	// Circuits run, by status (success/error)
	circuitsTotal *prometheus.CounterVec
	// Shots returned, by register type (bits/floats/complexes)
	shotsTotal *prometheus.CounterVec
	// Duration of each circuit run
	circuitDuration prometheus.Histogram
	// Circuits currently running
	activeCircuits prometheus.Gauge
}

// NewMetrics constructs the metrics of a runner, registering them with a
// given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	//
	return &Metrics{
		circuitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "circuits_total",
				Help:      "Total number of circuits run",
			},
			[]string{"status"},
		),
		shotsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "shots_total",
				Help:      "Total number of shots returned across all registers",
			},
			[]string{"register"},
		),
		circuitDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "circuit_duration_seconds",
				Help:      "Duration of circuit runs",
				Buckets:   prometheus.DefBuckets,
			},
		),
		activeCircuits: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "active_circuits",
				Help:      "Number of circuits currently running",
			},
		),
	}
}

func (m *Metrics) started() {
	if m != nil {
		m.activeCircuits.Inc()
	}
}

func (m *Metrics) finished(elapsed time.Duration, regs register.Registers, err error) {
	if m == nil {
		return
	}
	//
	m.activeCircuits.Dec()
	m.circuitDuration.Observe(elapsed.Seconds())
	//
	if err != nil {
		m.circuitsTotal.WithLabelValues("error").Inc()
		return
	}
	//
	m.circuitsTotal.WithLabelValues("success").Inc()
	m.shotsTotal.WithLabelValues("bits").Add(float64(countShots(regs.Bits)))
	m.shotsTotal.WithLabelValues("floats").Add(float64(countShots(regs.Floats)))
	m.shotsTotal.WithLabelValues("complexes").Add(float64(countShots(regs.Complexes)))
}

func countShots[T any](regs map[string]register.Register[T]) int {
	count := 0
	for _, reg := range regs {
		count += reg.Shots()
	}
	//
	return count
}
