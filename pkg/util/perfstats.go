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
package util

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and allocation counters at the point it was
// taken, such that the cost of a circuit run or evaluation can be reported.
type PerfStats struct {
	start  time.Time
	allocs uint64
	gcs    uint32
}

// NewPerfStats takes a snapshot of the current time and allocation counters.
func NewPerfStats() *PerfStats {
	var mem runtime.MemStats
	//
	runtime.ReadMemStats(&mem)
	//
	return &PerfStats{time.Now(), mem.TotalAlloc, mem.NumGC}
}

// Elapsed returns the wall-clock time since the snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Log reports (at debug level) the time taken, memory allocated and garbage
// collections run since the snapshot was taken.  The description is a format
// string for the given arguments.
func (p *PerfStats) Log(format string, args ...any) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	var mem runtime.MemStats
	//
	runtime.ReadMemStats(&mem)
	//
	log.WithFields(log.Fields{
		"elapsed": p.Elapsed().Round(time.Microsecond),
		"allocMb": (mem.TotalAlloc - p.allocs) >> 20,
		"gcs":     mem.NumGC - p.gcs,
	}).Debug(fmt.Sprintf(format, args...))
}
