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

	"github.com/roqoqo/roqoqo-go/pkg/circuit"
	"github.com/roqoqo/roqoqo-go/pkg/register"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/iter"
)

// Backend executes circuits, e.g. on a simulator or on hardware.  A backend
// consumes the operations of one circuit (definitions first) and returns the
// registers written by that circuit.  A backend may be called from multiple
// goroutines at once by a concurrent runner, hence implementations must
// either be safe for concurrent use or be used with a parallelism of one.
type Backend interface {
	RunCircuitIterator(ctx context.Context, ops iter.Iterator[circuit.Operation]) (register.Registers, error)
}

// BackendFunc adapts a function into a backend.
type BackendFunc func(ctx context.Context, ops iter.Iterator[circuit.Operation]) (register.Registers, error)

// RunCircuitIterator implementation for the Backend interface.
func (fn BackendFunc) RunCircuitIterator(ctx context.Context,
	ops iter.Iterator[circuit.Operation]) (register.Registers, error) {
	return fn(ctx, ops)
}
