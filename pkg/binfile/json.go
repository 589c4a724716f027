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
package binfile

import (
	"encoding/json"

	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// envelope is the JSON form of a file.  The kind and required version sit
// alongside the data, such that both are checked before the data is decoded.
type envelope struct {
	Kind       string           `json:"kind"`
	MinVersion *version.Version `json:"min_version"`
	Data       json.RawMessage  `json:"data"`
}

// EncodeJSON encodes a value as a JSON envelope.
func (c *Codec) EncodeJSON(value version.Versioned) ([]byte, error) {
	header, err := c.header(value, nil)
	if err != nil {
		return nil, err
	}
	//
	data, err := json.Marshal(value)
	if err != nil {
		return nil, &roqoqo.SerializationError{Msg: "encoding payload", Err: err, Encoding: true}
	}
	//
	return json.Marshal(envelope{header.Kind.String(), &header.Required, data})
}

// DecodeJSON decodes a value from a JSON envelope, returning a pointer to
// it (e.g. *circuit.Circuit).
func (c *Codec) DecodeJSON(data []byte) (version.Versioned, error) {
	var env envelope
	//
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &roqoqo.SerializationError{Msg: "malformed json file", Err: err}
	}
	//
	kind, ok := ParseKind(env.Kind)
	if !ok {
		return nil, &roqoqo.SerializationError{Msg: "unknown kind \"" + env.Kind + "\""}
	}
	//
	if env.MinVersion == nil {
		return nil, &roqoqo.SerializationError{Msg: "missing min_version for " + kind.String()}
	}
	//
	value, err := c.allocate(kind, *env.MinVersion)
	if err != nil {
		return nil, err
	} else if len(env.Data) == 0 {
		return nil, &roqoqo.SerializationError{Msg: "missing data for " + kind.String()}
	} else if err := json.Unmarshal(env.Data, value); err != nil {
		return nil, &roqoqo.SerializationError{Msg: "decoding " + kind.String(), Err: err}
	} else if err := c.check(value); err != nil {
		return nil, err
	}
	//
	return value, nil
}
