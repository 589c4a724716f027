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
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed Version

func (f fixed) MinimumSupportedVersion() Version { return Version(f) }

func Test_Version_Parse_01(t *testing.T) {
	v, err := Parse("1.11")
	require.NoError(t, err)
	assert.Equal(t, New(1, 11, 0), v)
	//
	v, err = Parse(" 2.0.3 ")
	require.NoError(t, err)
	assert.Equal(t, New(2, 0, 3), v)
	assert.Equal(t, "2.0.3", v.String())
}

func Test_Version_Parse_02(t *testing.T) {
	for _, s := range []string{"", "1", "1.x", "1.2.3.4", "-1.0"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func Test_Version_Cmp_01(t *testing.T) {
	assert.Equal(t, 0, New(1, 2, 3).Cmp(New(1, 2, 3)))
	assert.Equal(t, -1, New(1, 2, 3).Cmp(New(1, 3, 0)))
	assert.Equal(t, 1, New(2, 0, 0).Cmp(New(1, 15, 9)))
	assert.Equal(t, -1, New(1, 2, 0).Cmp(New(1, 2, 1)))
}

func Test_Version_Supports_01(t *testing.T) {
	lib := New(1, 8, 0)
	assert.True(t, lib.Supports(New(1, 0, 0)))
	assert.True(t, lib.Supports(New(1, 8, 5)))
	assert.False(t, lib.Supports(New(1, 9, 0)))
	assert.False(t, lib.Supports(New(2, 0, 0)))
	assert.False(t, New(2, 0, 0).Supports(New(1, 0, 0)))
}

func Test_Version_Minimum_01(t *testing.T) {
	assert.Equal(t, Base, Max())
	assert.Equal(t, Base, Minimum[fixed](Base))
	//
	v := Minimum(Base, fixed(New(1, 3, 0)), fixed(New(1, 11, 0)), fixed(New(1, 2, 0)))
	assert.Equal(t, New(1, 11, 0), v)
}
