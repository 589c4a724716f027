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
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a release of the serialisation format as a
// (major, minor, patch) triple.  Only the major and minor components take part
// in compatibility decisions; the patch level is informational.
type Version struct {
	Major uint32 `json:"major_version"`
	Minor uint32 `json:"minor_version"`
	Patch uint32 `json:"patch_version"`
}

// New constructs a version from its components.
func New(major, minor, patch uint32) Version {
	return Version{major, minor, patch}
}

// Base is the oldest version of the format.  Every entity requires at least
// this.
var Base = Version{1, 0, 0}

// library is the version implemented by this package.  It is never modified;
// callers that need another version (e.g. when emulating an older reader)
// construct codecs with an explicit version instead.
var library = Version{1, 15, 0}

// Library returns the version implemented by this library.
func Library() Version {
	return library
}

// Versioned is implemented by every entity which can be serialised.  It
// reports the oldest format version able to decode the entity as it currently
// stands, which depends on which nested items are actually present.
type Versioned interface {
	MinimumSupportedVersion() Version
}

// Parse a version string of the form "major.minor" or "major.minor.patch".
func Parse(s string) (Version, error) {
	var (
		parts = strings.Split(strings.TrimSpace(s), ".")
		nums  [3]uint32
	)
	//
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("malformed version \"%s\"", s)
	}
	//
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("malformed version \"%s\"", s)
		}
		//
		nums[i] = uint32(n)
	}
	//
	return Version{nums[0], nums[1], nums[2]}, nil
}

// Cmp compares two versions lexicographically, returning -1, 0 or 1.
func (v Version) Cmp(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmp3(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmp3(v.Minor, o.Minor)
	default:
		return cmp3(v.Patch, o.Patch)
	}
}

// Supports determines whether a reader of this version can decode an entity
// requiring the given version.  Readers only accept entities of their own
// major version, and no newer minor version.
func (v Version) Supports(required Version) bool {
	return v.Major == required.Major && required.Minor <= v.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Max returns the largest of the given versions, or Base if none are given.
func Max(versions ...Version) Version {
	result := Base
	//
	for _, v := range versions {
		if v.Cmp(result) > 0 {
			result = v
		}
	}
	//
	return result
}

// Minimum determines the minimum supported version of a container from a base
// version for the container itself and the items it contains.
func Minimum[T Versioned](base Version, items ...T) Version {
	result := base
	//
	for _, item := range items {
		result = Max(result, item.MinimumSupportedVersion())
	}
	//
	return result
}

func cmp3(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
