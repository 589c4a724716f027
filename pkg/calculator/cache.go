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
package calculator

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed expressions retained by a cache
// when no size is configured.
const DefaultCacheSize = 128

// Cache retains recently parsed expressions, such that symbolic parameters
// which are evaluated repeatedly (e.g. once per measurement run) are parsed
// only once.  A cache is safe for concurrent use.
type Cache struct {
	terms *lru.Cache[string, Term]
}

// NewCache constructs a cache holding at most size parsed expressions.  A
// non-positive size disables caching altogether.
func NewCache(size int) *Cache {
	if size <= 0 {
		return &Cache{nil}
	}
	//
	terms, err := lru.New[string, Term](size)
	if err != nil {
		// Only possible for non-positive sizes
		panic(err)
	}
	//
	return &Cache{terms}
}

// Parse returns the parsed form of an expression, consulting the cache first.
// Expressions which fail to parse are never cached, and a nil cache simply
// parses every expression.
func (c *Cache) Parse(expr string) (Term, error) {
	if c != nil && c.terms != nil {
		if term, ok := c.terms.Get(expr); ok {
			return term, nil
		}
	}
	//
	term, err := Parse(expr)
	if err != nil {
		return nil, err
	} else if c != nil && c.terms != nil {
		c.terms.Add(expr, term)
	}
	//
	return term, nil
}

// Len returns the number of expressions currently cached.
func (c *Cache) Len() int {
	if c == nil || c.terms == nil {
		return 0
	}
	//
	return c.terms.Len()
}
