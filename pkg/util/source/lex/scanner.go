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
package lex

// Scanner determines how many leading runes of some text it accepts.  A
// scanner may accept the empty prefix, hence acceptance is signalled
// separately from length.
type Scanner func(text []rune) (int, bool)

// Literal accepts exactly the given text.
func Literal(s string) Scanner {
	expected := []rune(s)
	//
	return func(text []rune) (int, bool) {
		if len(text) < len(expected) {
			return 0, false
		}
		//
		for i, c := range expected {
			if text[i] != c {
				return 0, false
			}
		}
		//
		return len(expected), true
	}
}

// OneOf accepts any single rune from the given set.
func OneOf(chars string) Scanner {
	return func(text []rune) (int, bool) {
		if len(text) > 0 {
			for _, c := range chars {
				if text[0] == c {
					return 1, true
				}
			}
		}
		//
		return 0, false
	}
}

// Between accepts any single rune within an inclusive range.
func Between(lowest rune, highest rune) Scanner {
	return func(text []rune) (int, bool) {
		if len(text) > 0 && lowest <= text[0] && text[0] <= highest {
			return 1, true
		}
		//
		return 0, false
	}
}

// Either accepts using the first of the given scanners which accepts.
func Either(scanners ...Scanner) Scanner {
	return func(text []rune) (int, bool) {
		for _, scanner := range scanners {
			if n, ok := scanner(text); ok {
				return n, true
			}
		}
		//
		return 0, false
	}
}

// Then accepts text made up of consecutive pieces, each accepted by the
// corresponding scanner in turn.
func Then(scanners ...Scanner) Scanner {
	return func(text []rune) (int, bool) {
		n := 0
		//
		for _, scanner := range scanners {
			m, ok := scanner(text[n:])
			if !ok {
				return 0, false
			}
			//
			n += m
		}
		//
		return n, true
	}
}

// Repeat accepts as many consecutive non-empty matches of a scanner as
// possible, including none at all.
func Repeat(scanner Scanner) Scanner {
	return func(text []rune) (int, bool) {
		n := 0
		//
		for n < len(text) {
			m, ok := scanner(text[n:])
			if !ok || m == 0 {
				break
			}
			//
			n += m
		}
		//
		return n, true
	}
}

// Some accepts one or more consecutive matches of a scanner.
func Some(scanner Scanner) Scanner {
	return Then(scanner, Repeat(scanner))
}

// Optional accepts whatever a scanner accepts, or otherwise the empty prefix.
func Optional(scanner Scanner) Scanner {
	return func(text []rune) (int, bool) {
		if n, ok := scanner(text); ok {
			return n, true
		}
		//
		return 0, true
	}
}

// Decimal accepts a decimal floating point literal such as "1", "1.5", ".5",
// "2e-3" or "1.5E+10".  An exponent marker which is not followed by digits is
// not consumed, so that "2e" is accepted as "2" alone.
func Decimal() Scanner {
	var (
		digits   = Some(Between('0', '9'))
		fraction = Then(Literal("."), Optional(digits))
		exponent = Then(OneOf("eE"), Optional(OneOf("+-")), digits)
		mantissa = Either(
			Then(digits, Optional(fraction)),
			Then(Literal("."), digits),
		)
	)
	//
	return Then(mantissa, Optional(exponent))
}
