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

import (
	"slices"

	"github.com/roqoqo/roqoqo-go/pkg/util/source"
)

// Token is a lexeme of a given kind, covering a span of the source text.
type Token struct {
	Kind uint
	Span source.Span
}

// Rule maps the text accepted by a scanner to a given kind of token.
type Rule struct {
	scanner Scanner
	kind    uint
}

// NewRule constructs a rule producing tokens of a given kind.
func NewRule(scanner Scanner, kind uint) Rule {
	return Rule{scanner, kind}
}

// Tokenizer splits source text into tokens.  At each position rules are tried
// in order, and the first to accept a non-empty prefix wins.  Hence, a rule for
// an operator must precede any rule for one of its prefixes (e.g. "**"
// before "*").
type Tokenizer struct {
	rules []Rule
	// Kinds of token dropped from the output (e.g. whitespace).
	skip []uint
	// Kind of the empty token marking the end of the text.
	eof uint
}

// NewTokenizer constructs a tokenizer from a given set of rules, where eof is
// the kind of token appended once all text is consumed.
func NewTokenizer(eof uint, rules ...Rule) *Tokenizer {
	return &Tokenizer{rules, nil, eof}
}

// Skipping returns a tokenizer which drops tokens of the given kinds.
func (t *Tokenizer) Skipping(kinds ...uint) *Tokenizer {
	return &Tokenizer{t.rules, append(slices.Clone(t.skip), kinds...), t.eof}
}

// Tokenize the contents of a source file.  Text accepted by no rule is
// reported as an error spanning the remainder of the file.
func (t *Tokenizer) Tokenize(srcfile *source.File) ([]Token, *source.SyntaxError) {
	var (
		text   = srcfile.Contents()
		tokens []Token
	)
	//
	for pos := 0; pos < len(text); {
		n, kind := t.match(text[pos:])
		if n == 0 {
			return nil, srcfile.SyntaxError(source.NewSpan(pos, len(text)), "unknown text encountered")
		}
		//
		if !slices.Contains(t.skip, kind) {
			tokens = append(tokens, Token{kind, source.NewSpan(pos, pos+n)})
		}
		//
		pos += n
	}
	//
	return append(tokens, Token{t.eof, source.NewSpan(len(text), len(text))}), nil
}

// Determines the length and kind of the token at the start of some text, where
// a length of zero indicates no rule applies.
func (t *Tokenizer) match(text []rune) (int, uint) {
	for _, rule := range t.rules {
		if n, ok := rule.scanner(text); ok && n > 0 {
			return min(n, len(text)), rule.kind
		}
	}
	//
	return 0, 0
}
