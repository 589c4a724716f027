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
package source

import (
	"fmt"
	"strings"
)

// Span identifies the runes [start, end) of some source text, such that errors
// can point at the offending part of an expression.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span, and panics if it ends before it starts.
func NewSpan(start int, end int) Span {
	if end < start {
		panic(fmt.Sprintf("invalid span [%d,%d)", start, end))
	}
	//
	return Span{start, end}
}

// Start returns the index of the first rune covered.
func (p Span) Start() int {
	return p.start
}

// End returns the index one past the last rune covered.
func (p Span) End() int {
	return p.end
}

// Length returns the number of runes covered.
func (p Span) Length() int {
	return p.end - p.start
}

// File is a named piece of source text, such as a symbolic expression.
type File struct {
	name     string
	contents []rune
}

// NewSourceFile constructs a source file with a given name and contents.
func NewSourceFile(name string, bytes []byte) *File {
	return &File{name, []rune(string(bytes))}
}

// Contents returns the text of this file as runes.
func (s *File) Contents() []rune {
	return s.contents
}

// SyntaxError reports a problem with a given span of this file.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// SyntaxError is a problem found at a particular span of a source file.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// Span returns the span of text this error applies to.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message, without any position information.
func (p *SyntaxError) Message() string {
	return p.msg
}

func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.name, p.span.start, p.span.end, p.msg)
}

// Highlight renders the source text with carets underneath the span of this
// error, as shown to users for malformed expressions.
func (p *SyntaxError) Highlight() string {
	var (
		text  = string(p.srcfile.contents)
		start = min(p.span.start, len(p.srcfile.contents))
		width = max(1, p.span.Length())
	)
	//
	return text + "\n" + strings.Repeat(" ", start) + strings.Repeat("^", width)
}
