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
	"fmt"
	"slices"
	"strconv"

	"github.com/roqoqo/roqoqo-go/pkg/util/source"
	"github.com/roqoqo/roqoqo-go/pkg/util/source/lex"
)

// Parse a given input string into an arithmetic term.  Constants (e.g. pi) are
// resolved here, and every function call is checked against the builtin
// functions, so that evaluating a parsed term can only fail on missing
// variables or division by zero.
func Parse(input string) (Term, error) {
	srcfile := source.NewSourceFile("expr", []byte(input))
	//
	tokens, serr := tokenizer.Tokenize(srcfile)
	if serr != nil {
		return nil, &ParseError{serr}
	}
	//
	parser := &Parser{srcfile, tokens, 0}
	// Parse term
	term, err := parser.parseExpression()
	// Check all parsed
	if err == nil && !parser.Done() {
		return nil, parser.syntaxError(parser.lookahead(), "unexpected token")
	} else if err != nil {
		return nil, err
	}
	// All good!
	return term, nil
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// COMMA separates function arguments
const COMMA uint = 4

// NUMBER signals a decimal number
const NUMBER uint = 5

// IDENTIFIER signals a variable, constant or function name.
const IDENTIFIER uint = 6

// ADD represents addition
const ADD uint = 7

// SUB represents subtraction (or negation)
const SUB uint = 8

// MUL represents multiplication
const MUL uint = 9

// DIV represents division
const DIV uint = 10

// POW represents exponentiation
const POW uint = 11

var operators = map[uint]string{ADD: "+", SUB: "-", MUL: "*", DIV: "/", POW: "^"}

var (
	letter     = lex.Either(lex.OneOf("_"), lex.Between('a', 'z'), lex.Between('A', 'Z'))
	identifier = lex.Then(letter, lex.Repeat(lex.Either(letter, lex.Between('0', '9'))))
)

// Splits expressions into tokens, dropping whitespace.  Numbers are matched
// before identifiers so "1e3" is read as a single literal.
var tokenizer = lex.NewTokenizer(END_OF,
	lex.NewRule(lex.OneOf("("), LBRACE),
	lex.NewRule(lex.OneOf(")"), RBRACE),
	lex.NewRule(lex.OneOf(","), COMMA),
	lex.NewRule(lex.OneOf("+"), ADD),
	lex.NewRule(lex.OneOf("-"), SUB),
	lex.NewRule(lex.Literal("**"), POW),
	lex.NewRule(lex.OneOf("*"), MUL),
	lex.NewRule(lex.OneOf("/"), DIV),
	lex.NewRule(lex.OneOf("^"), POW),
	lex.NewRule(lex.Some(lex.OneOf(" \t\r\n")), WHITESPACE),
	lex.NewRule(lex.Decimal(), NUMBER),
	lex.NewRule(identifier, IDENTIFIER),
).Skipping(WHITESPACE)

// Parser is a recursive descent parser for arithmetic expressions.  From lowest
// to highest binding, the levels are: addition and subtraction, multiplication
// and division, unary signs, then exponentiation (which is right associative).
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *Parser) parseExpression() (Term, error) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (Term, error) {
	lhs, err := p.parseMultiplicative()
	//
	for err == nil && p.follows(ADD, SUB) {
		var rhs Term
		// Consume operator
		op := p.expect(p.lookahead().Kind)
		//
		if rhs, err = p.parseMultiplicative(); err == nil {
			lhs = &BinOp{op.Kind, lhs, rhs}
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseMultiplicative() (Term, error) {
	lhs, err := p.parseUnary()
	//
	for err == nil && p.follows(MUL, DIV) {
		var rhs Term
		// Consume operator
		op := p.expect(p.lookahead().Kind)
		//
		if rhs, err = p.parseUnary(); err == nil {
			lhs = &BinOp{op.Kind, lhs, rhs}
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseUnary() (Term, error) {
	switch {
	case p.match(SUB):
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return &Negate{arg}, nil
	case p.match(ADD):
		return p.parseUnary()
	}
	//
	return p.parsePower()
}

func (p *Parser) parsePower() (Term, error) {
	base, err := p.parsePrimary()
	//
	if err != nil || !p.match(POW) {
		return base, err
	}
	// Right associative, and permits a signed exponent (e.g. 2^-1)
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	//
	return &BinOp{POW, base, exponent}, nil
}

func (p *Parser) parsePrimary() (Term, error) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedTerm()
	case IDENTIFIER:
		return p.parseIdentifier()
	case NUMBER:
		return p.parseNumber()
	case END_OF:
		return nil, p.syntaxError(token, "unexpected end of expression")
	}
	//
	return nil, p.syntaxError(token, "unknown expression")
}

func (p *Parser) parseBracketedTerm() (Term, error) {
	p.expect(LBRACE)
	//
	term, err := p.parseExpression()
	//
	if err == nil && !p.match(RBRACE) {
		return nil, p.syntaxError(p.lookahead(), "expected ')'")
	}
	//
	return term, err
}

func (p *Parser) parseIdentifier() (Term, error) {
	id := p.expect(IDENTIFIER)
	name := p.string(id)
	//
	if p.follows(LBRACE) {
		return p.parseCall(id, name)
	} else if value, ok := constants[name]; ok {
		return &Number{value}, nil
	}
	//
	return &Variable{name}, nil
}

func (p *Parser) parseCall(id lex.Token, name string) (Term, error) {
	var args []Term
	//
	fn, ok := functions[name]
	if !ok {
		return nil, p.syntaxError(id, "unknown function")
	}
	//
	p.expect(LBRACE)
	//
	for !p.match(RBRACE) {
		if len(args) > 0 && !p.match(COMMA) {
			return nil, p.syntaxError(p.lookahead(), "expected ',' or ')'")
		}
		//
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	if len(args) != fn.arity {
		msg := fmt.Sprintf("expected %d argument(s), found %d", fn.arity, len(args))
		return nil, p.syntaxError(id, msg)
	}
	//
	return &Call{name, args, fn}, nil
}

func (p *Parser) parseNumber() (Term, error) {
	id := p.expect(NUMBER)
	//
	value, err := strconv.ParseFloat(p.string(id), 64)
	if err != nil {
		return nil, p.syntaxError(id, "invalid number")
	}
	//
	return &Number{value}, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxError(token lex.Token, msg string) error {
	return &ParseError{p.srcfile.SyntaxError(token.Span, msg)}
}
