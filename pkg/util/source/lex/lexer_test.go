package lex

import (
	"testing"

	"github.com/roqoqo/roqoqo-go/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	EOF uint = iota
	SPACE
	OPEN
	CLOSE
	NUM
	STAR
	POWER
	NAME
)

var testRules = []Rule{
	NewRule(OneOf("("), OPEN),
	NewRule(OneOf(")"), CLOSE),
	NewRule(Literal("**"), POWER),
	NewRule(OneOf("*"), STAR),
	NewRule(Some(OneOf(" \t")), SPACE),
	NewRule(Decimal(), NUM),
	NewRule(Then(Between('a', 'z'), Repeat(Between('a', 'z'))), NAME),
}

func Test_Tokenize_01(t *testing.T) {
	checkTokens(t, NewTokenizer(EOF, testRules...), "", Token{EOF, source.NewSpan(0, 0)})
}

func Test_Tokenize_02(t *testing.T) {
	checkTokens(t, NewTokenizer(EOF, testRules...), "(  )",
		Token{OPEN, source.NewSpan(0, 1)},
		Token{SPACE, source.NewSpan(1, 3)},
		Token{CLOSE, source.NewSpan(3, 4)},
		Token{EOF, source.NewSpan(4, 4)})
}

func Test_Tokenize_03(t *testing.T) {
	tokenizer := NewTokenizer(EOF, testRules...).Skipping(SPACE)
	//
	checkTokens(t, tokenizer, "( x ** 2e-10 )",
		Token{OPEN, source.NewSpan(0, 1)},
		Token{NAME, source.NewSpan(2, 3)},
		Token{POWER, source.NewSpan(4, 6)},
		Token{NUM, source.NewSpan(7, 12)},
		Token{CLOSE, source.NewSpan(13, 14)},
		Token{EOF, source.NewSpan(14, 14)})
}

func Test_Tokenize_04(t *testing.T) {
	tokenizer := NewTokenizer(EOF, testRules...).Skipping(SPACE)
	// Rule order decides between "**" and "*"
	checkTokens(t, tokenizer, "a***b",
		Token{NAME, source.NewSpan(0, 1)},
		Token{POWER, source.NewSpan(1, 3)},
		Token{STAR, source.NewSpan(3, 4)},
		Token{NAME, source.NewSpan(4, 5)},
		Token{EOF, source.NewSpan(5, 5)})
}

func Test_Tokenize_05(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("(1 # 2)"))
	//
	tokens, err := NewTokenizer(EOF, testRules...).Tokenize(srcfile)
	require.NotNil(t, err)
	assert.Nil(t, tokens)
	assert.Equal(t, "unknown text encountered", err.Message())
	assert.Equal(t, source.NewSpan(3, 7), err.Span())
}

func Test_Tokenize_06(t *testing.T) {
	base := NewTokenizer(EOF, testRules...)
	skipping := base.Skipping(SPACE)
	// Skipping does not affect the original tokenizer
	checkTokens(t, base, " ", Token{SPACE, source.NewSpan(0, 1)}, Token{EOF, source.NewSpan(1, 1)})
	checkTokens(t, skipping, " ", Token{EOF, source.NewSpan(1, 1)})
}

func Test_Decimal_01(t *testing.T) {
	checkScanner(t, Decimal(), "e5", 0, false)
	checkScanner(t, Decimal(), ".5", 2, true)
	checkScanner(t, Decimal(), "2e", 1, true)
	checkScanner(t, Decimal(), "1.5E+10x", 7, true)
	checkScanner(t, Decimal(), "3.", 2, true)
	checkScanner(t, Decimal(), ".", 0, false)
	checkScanner(t, Decimal(), "12e-", 2, true)
}

func Test_Scanner_01(t *testing.T) {
	checkScanner(t, Literal("ab"), "abc", 2, true)
	checkScanner(t, Literal("ab"), "a", 0, false)
	checkScanner(t, OneOf("xy"), "yz", 1, true)
	checkScanner(t, OneOf("xy"), "", 0, false)
	checkScanner(t, Between('0', '9'), "7", 1, true)
	checkScanner(t, Between('0', '9'), "a", 0, false)
}

func Test_Scanner_02(t *testing.T) {
	digits := Repeat(Between('0', '9'))
	//
	checkScanner(t, digits, "", 0, true)
	checkScanner(t, digits, "123a", 3, true)
	checkScanner(t, Some(Between('0', '9')), "a", 0, false)
	checkScanner(t, Optional(Literal("-")), "5", 0, true)
	checkScanner(t, Then(Literal("-"), digits), "-42", 3, true)
	checkScanner(t, Either(Literal("x"), Literal("y")), "y", 1, true)
	checkScanner(t, Either(Literal("x"), Literal("y")), "z", 0, false)
}

func checkTokens(t *testing.T, tokenizer *Tokenizer, input string, expected ...Token) {
	srcfile := source.NewSourceFile("test", []byte(input))
	//
	tokens, err := tokenizer.Tokenize(srcfile)
	require.Nil(t, err)
	assert.Equal(t, expected, tokens)
}

func checkScanner(t *testing.T, scanner Scanner, input string, n int, ok bool) {
	m, accepted := scanner([]rune(input))
	assert.Equal(t, ok, accepted, "accepting %q", input)
	assert.Equal(t, n, m, "length of %q", input)
}
