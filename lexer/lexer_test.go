package lexer

import (
	"testing"

	"github.com/jung-lang/jung/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetLoggerInstallsAndIgnoresNil(t *testing.T) {
	defer SetLogger(zap.NewNop().Sugar())

	dev, err := zap.NewDevelopment()
	require.NoError(t, err)
	SetLogger(dev.Sugar())
	assert.NotPanics(t, func() { New(`"hi"`).Tokenize() })

	SetLogger(nil)
	assert.NotPanics(t, func() { New(`"hi"`).Tokenize() })
}

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestNextTokenOperatorsAndPunctuation(t *testing.T) {
	src := `+ - * / % = += -= *= /= == != < <= > >= ? ( ) { } [ ] , ; : .`
	toks := New(src).Tokenize()
	want := []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.ASSIGN, token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ,
		token.EQ, token.NOT_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ,
		token.QUESTION, token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.SEMICOLON, token.COLON, token.DOT,
	}
	assert.Equal(t, want, typesOf(toks))
}

func TestJungianKeywordAliasesLexIdentically(t *testing.T) {
	conventional := New(`let fn class if try catch throw return print new this null`).Tokenize()
	jungian := New(`perceive individuation archetype if confront embrace reject manifest project emerge Self unconscious`).Tokenize()
	assert.Equal(t, typesOf(conventional), typesOf(jungian))
}

func TestReadNumber(t *testing.T) {
	toks := New(`42 3.14 0`).Tokenize()
	require.Len(t, toks, 3)
	assert.Equal(t, 42.0, toks[0].Num)
	assert.Equal(t, 3.14, toks[1].Num)
	assert.Equal(t, 0.0, toks[2].Num)
}

func TestPlainStringEscapes(t *testing.T) {
	toks := New(`"hello\nworld\t\"quoted\" \$5 \q"`).Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello\nworld\t\"quoted\" $5 q", toks[0].Literal)
}

func TestInterpolatedString(t *testing.T) {
	toks := New(`"hi ${name}!"`).Tokenize()
	want := []token.Type{
		token.INTERP_BEG, token.STRING,
		token.INTERP_EXPR_BEG, token.IDENT, token.INTERP_EXPR_END,
		token.STRING, token.INTERP_END,
	}
	require.Equal(t, want, typesOf(toks))
	assert.Equal(t, "hi ", toks[1].Literal)
	assert.Equal(t, "name", toks[3].Literal)
	assert.Equal(t, "!", toks[5].Literal)
}

func TestInterpolatedStringWithNestedObjectLiteral(t *testing.T) {
	toks := New(`"v=${ {a: 1}.a }"`).Tokenize()
	want := []token.Type{
		token.INTERP_BEG, token.STRING,
		token.INTERP_EXPR_BEG,
		token.LBRACE, token.IDENT, token.COLON, token.NUMBER, token.RBRACE, token.DOT, token.IDENT,
		token.INTERP_EXPR_END,
		token.INTERP_END,
	}
	assert.Equal(t, want, typesOf(toks))
}

func TestInterpolationLeadingAndTrailingLiteralOmittedWhenEmpty(t *testing.T) {
	toks := New(`"${x}"`).Tokenize()
	want := []token.Type{token.INTERP_BEG, token.INTERP_EXPR_BEG, token.IDENT, token.INTERP_EXPR_END, token.INTERP_END}
	assert.Equal(t, want, typesOf(toks))
}

// TestInterpolationExpressionStartingWithStringLiteral reproduces the
// fixed bug: an embedded expression beginning with a string literal
// used to be mistaken for a bare literal-text part.
func TestInterpolationExpressionStartingWithStringLiteral(t *testing.T) {
	toks := New(`"${"x" + "y"}"`).Tokenize()
	want := []token.Type{
		token.INTERP_BEG,
		token.INTERP_EXPR_BEG, token.STRING, token.PLUS, token.STRING, token.INTERP_EXPR_END,
		token.INTERP_END,
	}
	assert.Equal(t, want, typesOf(toks))
}

func TestUnterminatedStringPanicsWithLexError(t *testing.T) {
	assert.Panics(t, func() {
		New(`"unterminated`).Tokenize()
	})
}

func TestUnexpectedCharacterPanicsWithLexError(t *testing.T) {
	assert.Panics(t, func() {
		New(`@`).Tokenize()
	})
}

func TestCommentsAreSkipped(t *testing.T) {
	src := "let x = 1 # trailing comment\n// another\nlet y = 2"
	toks := New(src).Tokenize()
	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
	}
	assert.Equal(t, want, typesOf(toks))
}
