// Package parser is a hand-written recursive-descent, precedence
// climbing parser that turns a lexer's token stream into an AST.
// Parsing has no error recovery: the first malformed construct is
// fatal, matching the language's "no recoverable parse errors" rule.
package parser

import (
	"fmt"

	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/lexer"
	"github.com/jung-lang/jung/token"
	"go.uber.org/zap"
)

// logger receives --debug diagnostics; cmd/jung's root command installs
// a real one via SetLogger, tests and library callers get a no-op.
var logger = zap.NewNop().Sugar()

// SetLogger installs the logger used for parser diagnostics.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// Error is a fatal parse error: an unexpected token or a missing
// delimiter.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] parse error: %s", e.Line, e.Column, e.Msg)
}

func fail(tok token.Token, format string, args ...interface{}) {
	panic(&Error{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf(format, args...)})
}

// Parser holds the lexer and a one-token lookahead window.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.advance()
	p.advance()
	return p
}

// Parse consumes the whole token stream and returns the program AST.
// Lexer and parser fatal errors are recovered here and returned as a
// normal error value; any other panic propagates.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	logger.Debugw("parse starting")
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *Error:
				logger.Debugw("parse failed", "error", e.Error())
				err = e
			case *lexer.Error:
				logger.Debugw("parse failed", "error", e.Error())
				err = e
			default:
				panic(r)
			}
		}
	}()

	startTok := p.cur
	prog = ast.NewProgram(startTok)
	p.skipSemicolons()
	for !p.curIs(token.EOF) {
		prog.Statements = append(prog.Statements, p.parseStatement())
		p.skipSemicolons()
	}
	logger.Debugw("parse complete", "statements", len(prog.Statements))
	return prog, nil
}

// ParseExpressionSnippet parses src as a single expression followed by
// EOF; anything left over after the expression is a parse error.
func ParseExpressionSnippet(src string) (ast.Expression, error) {
	p := New(lexer.New(src))
	var expr ast.Expression
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				switch e := r.(type) {
				case *Error:
					err = e
				case *lexer.Error:
					err = e
				default:
					panic(r)
				}
			}
		}()
		expr = p.parseExpression()
		if !p.curIs(token.EOF) {
			fail(p.cur, "unexpected %s (%q) after expression", p.cur.Type, p.cur.Literal)
		}
		return nil
	}()
	return expr, err
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect asserts the current token's type, consumes it, and returns
// it. It fails fatally on a mismatch.
func (p *Parser) expect(t token.Type) token.Token {
	if p.cur.Type != t {
		fail(p.cur, "expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
	}
	tok := p.cur
	p.advance()
	return tok
}

// skipSemicolons consumes zero or more optional statement terminators.
func (p *Parser) skipSemicolons() {
	for p.curIs(token.SEMICOLON) {
		p.advance()
	}
}
