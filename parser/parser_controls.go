package parser

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
)

// parseIfStatement parses `if cond { ... }` with optional `else if`
// chaining and a final bare `else`. Conditions are not parenthesized:
// the expression is parsed up to the block's opening brace.
func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.cur
	p.expect(token.IF)
	cond := p.parseExpression()
	then := p.parseBlockStatement()
	stmt := &ast.IfStatement{Base: ast.At(tok), Condition: cond, Then: then}

	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			stmt.ElseIf = p.parseIfStatement().(*ast.IfStatement)
		} else {
			stmt.Else = p.parseBlockStatement()
		}
	}
	return stmt
}

// parseTryStatement parses `try { ... } catch (name)? { ... }`. The
// catch variable may be parenthesized or bare, and may be omitted
// entirely.
func (p *Parser) parseTryStatement() ast.Statement {
	tok := p.cur
	p.expect(token.TRY)
	tryBlock := p.parseBlockStatement()
	p.expect(token.CATCH)

	var catchVar string
	if p.curIs(token.LPAREN) {
		p.advance()
		if p.curIs(token.IDENT) {
			catchVar = p.cur.Literal
			p.advance()
		}
		p.expect(token.RPAREN)
	} else if p.curIs(token.IDENT) {
		catchVar = p.cur.Literal
		p.advance()
	}

	catchBlock := p.parseBlockStatement()
	return &ast.TryStatement{Base: ast.At(tok), Try: tryBlock, CatchVar: catchVar, Catch: catchBlock}
}
