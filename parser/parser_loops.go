package parser

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
)

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.cur
	p.expect(token.WHILE)
	cond := p.parseExpression()
	body := p.parseBlockStatement()
	return &ast.WhileStatement{Base: ast.At(tok), Condition: cond, Body: body}
}

// parseForInStatement parses `for x in expr { ... }`.
func (p *Parser) parseForInStatement() ast.Statement {
	tok := p.cur
	p.expect(token.FOR)
	nameTok := p.expect(token.IDENT)
	p.expect(token.IN)
	iterable := p.parseExpression()
	body := p.parseBlockStatement()
	return &ast.ForInStatement{Base: ast.At(tok), Variable: nameTok.Literal, Iterable: iterable, Body: body}
}
