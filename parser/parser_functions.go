package parser

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
)

// parseFunctionDefinition parses `fn name(params) { body }`. Each
// parameter may carry a default-value expression (`name = expr`).
func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	tok := p.cur
	p.expect(token.FN)
	nameTok := p.expect(token.IDENT)
	params := p.parseParameterList()
	body := p.parseBlockStatement()
	return &ast.FunctionDefinition{Base: ast.At(tok), Name: nameTok.Literal, Parameters: params, Body: body}
}

func (p *Parser) parseParameterList() []ast.Parameter {
	p.expect(token.LPAREN)
	var params []ast.Parameter
	for !p.curIs(token.RPAREN) {
		nameTok := p.expect(token.IDENT)
		param := ast.Parameter{Name: nameTok.Literal}
		if p.curIs(token.ASSIGN) {
			p.advance()
			param.Default = p.parseExpression()
		}
		params = append(params, param)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

// parseClassDefinition parses `class Name { fn method(...) {...} ... }`.
func (p *Parser) parseClassDefinition() ast.Statement {
	tok := p.cur
	p.expect(token.CLASS)
	nameTok := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	class := &ast.ClassDefinition{Base: ast.At(tok), Name: nameTok.Literal}
	p.skipSemicolons()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		class.Methods = append(class.Methods, p.parseFunctionDefinition())
		p.skipSemicolons()
	}
	p.expect(token.RBRACE)
	return class
}
