package parser

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
)

// parseStatement dispatches on the current token to the right
// statement-parsing function.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.LET:
		return p.parseVarDeclaration()
	case token.FN:
		return p.parseFunctionDefinition()
	case token.CLASS:
		return p.parseClassDefinition()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForInStatement()
	case token.BREAK:
		tok := p.cur
		p.advance()
		return &ast.BreakStatement{Base: ast.At(tok)}
	case token.CONTINUE:
		tok := p.cur
		p.advance()
		return &ast.ContinueStatement{Base: ast.At(tok)}
	case token.RETURN:
		return p.parseReturnStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.IMPORT:
		return p.parseImportStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

// parseBlockStatement parses a brace-delimited statement list.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tok := p.expect(token.LBRACE)
	block := &ast.BlockStatement{Base: ast.At(tok)}
	p.skipSemicolons()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		block.Statements = append(block.Statements, p.parseStatement())
		p.skipSemicolons()
	}
	p.expect(token.RBRACE)
	return block
}

func (p *Parser) parseVarDeclaration() ast.Statement {
	tok := p.cur
	p.expect(token.LET)
	nameTok := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	return &ast.VarDeclaration{Base: ast.At(tok), Name: nameTok.Literal, Value: value}
}

func (p *Parser) parsePrintStatement() ast.Statement {
	tok := p.cur
	p.expect(token.PRINT)
	value := p.parseExpression()
	return &ast.PrintStatement{Base: ast.At(tok), Value: value}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.cur
	p.expect(token.RETURN)
	stmt := &ast.ReturnStatement{Base: ast.At(tok)}
	if !p.curIs(token.SEMICOLON) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt.Value = p.parseExpression()
	}
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	tok := p.cur
	p.expect(token.THROW)
	value := p.parseExpression()
	return &ast.ThrowStatement{Base: ast.At(tok), Value: value}
}

func (p *Parser) parseImportStatement() ast.Statement {
	tok := p.cur
	p.expect(token.IMPORT)
	pathTok := p.expect(token.STRING)
	return &ast.ImportStatement{Base: ast.At(tok), Path: pathTok.Literal}
}
