package parser

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
)

// parseExpression is the entry point of the precedence ladder:
// ternary < or < and < equality < comparison < additive <
// multiplicative < unary < postfix < primary.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseTernary()
}

func (p *Parser) parseTernary() ast.Expression {
	cond := p.parseOr()
	if !p.curIs(token.QUESTION) {
		return cond
	}
	tok := p.cur
	p.advance()
	then := p.parseExpression()
	p.expect(token.COLON)
	elseExpr := p.parseExpression()
	return &ast.TernaryExpression{Base: ast.At(tok), Condition: cond, Then: then, Else: elseExpr}
}

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.curIs(token.OR) {
		tok := p.cur
		p.advance()
		right := p.parseAnd()
		left = &ast.BinaryExpression{Base: ast.At(tok), Operator: token.OR, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseEquality()
	for p.curIs(token.AND) {
		tok := p.cur
		p.advance()
		right := p.parseEquality()
		left = &ast.BinaryExpression{Base: ast.At(tok), Operator: token.AND, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for p.curIs(token.EQ) || p.curIs(token.NOT_EQ) {
		op := p.cur
		p.advance()
		right := p.parseComparison()
		left = &ast.BinaryExpression{Base: ast.At(op), Operator: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	for p.curIs(token.LT) || p.curIs(token.LT_EQ) || p.curIs(token.GT) || p.curIs(token.GT_EQ) {
		op := p.cur
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpression{Base: ast.At(op), Operator: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		op := p.cur
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpression{Base: ast.At(op), Operator: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.curIs(token.STAR) || p.curIs(token.SLASH) || p.curIs(token.PERCENT) {
		op := p.cur
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpression{Base: ast.At(op), Operator: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.curIs(token.MINUS) || p.curIs(token.NOT) {
		op := p.cur
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpression{Base: ast.At(op), Operator: op.Type, Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of
// `[index]`, `.field`, `.method(args)`, and `(args)` suffixes.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch {
		case p.curIs(token.LBRACKET):
			tok := p.cur
			p.advance()
			index := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.IndexExpression{Base: ast.At(tok), Container: expr, Index: index}
		case p.curIs(token.DOT):
			p.advance()
			nameTok := p.expect(token.IDENT)
			if p.curIs(token.LPAREN) {
				args := p.parseArgumentList()
				expr = &ast.MethodCallExpression{Base: ast.At(nameTok), Receiver: expr, Method: nameTok.Literal, Arguments: args}
			} else {
				expr = &ast.MemberExpression{Base: ast.At(nameTok), Object: expr, Field: nameTok.Literal}
			}
		case p.curIs(token.LPAREN):
			tok := p.cur
			args := p.parseArgumentList()
			expr = &ast.CallExpression{Base: ast.At(tok), Callee: expr, Arguments: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgumentList() []ast.Expression {
	p.expect(token.LPAREN)
	var args []ast.Expression
	for !p.curIs(token.RPAREN) {
		args = append(args, p.parseExpression())
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return ast.NewNumberLiteral(tok, tok.Num)
	case token.STRING:
		p.advance()
		return ast.NewStringLiteral(tok, tok.Literal)
	case token.INTERP_BEG:
		return p.parseStringInterpolation()
	case token.TRUE:
		p.advance()
		return ast.NewBoolLiteral(tok, true)
	case token.FALSE:
		p.advance()
		return ast.NewBoolLiteral(tok, false)
	case token.NULL:
		p.advance()
		return ast.NewNullLiteral(tok)
	case token.THIS:
		p.advance()
		return ast.NewThisExpression(tok)
	case token.NEW:
		return p.parseNewExpression()
	case token.IDENT:
		p.advance()
		return ast.NewIdentifier(tok, tok.Literal)
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	default:
		fail(tok, "unexpected token %s (%q) in expression", tok.Type, tok.Literal)
	}
	panic("unreachable")
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.cur
	p.expect(token.NEW)
	nameTok := p.expect(token.IDENT)
	args := p.parseArgumentList()
	return &ast.NewExpression{Base: ast.At(tok), ClassName: nameTok.Literal, Arguments: args}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.cur
	p.expect(token.LBRACKET)
	var elems []ast.Expression
	for !p.curIs(token.RBRACKET) {
		elems = append(elems, p.parseExpression())
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACKET)
	return &ast.ArrayLiteral{Base: ast.At(tok), Elements: elems}
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.cur
	p.expect(token.LBRACE)
	var entries []ast.ObjectEntry
	for !p.curIs(token.RBRACE) {
		keyTok := p.expect(token.IDENT)
		p.expect(token.COLON)
		val := p.parseExpression()
		entries = append(entries, ast.ObjectEntry{Key: keyTok.Literal, Value: val})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE)
	return &ast.ObjectLiteral{Base: ast.At(tok), Entries: entries}
}

// parseStringInterpolation consumes an INTERP_BEGIN ... INTERP_END
// region, alternating literal-text STRING tokens with INTERP_EXPR_BEG
// ... INTERP_EXPR_END-bracketed nested expressions. The markers, not
// the token kind, decide which is which — a part is only ever a bare
// literal STRING when it appears outside an INTERP_EXPR_BEG/END pair,
// so an embedded expression that itself starts with a string literal
// (e.g. "${"x" + "y"}") parses correctly instead of being mistaken for
// literal text.
func (p *Parser) parseStringInterpolation() ast.Expression {
	tok := p.expect(token.INTERP_BEG)
	var parts []ast.Expression
	for !p.curIs(token.INTERP_END) {
		if p.curIs(token.INTERP_EXPR_BEG) {
			p.advance()
			parts = append(parts, p.parseExpression())
			p.expect(token.INTERP_EXPR_END)
			continue
		}
		strTok := p.expect(token.STRING)
		parts = append(parts, ast.NewStringLiteral(strTok, strTok.Literal))
	}
	p.expect(token.INTERP_END)
	return &ast.StringInterpolation{Base: ast.At(tok), Parts: parts}
}
