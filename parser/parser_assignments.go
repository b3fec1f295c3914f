package parser

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
)

func isAssignOp(t token.Type) bool {
	switch t {
	case token.ASSIGN, token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ:
		return true
	default:
		return false
	}
}

// parseExpressionOrAssignStatement parses an expression and, if it is
// immediately followed by an assignment operator, turns it into the
// matching assignment statement form based on the expression's shape
// (plain identifier, member access, or index access).
func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression()

	if !isAssignOp(p.cur.Type) {
		return &ast.ExpressionStatement{Base: ast.At(tok), Expr: expr}
	}

	op := p.cur
	p.advance()
	value := p.parseExpression()

	switch target := expr.(type) {
	case *ast.Identifier:
		if op.Type == token.ASSIGN {
			return &ast.AssignStatement{Base: ast.At(tok), Name: target.Name, Value: value}
		}
		return &ast.CompoundAssignStatement{Base: ast.At(tok), Name: target.Name, Operator: op.Type, Value: value}
	case *ast.MemberExpression:
		return &ast.MemberAssignStatement{Base: ast.At(tok), Object: target.Object, Field: target.Field, Operator: op.Type, Value: value}
	case *ast.IndexExpression:
		return &ast.IndexAssignStatement{Base: ast.At(tok), Container: target.Container, Index: target.Index, Operator: op.Type, Value: value}
	default:
		fail(tok, "invalid assignment target")
	}
	panic("unreachable")
}
