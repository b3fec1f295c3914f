package interp

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/value"
)

// exec dispatches on a statement node's concrete type. The returned
// value is an ExpressionStatement's result (used by the REPL to echo a
// bare expression); a block, an if, or a try whose catch body ran
// passes up the value of the last statement it executed, and every
// other statement yields null.
func (in *Interpreter) exec(stmt ast.Statement) (value.Value, *Signal) {
	switch n := stmt.(type) {
	case *ast.VarDeclaration:
		return in.execVarDeclaration(n)
	case *ast.AssignStatement:
		return in.execAssignStatement(n)
	case *ast.CompoundAssignStatement:
		return in.execCompoundAssignStatement(n)
	case *ast.MemberAssignStatement:
		return in.execMemberAssignStatement(n)
	case *ast.IndexAssignStatement:
		return in.execIndexAssignStatement(n)
	case *ast.PrintStatement:
		return in.execPrintStatement(n)
	case *ast.ExpressionStatement:
		return in.eval(n.Expr)
	case *ast.BlockStatement:
		return in.execBlockStatement(n)
	case *ast.IfStatement:
		return in.execIfStatement(n)
	case *ast.WhileStatement:
		return in.execWhileStatement(n)
	case *ast.ForInStatement:
		return in.execForInStatement(n)
	case *ast.BreakStatement:
		return value.NullValue, breakSignal()
	case *ast.ContinueStatement:
		return value.NullValue, continueSignal()
	case *ast.ReturnStatement:
		return in.execReturnStatement(n)
	case *ast.ThrowStatement:
		return in.execThrowStatement(n)
	case *ast.TryStatement:
		return in.execTryStatement(n)
	case *ast.ImportStatement:
		return in.execImportStatement(n)
	case *ast.FunctionDefinition:
		in.functions[n.Name] = &value.FunctionData{Name: n.Name, Parameters: n.Parameters, Body: n.Body}
		return value.NullValue, nil
	case *ast.ClassDefinition:
		return in.execClassDefinition(n)
	default:
		return value.NullValue, runtimeErrorf(stmt, "unhandled statement node %T", stmt)
	}
}

func (in *Interpreter) execPrintStatement(n *ast.PrintStatement) (value.Value, *Signal) {
	v, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}
	in.write(in.Stdout, value.Render(v, true)+"\n")
	return value.NullValue, nil
}

// execBlockStatement runs a statement list in a fresh child scope,
// stopping at the first statement that yields a signal.
func (in *Interpreter) execBlockStatement(n *ast.BlockStatement) (value.Value, *Signal) {
	in.pushScope()
	defer in.popScope()
	return in.execStatements(n.Statements)
}

func (in *Interpreter) execStatements(stmts []ast.Statement) (value.Value, *Signal) {
	var last value.Value
	for _, stmt := range stmts {
		v, sig := in.exec(stmt)
		if sig != nil {
			return value.NullValue, sig
		}
		last = v
	}
	return last, nil
}
