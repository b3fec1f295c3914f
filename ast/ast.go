// Package ast defines the tree of node types produced by the parser
// and walked by the interpreter. Every node records its source
// position for diagnostics.
//
// Function bodies and class method bodies are owned by the Program
// that parsed them; runtime values (see package value) hold
// non-owning pointers into this tree, so the AST must outlive any
// value that references it.
package ast

import "github.com/jung-lang/jung/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() (line, column int)
	node()
}

// Expression is implemented by every node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every node that is executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Base carries the source position shared by every node.
type Base struct {
	Line, Column int
}

func (b Base) Pos() (int, int) { return b.Line, b.Column }
func (Base) node()             {}

// At builds a Base from a token's source position.
func At(tok token.Token) Base {
	return Base{Line: tok.Line, Column: tok.Column}
}

// Program is the root node: the top-level sequence of statements in a
// source file.
type Program struct {
	Base
	Statements []Statement
}

// ---- Literals ----

type NumberLiteral struct {
	Base
	Value float64
}

type StringLiteral struct {
	Base
	Value string
}

type BoolLiteral struct {
	Base
	Value bool
}

type NullLiteral struct{ Base }

type ThisExpression struct{ Base }

type ArrayLiteral struct {
	Base
	Elements []Expression
}

// ObjectEntry is one key/value pair of an ObjectLiteral. Keys are
// always literal identifier strings, never computed.
type ObjectEntry struct {
	Key   string
	Value Expression
}

type ObjectLiteral struct {
	Base
	Entries []ObjectEntry
}

// StringInterpolation is produced from a lexer INTERP_BEGIN/INTERP_END
// bracketed region: an ordered sequence of literal-string and
// expression parts that are rendered and concatenated at evaluation
// time.
type StringInterpolation struct {
	Base
	Parts []Expression // each part is either *StringLiteral or an expression
}

// ---- Identifiers and access ----

type Identifier struct {
	Base
	Name string
}

type IndexExpression struct {
	Base
	Container Expression
	Index     Expression
}

type MemberExpression struct {
	Base
	Object Expression
	Field  string
}

type MethodCallExpression struct {
	Base
	Receiver  Expression
	Method    string
	Arguments []Expression
}

type NewExpression struct {
	Base
	ClassName string
	Arguments []Expression
}

type CallExpression struct {
	Base
	Callee    Expression
	Arguments []Expression
}

// ---- Operators ----

type BinaryExpression struct {
	Base
	Operator token.Type
	Left     Expression
	Right    Expression
}

type UnaryExpression struct {
	Base
	Operator token.Type
	Operand  Expression
}

type TernaryExpression struct {
	Base
	Condition Expression
	Then      Expression
	Else      Expression
}

// ---- Statements ----

// VarDeclaration is `let name = expr` (or its Jungian spelling).
type VarDeclaration struct {
	Base
	Name  string
	Value Expression
}

// AssignStatement is a bare `name = expr`.
type AssignStatement struct {
	Base
	Name  string
	Value Expression
}

// CompoundAssignStatement is `name += expr` etc. against a plain
// variable target.
type CompoundAssignStatement struct {
	Base
	Name     string
	Operator token.Type
	Value    Expression
}

// MemberAssignStatement is `obj.field = expr` or `obj.field += expr`.
type MemberAssignStatement struct {
	Base
	Object   Expression
	Field    string
	Operator token.Type // token.ASSIGN for plain '=', else a compound operator
	Value    Expression
}

// IndexAssignStatement is `container[index] = expr` or its compound form.
type IndexAssignStatement struct {
	Base
	Container Expression
	Index     Expression
	Operator  token.Type
	Value     Expression
}

type PrintStatement struct {
	Base
	Value Expression
}

type ExpressionStatement struct {
	Base
	Expr Expression
}

type BlockStatement struct {
	Base
	Statements []Statement
}

// IfStatement is one `if`/`else if` arm; ElseIf chains the next arm
// and Else covers the final else-without-condition branch, if present.
type IfStatement struct {
	Base
	Condition Expression
	Then      *BlockStatement
	ElseIf    *IfStatement   // non-nil for an `else if` chain
	Else      *BlockStatement // non-nil for a final bare `else`
}

type WhileStatement struct {
	Base
	Condition Expression
	Body      *BlockStatement
}

// ForInStatement is `for x in expr { ... }`.
type ForInStatement struct {
	Base
	Variable string
	Iterable Expression
	Body     *BlockStatement
}

type BreakStatement struct{ Base }

type ContinueStatement struct{ Base }

type ReturnStatement struct {
	Base
	Value Expression // nil for a bare `return`
}

type ThrowStatement struct {
	Base
	Value Expression
}

// TryStatement is `try { ... } catch (name) { ... }`. CatchVar is ""
// when the catch clause declares no binding.
type TryStatement struct {
	Base
	Try      *BlockStatement
	CatchVar string
	Catch    *BlockStatement
}

type ImportStatement struct {
	Base
	Path string
}

// Parameter is one function parameter, with an optional default-value
// expression evaluated (in the callee's fresh scope) when the
// argument is omitted.
type Parameter struct {
	Name    string
	Default Expression // nil if the parameter has no default
}

// FunctionDefinition declares a named function. It is both a
// top-level statement and, within a class body, a method definition.
type FunctionDefinition struct {
	Base
	Name       string
	Parameters []Parameter
	Body       *BlockStatement
}

// ClassDefinition declares a class: a name plus a set of method
// definitions.
type ClassDefinition struct {
	Base
	Name    string
	Methods []*FunctionDefinition
}

// Constructors -------------------------------------------------------

func NewProgram(tok token.Token) *Program { return &Program{Base: At(tok)} }

func NewNumberLiteral(tok token.Token, value float64) *NumberLiteral {
	return &NumberLiteral{Base: At(tok), Value: value}
}

func NewStringLiteral(tok token.Token, value string) *StringLiteral {
	return &StringLiteral{Base: At(tok), Value: value}
}

func NewBoolLiteral(tok token.Token, value bool) *BoolLiteral {
	return &BoolLiteral{Base: At(tok), Value: value}
}

func NewNullLiteral(tok token.Token) *NullLiteral { return &NullLiteral{Base: At(tok)} }

func NewThisExpression(tok token.Token) *ThisExpression { return &ThisExpression{Base: At(tok)} }

func NewIdentifier(tok token.Token, name string) *Identifier {
	return &Identifier{Base: At(tok), Name: name}
}

// node/expressionNode/statementNode tag implementations -------------

func (*Program) statementNode()                {}
func (*NumberLiteral) expressionNode()          {}
func (*StringLiteral) expressionNode()          {}
func (*BoolLiteral) expressionNode()            {}
func (*NullLiteral) expressionNode()            {}
func (*ThisExpression) expressionNode()         {}
func (*ArrayLiteral) expressionNode()           {}
func (*ObjectLiteral) expressionNode()          {}
func (*StringInterpolation) expressionNode()    {}
func (*Identifier) expressionNode()             {}
func (*IndexExpression) expressionNode()        {}
func (*MemberExpression) expressionNode()       {}
func (*MethodCallExpression) expressionNode()   {}
func (*NewExpression) expressionNode()          {}
func (*CallExpression) expressionNode()         {}
func (*BinaryExpression) expressionNode()       {}
func (*UnaryExpression) expressionNode()        {}
func (*TernaryExpression) expressionNode()      {}
func (*VarDeclaration) statementNode()          {}
func (*AssignStatement) statementNode()         {}
func (*CompoundAssignStatement) statementNode() {}
func (*MemberAssignStatement) statementNode()   {}
func (*IndexAssignStatement) statementNode()    {}
func (*PrintStatement) statementNode()          {}
func (*ExpressionStatement) statementNode()     {}
func (*BlockStatement) statementNode()          {}
func (*IfStatement) statementNode()             {}
func (*WhileStatement) statementNode()          {}
func (*ForInStatement) statementNode()          {}
func (*BreakStatement) statementNode()          {}
func (*ContinueStatement) statementNode()       {}
func (*ReturnStatement) statementNode()         {}
func (*ThrowStatement) statementNode()          {}
func (*TryStatement) statementNode()            {}
func (*ImportStatement) statementNode()         {}
func (*FunctionDefinition) statementNode()      {}
func (*ClassDefinition) statementNode()         {}
