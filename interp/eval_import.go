package interp

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/lexer"
	"github.com/jung-lang/jung/parser"
	"github.com/jung-lang/jung/value"
)

// execImportStatement reads and runs another source file's top-level
// statements in this same interpreter context, so the imported file's
// var/function/class declarations land in the importer's scope and
// registries. A path already imported is skipped silently — imports
// are idempotent, not cumulative. MaxImports bounds runaway or
// circular import chains.
func (in *Interpreter) execImportStatement(n *ast.ImportStatement) (value.Value, *Signal) {
	if in.imported[n.Path] {
		return value.NullValue, nil
	}
	if len(in.imported) >= in.cfg.MaxImports {
		return value.NullValue, runtimeErrorf(n, "too many imports (limit %d)", in.cfg.MaxImports)
	}

	src, err := in.Importer(n.Path)
	if err != nil {
		return value.NullValue, runtimeErrorf(n, "cannot import %q: %s", n.Path, err.Error())
	}
	in.imported[n.Path] = true

	prog, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		return value.NullValue, runtimeErrorf(n, "error in imported file %q: %s", n.Path, err.Error())
	}
	for _, stmt := range prog.Statements {
		if _, sig := in.exec(stmt); sig != nil {
			return value.NullValue, sig
		}
	}
	return value.NullValue, nil
}
