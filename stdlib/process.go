package stdlib

import (
	"os"

	"github.com/jung-lang/jung/value"
)

func init() {
	register("exit", exitFn)
}

// exitFn terminates the process immediately with the given status
// code, or 0 if none is given. It never returns to the caller.
func exitFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	code := 0
	if len(args) == 1 && args[0].Kind == value.Number {
		code = int(args[0].Number)
	}
	os.Exit(code)
	return value.NullValue, nil
}
