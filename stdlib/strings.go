package stdlib

import (
	"strings"

	"github.com/jung-lang/jung/value"
)

func init() {
	register("split", splitFn)
	register("join", joinFn)
}

func splitFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.String || args[1].Kind != value.String {
		return value.NullValue, typeErr("split", "expects (string, string)")
	}
	parts := strings.Split(args[0].Str, args[1].Str)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.NewString(p)
	}
	return value.NewArray(out), nil
}

func joinFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.Array || args[1].Kind != value.String {
		return value.NullValue, typeErr("join", "expects (array, string)")
	}
	parts := make([]string, len(args[0].Arr))
	for i, v := range args[0].Arr {
		parts[i] = value.Render(v, true)
	}
	return value.NewString(strings.Join(parts, args[1].Str)), nil
}
