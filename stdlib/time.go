package stdlib

import (
	"time"

	"github.com/jung-lang/jung/value"
)

var processStart = time.Now()

func init() {
	register("time", timeFn)
	register("clock", clockFn)
}

// timeFn returns the current Unix time in seconds.
func timeFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.NewNumber(float64(time.Now().Unix())), nil
}

// clockFn returns seconds elapsed since the interpreter started,
// for measuring a script's own running time.
func clockFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.NewNumber(time.Since(processStart).Seconds()), nil
}
