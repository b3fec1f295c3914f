package stdlib

import (
	"bufio"
	"os"

	"github.com/jung-lang/jung/value"
)

var stdinReader = bufio.NewReader(os.Stdin)

func init() {
	register("readFile", readFileFn)
	register("writeFile", writeFileFn)
	register("appendFile", appendFileFn)
	register("input", inputFn)
}

func readFileFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.String {
		return value.NullValue, typeErr("readFile", "expects a path string")
	}
	data, err := os.ReadFile(args[0].Str)
	if err != nil {
		return value.NullValue, err
	}
	return value.NewString(string(data)), nil
}

func writeFileFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.String || args[1].Kind != value.String {
		return value.NullValue, typeErr("writeFile", "expects (path, content)")
	}
	if err := os.WriteFile(args[0].Str, []byte(args[1].Str), 0644); err != nil {
		return value.NullValue, err
	}
	return value.NullValue, nil
}

func appendFileFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.String || args[1].Kind != value.String {
		return value.NullValue, typeErr("appendFile", "expects (path, content)")
	}
	f, err := os.OpenFile(args[0].Str, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return value.NullValue, err
	}
	defer f.Close()
	if _, err := f.WriteString(args[1].Str); err != nil {
		return value.NullValue, err
	}
	return value.NullValue, nil
}

// inputFn reads one line from standard input, with the trailing
// newline stripped. An optional argument is printed as a prompt first.
func inputFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 1 {
		os.Stdout.WriteString(value.Render(args[0], true))
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return value.NewString(""), nil
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return value.NewString(line), nil
}
