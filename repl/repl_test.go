package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jung-lang/jung/internal/config"
	"github.com/jung-lang/jung/interp"
	"github.com/stretchr/testify/assert"
)

func newTestRepl(cfg config.Config) *Repl {
	return New("banner", "0.1.0-test", cfg)
}

func TestPrintBannerIncludesVersionAndBanner(t *testing.T) {
	r := newTestRepl(config.Default())
	var buf bytes.Buffer
	r.printBanner(&buf)
	out := buf.String()
	assert.Contains(t, out, "banner")
	assert.Contains(t, out, "0.1.0-test")
	assert.Contains(t, out, ".exit")
}

func TestEvalLineEchoesResultWhenReplEchoEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.ReplEcho = true
	r := newTestRepl(cfg)

	it := interp.New(cfg)
	it.Stdout = asWriter(&bytes.Buffer{})
	it.Stderr = asWriter(&bytes.Buffer{})

	var out bytes.Buffer
	r.evalLine(&out, it, "1 + 2")
	assert.Contains(t, out.String(), "3")
}

func TestEvalLineSuppressesNullResult(t *testing.T) {
	cfg := config.Default()
	cfg.ReplEcho = true
	r := newTestRepl(cfg)

	it := interp.New(cfg)
	it.Stdout = asWriter(&bytes.Buffer{})
	it.Stderr = asWriter(&bytes.Buffer{})

	var out bytes.Buffer
	r.evalLine(&out, it, `let x = 1`)
	assert.Equal(t, "", out.String())
}

func TestEvalLineDoesNotEchoWhenReplEchoDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.ReplEcho = false
	r := newTestRepl(cfg)

	it := interp.New(cfg)
	it.Stdout = asWriter(&bytes.Buffer{})
	it.Stderr = asWriter(&bytes.Buffer{})

	var out bytes.Buffer
	r.evalLine(&out, it, "1 + 2")
	assert.Equal(t, "", out.String())
}

func TestEvalLineReportsUncaughtException(t *testing.T) {
	cfg := config.Default()
	r := newTestRepl(cfg)

	it := interp.New(cfg)
	it.Stdout = asWriter(&bytes.Buffer{})
	it.Stderr = asWriter(&bytes.Buffer{})

	var out bytes.Buffer
	r.evalLine(&out, it, `throw "boom"`)
	assert.Contains(t, out.String(), "Uncaught exception")
	assert.Contains(t, out.String(), "boom")
}

func TestEvalLineReportsParseError(t *testing.T) {
	cfg := config.Default()
	r := newTestRepl(cfg)

	it := interp.New(cfg)
	it.Stdout = asWriter(&bytes.Buffer{})
	it.Stderr = asWriter(&bytes.Buffer{})

	var out bytes.Buffer
	r.evalLine(&out, it, `let = `)
	assert.NotEmpty(t, strings.TrimSpace(out.String()))
}

func TestPersistentInterpreterKeepsStateAcrossLines(t *testing.T) {
	cfg := config.Default()
	r := newTestRepl(cfg)

	it := interp.New(cfg)
	var out bytes.Buffer
	it.Stdout = asWriter(&out)
	it.Stderr = asWriter(&out)

	r.evalLine(&out, it, `let x = 10`)
	out.Reset()
	r.evalLine(&out, it, `x + 5`)
	assert.Contains(t, out.String(), "15")
}

func TestFormatSignalDistinguishesRuntimeErrorFromThrow(t *testing.T) {
	re := &interp.Signal{Kind: interp.SigException, Message: "[1:1] bad thing", RuntimeError: true}
	assert.Equal(t, "[1:1] bad thing", formatSignal(re))

	th := &interp.Signal{Kind: interp.SigException, Message: "boom"}
	assert.Equal(t, "Uncaught exception: boom", formatSignal(th))
}
