package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-lang/jung/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it — runSource/runFile write to os.Stdout
// directly, so tests exercise the real process stream.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunSourcePrintsProgramOutput(t *testing.T) {
	cfg = config.Default()
	out := captureStdout(t, func() {
		err := runSource(`print "hi"`, "<test>")
		assert.NoError(t, err)
	})
	assert.Equal(t, "hi\n", out)
}

func TestRunSourceReportsParseError(t *testing.T) {
	cfg = config.Default()
	err := runSource(`let = `, "<test>")
	assert.Error(t, err)
}

func TestRunSourceReportsUncaughtException(t *testing.T) {
	cfg = config.Default()
	var err error
	captureStdout(t, func() {
		err = runSource(`throw "boom"`, "<test>")
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRunFileReadsAndExecutes(t *testing.T) {
	cfg = config.Default()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.jung")
	require.NoError(t, os.WriteFile(path, []byte(`print "from file"`), 0644))

	out := captureStdout(t, func() {
		err := runFile(path)
		assert.NoError(t, err)
	})
	assert.Equal(t, "from file\n", out)
}

func TestRunFileMissingFileIsAnError(t *testing.T) {
	cfg = config.Default()
	err := runFile("/nonexistent/path/to/nothing.jung")
	assert.Error(t, err)
}

// TestWithPanicRecoveryConvertsPanicToError exercises the panic
// boundary runSource wraps its whole pipeline in: every reachable path
// through the lexer/parser/interp for valid input returns a signal or
// error rather than panicking, so this drives the recovery mechanism
// directly instead of relying on a contrived jung program to crash it.
func TestWithPanicRecoveryConvertsPanicToError(t *testing.T) {
	err := withPanicRecovery(func() error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestWithPanicRecoveryPassesThroughNormalError(t *testing.T) {
	err := withPanicRecovery(func() error {
		return fmt.Errorf("ordinary failure")
	})
	require.Error(t, err)
	assert.Equal(t, "ordinary failure", err.Error())
}

func TestWithPanicRecoveryPassesThroughSuccess(t *testing.T) {
	err := withPanicRecovery(func() error {
		return nil
	})
	assert.NoError(t, err)
}
