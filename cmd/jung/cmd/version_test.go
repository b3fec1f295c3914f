package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	out := captureStdout(t, func() {
		versionCmd.Run(versionCmd, nil)
	})
	assert.Contains(t, out, Version)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["run"])
	assert.True(t, names["repl"])
	assert.True(t, names["version"])
}
