// Package diag provides the interpreter's internal diagnostic
// logger, gated by the --debug flag and kept entirely separate from
// the user-visible stdout/stderr contract (print output, program
// errors, exception messages never go through here).
package diag

import "go.uber.org/zap"

// New returns a development logger when debug is set (human-readable,
// colorized, caller-annotated) or a no-op logger otherwise, so call
// sites can log unconditionally without checking debug themselves.
func New(debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
