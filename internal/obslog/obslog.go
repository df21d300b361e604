// Package obslog gives each transformation in optimize a named,
// structured sub-logger without forcing one on callers that don't want
// it. The zero value of Logger is a no-op, so Cull/Fuse/Inline/... stay
// pure functions by default; a caller opts in with SetRoot.
package obslog

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Logger is a structured logger scoped to one transformation (e.g.
// "fuse", "cull"). A nil *Logger is valid and logs nothing.
type Logger struct {
	hl hclog.Logger
}

var (
	mu   sync.RWMutex
	root hclog.Logger // nil until SetRoot is called
)

// SetRoot installs the root hclog.Logger every subsequent For call
// derives a named sub-logger from. Passing nil restores the no-op
// default. Intended for the demo CLI (cmd/flowdag) and for tests that
// want to assert on emitted records; library callers of graph/optimize
// never need to call this.
func SetRoot(l hclog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = l
}

// NewDefaultRoot returns an hclog.Logger writing human-readable output
// to stderr at the given level, suitable for passing to SetRoot from a
// CLI main package.
func NewDefaultRoot(name string, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: os.Stderr,
	})
}

// For returns a Logger named after the transformation calling it (e.g.
// obslog.For("fuse")). If no root logger has been installed, For
// returns a Logger backed by hclog.NewNullLogger, so calls are cheap
// no-ops.
func For(name string) *Logger {
	mu.RLock()
	r := root
	mu.RUnlock()
	if r == nil {
		return &Logger{hl: hclog.NewNullLogger()}
	}
	return &Logger{hl: r.Named(name)}
}

// Debug logs a debug-level record with key/value pairs, hclog-style.
func (l *Logger) Debug(msg string, kv ...interface{}) {
	if l == nil || l.hl == nil {
		return
	}
	l.hl.Debug(msg, kv...)
}

// Trace logs a trace-level record with key/value pairs, hclog-style.
func (l *Logger) Trace(msg string, kv ...interface{}) {
	if l == nil || l.hl == nil {
		return
	}
	l.hl.Trace(msg, kv...)
}
