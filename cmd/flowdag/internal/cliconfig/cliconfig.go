// Package cliconfig resolves the demo CLI's shared flags the way
// builder.newBuilderConfig resolves a slice of BuilderOptions: a private
// struct, defaults applied first, options applied in call order.
package cliconfig

import "github.com/hashicorp/go-hclog"

// Config holds the flags every flowdag subcommand shares.
type Config struct {
	InputPath  string // "-" means stdin
	OutputPath string // "-" means stdout
	LogLevel   hclog.Level
	Verbose    bool
}

// Option customizes a Config.
type Option func(*Config)

// WithInput sets the input path ("-" for stdin).
func WithInput(path string) Option {
	return func(c *Config) { c.InputPath = path }
}

// WithOutput sets the output path ("-" for stdout).
func WithOutput(path string) Option {
	return func(c *Config) { c.OutputPath = path }
}

// WithVerbose enables debug-level logging from every optimize
// transformation (obslog.For's sub-loggers).
func WithVerbose(v bool) Option {
	return func(c *Config) {
		c.Verbose = v
		if v {
			c.LogLevel = hclog.Debug
		}
	}
}

// Resolve applies opts over the default Config (stdin to stdout, warn
// level logging).
func Resolve(opts ...Option) Config {
	cfg := Config{InputPath: "-", OutputPath: "-", LogLevel: hclog.Warn}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
