package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowdag/cmd/flowdag/internal/cliconfig"
	"github.com/katalvlaran/flowdag/internal/obslog"
	"github.com/katalvlaran/flowdag/wire"
)

// configFromFlags resolves a cliconfig.Config from the persistent flags
// every subcommand inherits from the root command, and installs the
// resulting log level as obslog's root logger.
func configFromFlags(cmd *cobra.Command) cliconfig.Config {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := cliconfig.Resolve(
		cliconfig.WithInput(input),
		cliconfig.WithOutput(output),
		cliconfig.WithVerbose(verbose),
	)
	obslog.SetRoot(obslog.NewDefaultRoot("flowdag", cfg.LogLevel))
	return cfg
}

// isYAMLPath reports whether path's extension marks it as YAML; stdin
// ("-") and anything else is treated as JSON.
func isYAMLPath(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// readDocument reads and parses a wire.Document from cfg.InputPath ("-"
// for stdin), dispatching to YAML or JSON by file extension.
func readDocument(cfg cliconfig.Config) (wire.Document, error) {
	var (
		data []byte
		err  error
	)
	if cfg.InputPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(cfg.InputPath)
	}
	if err != nil {
		return nil, err
	}
	if isYAMLPath(cfg.InputPath) {
		return wire.UnmarshalYAML(data)
	}
	return wire.UnmarshalJSON(data)
}

// writeDocument renders doc to cfg.OutputPath ("-" for stdout), in YAML
// or JSON by file extension.
func writeDocument(cfg cliconfig.Config, doc wire.Document) error {
	marshal := wire.MarshalJSON
	if isYAMLPath(cfg.OutputPath) {
		marshal = wire.MarshalYAML
	}
	data, err := marshal(doc)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if cfg.OutputPath == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(cfg.OutputPath, data, 0o644)
}
