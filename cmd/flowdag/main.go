// Command flowdag is a demo front-end over the graph/optimize
// transformations: it reads a wire.Document from a file or stdin, applies
// one transformation, and writes the result back out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flowdag",
		Short:         "inspect and rewrite task graphs",
		Long:          "flowdag applies the graph/optimize transformations (cull, fuse, inline, dealias, merge) to a wire-format task graph read from a file or stdin.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("input", "i", "-", `input path, or "-" for stdin`)
	root.PersistentFlags().StringP("output", "o", "-", `output path, or "-" for stdout`)
	root.PersistentFlags().BoolP("verbose", "v", false, "log every transformation step at debug level")

	root.AddCommand(newShowCmd())
	root.AddCommand(newCullCmd())
	root.AddCommand(newFuseCmd())
	root.AddCommand(newInlineCmd())
	root.AddCommand(newInlineFunctionsCmd())
	root.AddCommand(newDealiasCmd())
	root.AddCommand(newMergeCmd())

	return root
}
