package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowdag/optimize"
	"github.com/katalvlaran/flowdag/wire"
)

// newMergeCmd unions the primary input (--input/-i, or stdin) with a
// second graph (--with) via optimize.MergeSync, folding any
// structurally-equivalent sub-computation optimize.SyncVars finds
// between them into a single shared entry.
func newMergeCmd() *cobra.Command {
	var with string
	cmd := &cobra.Command{
		Use:   "merge --with FILE",
		Short: "union two graphs, sharing structurally equivalent sub-computations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromFlags(cmd)
			doc, err := readDocument(cfg)
			if err != nil {
				return err
			}
			a, err := wire.Decode(doc, wire.DiscoverRegistry(doc))
			if err != nil {
				return err
			}

			otherData, err := os.ReadFile(with)
			if err != nil {
				return err
			}
			unmarshal := wire.UnmarshalJSON
			if isYAMLPath(with) {
				unmarshal = wire.UnmarshalYAML
			}
			otherDoc, err := unmarshal(otherData)
			if err != nil {
				return err
			}
			b, err := wire.Decode(otherDoc, wire.DiscoverRegistry(otherDoc))
			if err != nil {
				return err
			}

			out := optimize.MergeSync(a, b)
			return writeDocument(cfg, wire.Encode(out))
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "path to the second graph to merge in")
	_ = cmd.MarkFlagRequired("with")
	return cmd
}
