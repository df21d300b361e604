package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowdag/wire"
)

// newShowCmd reads a graph and writes it back unchanged, after a decode
// round-trip — useful for validating a hand-written fixture and for
// reformatting one with consistent indentation.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "decode and re-encode a graph unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromFlags(cmd)
			doc, err := readDocument(cfg)
			if err != nil {
				return err
			}
			gr, err := wire.Decode(doc, wire.DiscoverRegistry(doc))
			if err != nil {
				return err
			}
			return writeDocument(cfg, wire.Encode(gr))
		},
	}
}
