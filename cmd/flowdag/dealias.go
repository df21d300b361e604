package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowdag/optimize"
	"github.com/katalvlaran/flowdag/wire"
)

func newDealiasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dealias",
		Short: "collapse alias chains, promoting unreferenced leaves to identity tasks",
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
			out := optimize.Dealias(gr)
			return writeDocument(cfg, wire.Encode(out))
		},
	}
}
