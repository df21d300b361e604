package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowdag/optimize"
	"github.com/katalvlaran/flowdag/wire"
)

func newCullCmd() *cobra.Command {
	var roots []string
	cmd := &cobra.Command{
		Use:   "cull --root KEY [--root KEY ...]",
		Short: "drop every key not reachable from the given roots",
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
			out, err := optimize.Cull(gr, optimize.KeySet(roots))
			if err != nil {
				return err
			}
			return writeDocument(cfg, wire.Encode(out))
		},
	}
	cmd.Flags().StringSliceVar(&roots, "root", nil, "a root key to keep reachable (repeatable)")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}
