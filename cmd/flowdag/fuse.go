package main

import (
	"github.com/spf13/cobra"

	g "github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/optimize"
	"github.com/katalvlaran/flowdag/wire"
)

func newFuseCmd() *cobra.Command {
	var retain []string
	cmd := &cobra.Command{
		Use:   "fuse",
		Short: "collapse linear dependency chains into nested tasks",
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
			keys := make([]g.Key, len(retain))
			for i, r := range retain {
				keys[i] = g.Key(r)
			}
			out := optimize.Fuse(gr, optimize.WithRetain(keys...))
			return writeDocument(cfg, wire.Encode(out))
		},
	}
	cmd.Flags().StringSliceVar(&retain, "retain", nil, "a key to never fuse away (repeatable)")
	return cmd
}
