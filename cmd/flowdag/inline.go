package main

import (
	"github.com/spf13/cobra"

	g "github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/optimize"
	"github.com/katalvlaran/flowdag/wire"
)

func newInlineCmd() *cobra.Command {
	var keys []string
	var noConstants bool
	cmd := &cobra.Command{
		Use:   "inline",
		Short: "substitute selected keys into their consumers and drop them",
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
			opts := []optimize.InlineOption{}
			if len(keys) > 0 {
				gkeys := make([]g.Key, len(keys))
				for i, k := range keys {
					gkeys[i] = g.Key(k)
				}
				opts = append(opts, optimize.WithKeys(gkeys...))
			}
			if noConstants {
				opts = append(opts, optimize.WithoutConstants())
			}
			out := optimize.Inline(gr, opts...)
			return writeDocument(cfg, wire.Encode(out))
		},
	}
	cmd.Flags().StringSliceVar(&keys, "key", nil, "an additional key to inline, beyond the default literal constants (repeatable)")
	cmd.Flags().BoolVar(&noConstants, "no-constants", false, "do not inline literal constants by default")
	return cmd
}
