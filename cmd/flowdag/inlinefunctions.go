package main

import (
	"github.com/spf13/cobra"

	g "github.com/katalvlaran/flowdag/graph"
	"github.com/katalvlaran/flowdag/optimize"
	"github.com/katalvlaran/flowdag/wire"
)

func newInlineFunctionsCmd() *cobra.Command {
	var fast []string
	var keys []string
	cmd := &cobra.Command{
		Use:   "inline-functions --fast OP [--fast OP ...]",
		Short: "inline consumed tasks whose operator is in the fast set",
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
			ops := make([]g.Operator, len(fast))
			for i, name := range fast {
				ops[i] = g.Named(name)
			}
			opts := []optimize.InlineFunctionsOption{}
			if len(keys) > 0 {
				gkeys := make([]g.Key, len(keys))
				for i, k := range keys {
					gkeys[i] = g.Key(k)
				}
				opts = append(opts, optimize.WithCandidateKeys(gkeys...))
			}
			out := optimize.InlineFunctions(gr, g.NewOperatorSet(ops...), opts...)
			return writeDocument(cfg, wire.Encode(out))
		},
	}
	cmd.Flags().StringSliceVar(&fast, "fast", nil, "an operator name eligible for inlining (repeatable)")
	cmd.Flags().StringSliceVar(&keys, "key", nil, "restrict eligibility to this candidate key (repeatable)")
	_ = cmd.MarkFlagRequired("fast")
	return cmd
}
