package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/t1ha/internal/selfcheck"
	"github.com/hupe1980/t1ha/t1ha0"
)

// checkTarget is one function run against a reference table.
type checkTarget struct {
	name string
	fn   selfcheck.Func
	refs []uint64
}

func checkTargets() []checkTarget {
	var out []checkTarget
	for _, a := range algorithms {
		out = append(out, checkTarget{name: a.name, fn: a.check, refs: a.refs()})
	}
	for _, b := range t1ha0.Implementations() {
		out = append(out, checkTarget{
			name: "t1ha0[" + b.Name() + "]",
			fn:   b.Sum,
			refs: bodyRefs(b),
		})
	}
	return out
}

func newSelfCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify every variant against its reference vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			failed := 0
			for _, t := range checkTargets() {
				err := selfcheck.Verify(t.fn, t.refs)
				a.log.LogSelfCheck(ctx, t.name, selfcheck.ProbeCount, err)
				if err != nil {
					failed++
					fmt.Fprintf(a.stdout, "FAIL  %s: %v\n", t.name, err)
					continue
				}
				fmt.Fprintf(a.stdout, "ok    %s\n", t.name)
			}

			if failed > 0 {
				return fmt.Errorf("self-check: %d variant(s) failed", failed)
			}
			return nil
		},
	}
}
