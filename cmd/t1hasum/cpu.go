package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/t1ha/internal/simd"
	"github.com/hupe1980/t1ha/t1ha0"
)

func newCPUCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show CPU features and the t1ha0 body in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := t1ha0.Implementation()
			a.log.LogDispatch(cmd.Context(), simd.ActiveISA().String(), body.Name(), simd.IsOverridden())

			var names []string
			for _, b := range t1ha0.Implementations() {
				names = append(names, b.Name())
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 1, ' ', 0)
			fmt.Fprintf(tw, "aes:\t%t\n", simd.HasAES())
			fmt.Fprintf(tw, "avx:\t%t\n", simd.HasAVX())
			fmt.Fprintf(tw, "avx2:\t%t\n", simd.HasAVX2())
			fmt.Fprintf(tw, "asm kernels:\t%t\n", simd.AsmKernels())
			fmt.Fprintf(tw, "active isa:\t%s\n", simd.ActiveISA())
			fmt.Fprintf(tw, "overridden:\t%t (%s)\n", simd.IsOverridden(), simd.EnvOverride)
			fmt.Fprintf(tw, "t1ha0 body:\t%s\n", body.Name())
			fmt.Fprintf(tw, "usable bodies:\t%s\n", strings.Join(names, ", "))
			return tw.Flush()
		},
	}
}

func newAlgosCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algos",
		Short: "List hash variants accepted by --algo",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			for _, al := range algorithms {
				fmt.Fprintf(tw, "%s\t%s\n", al.name, al.usage)
			}
			return tw.Flush()
		},
	}
}
