package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/t1ha/internal/logging"
)

// app holds process-wide IO and settings shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
	log       *logging.Logger
}

func newRootCmd(a *app) *cobra.Command {
	o := &sumOptions{}

	root := &cobra.Command{
		Use:   "t1hasum [FILE...]",
		Short: "Compute t1ha digests of files",
		Long: `t1hasum prints t1ha digests of files, like sha256sum does for SHA-256.

Without a subcommand it behaves like 'sum'. With no files, or when a file is
'-', standard input is read.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(a.stderr, a.logFormat, a.logLevel)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, a, o, args)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text, json")
	addSumFlags(root, o)

	root.AddCommand(
		newSumCmd(a),
		newSelfCheckCmd(a),
		newCPUCmd(a),
		newAlgosCmd(a),
	)
	return root
}
