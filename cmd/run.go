package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crillab/propeval/suite"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <suite.yaml>",
		Short: "Run a YAML suite of formulas against their expected results",
		Long: `run evaluates every case of a suite file concurrently and prints one line per case.
The grammar named in the suite file, if any, takes precedence over --grammar.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s, err := suite.Load(args[0])
			if err != nil {
				return err
			}
			parse, err := opts.parseFunc(s.Grammar)
			if err != nil {
				return fmt.Errorf("invalid suite %q: %w", args[0], err)
			}
			opts.logf(out, "running %s: %d cases", args[0], len(s.Cases))
			rep := suite.Run(cmd.Context(), s, parse)
			opts.logf(out, "run %s", rep.ID)
			for _, res := range rep.Results {
				if !res.Passed || opts.cfg.Output.Verbose {
					fmt.Fprintln(out, res.Describe())
				}
			}
			fmt.Fprintf(out, "%d passed, %d failed\n", rep.Passed, rep.Failed)
			if !rep.OK() {
				return fmt.Errorf("%d of %d cases failed", rep.Failed, len(rep.Results))
			}
			return nil
		},
	}
}
