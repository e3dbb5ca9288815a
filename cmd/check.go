package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/crillab/propeval/prop"
	"github.com/crillab/propeval/sat"
)

func newCheckCmd(opts *options) *cobra.Command {
	var backendName string
	cmd := &cobra.Command{
		Use:   "check <formula>",
		Short: "Tell whether a formula is satisfiable and whether it is valid",
		Long: `check treats atoms as variables: values given after a ';' are ignored.
It prints SATISFIABLE or UNSATISFIABLE, with a model, then VALID or NOT VALID,
with a counterexample.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if backendName == "" {
				backendName = opts.cfg.Solver.Backend
			}
			backend, err := sat.ParseBackend(backendName)
			if err != nil {
				return err
			}
			p, err := opts.parseFormula(args[0])
			if err != nil {
				return fmt.Errorf("could not parse %q: %w", args[0], err)
			}
			opts.logf(out, "solving %s with %v", p, backend)
			res, err := sat.Satisfiable(p, backend)
			if err != nil {
				return fmt.Errorf("could not solve %q: %w", args[0], err)
			}
			if res.Sat {
				fmt.Fprintln(out, "SATISFIABLE")
				printModel(out, res.Model)
			} else {
				fmt.Fprintln(out, "UNSATISFIABLE")
			}
			valid, counter, err := sat.Valid(p, backend)
			if err != nil {
				return fmt.Errorf("could not solve %q: %w", args[0], err)
			}
			if valid {
				fmt.Fprintln(out, "VALID")
			} else {
				fmt.Fprintln(out, "NOT VALID")
				printModel(out, counter)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&backendName, "backend", "", "SAT backend: gini or gophersat (default from config)")
	return cmd
}

func printModel(w io.Writer, model prop.AtomMap) {
	for _, s := range []rune("PQRST") {
		if tok, ok := model[s]; ok {
			fmt.Fprintf(w, "%c: %t\n", s, tok == 'T')
		}
	}
}

func newDimacsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dimacs <formula>",
		Short: "Write the CNF of a formula in the DIMACS format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.parseFormula(args[0])
			if err != nil {
				return fmt.Errorf("could not parse %q: %w", args[0], err)
			}
			return sat.Dimacs(p, cmd.OutOrStdout())
		},
	}
}
