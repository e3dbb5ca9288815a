package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/crillab/propeval/prop"
)

func newEvalCmd(opts *options) *cobra.Command {
	var tree, dump bool
	cmd := &cobra.Command{
		Use:   "eval <formula;assignments>",
		Short: "Evaluate a formula under the given assignments",
		Example: `  propeval eval "P ∧ Q;P=T,Q=F"
  propeval eval --tree "¬(P ∨ Q);P=F,Q=F"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			parse, err := opts.parseFunc("")
			if err != nil {
				return err
			}
			opts.logf(out, "grammar: %s", opts.cfg.Parser.Grammar)
			p, err := prop.ParseInputWith(args[0], parse)
			if err != nil {
				return fmt.Errorf("could not parse %q: %w", args[0], err)
			}
			opts.logf(out, "%d atoms, depth %d", len(prop.Symbols(p)), prop.Depth(p))
			if tree {
				fmt.Fprintln(out, p)
			}
			if dump {
				fmt.Fprintln(out, repr.String(p, repr.Indent("  ")))
			}
			fmt.Fprintln(out, prop.Evaluate(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print the parsed formula before its value")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the syntax tree before the value")
	return cmd
}

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table <formula>",
		Short: "Print the truth table of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p, err := opts.parseFormula(args[0])
			if err != nil {
				return fmt.Errorf("could not parse %q: %w", args[0], err)
			}
			syms := prop.Symbols(p)
			for _, s := range syms {
				fmt.Fprintf(out, "%c ", s)
			}
			fmt.Fprintf(out, "| %s\n", p)
			for _, row := range prop.TruthTable(p) {
				for _, s := range syms {
					fmt.Fprintf(out, "%c ", row.Atoms[s])
				}
				fmt.Fprintf(out, "| %s\n", prop.Truth(row.Value))
			}
			return nil
		},
	}
}
