// Package cmd implements the propeval command line.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crillab/propeval/config"
	"github.com/crillab/propeval/precedence"
	"github.com/crillab/propeval/prop"
)

// options are the persistent flags shared by every command.
type options struct {
	cfgFile  string
	grammar  string
	maxDepth int
	verbose  bool

	cfg *config.Config
}

// NewRootCmd builds the propeval command and its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "propeval",
		Short: "Parse and evaluate propositional formulas",
		Long: `propeval parses formulas over the atoms P, Q, R, S and T, written with
the connectives ∧ ∨ → ↔ ¬ (and the modal ◇ □), and evaluates them.

Inputs bundle a formula and the values of its atoms:

  propeval eval "P ∧ (Q → ¬R);P=T,Q=F,R=T"

By default connectives have no precedence and associate to the right
("P ∧ Q ∨ R" is "P ∧ (Q ∨ R)"); use --grammar precedence for the usual reading.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./"+config.DefaultPath+")")
	root.PersistentFlags().StringVar(&opts.grammar, "grammar", "", "formula grammar: legacy or precedence")
	root.PersistentFlags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum nesting of formulas")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "sets verbose mode on")

	root.AddCommand(
		newEvalCmd(opts),
		newTableCmd(opts),
		newCheckCmd(opts),
		newDimacsCmd(opts),
		newRunCmd(opts),
	)
	return root
}

// Execute runs the propeval command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads the configuration, then applies the flags that were explicitly set.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Discover(o.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("grammar") {
		cfg.Parser.Grammar = o.grammar
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = o.maxDepth
	}
	if flags.Changed("verbose") {
		cfg.Output.Verbose = o.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// parseFunc returns the parser selected by name, or by the configuration if name is empty.
func (o *options) parseFunc(name string) (prop.ParseFunc, error) {
	if name == "" {
		name = o.cfg.Parser.Grammar
	}
	switch name {
	case config.GrammarLegacy:
		return prop.Parser{MaxDepth: o.cfg.Parser.MaxDepth}.Parse, nil
	case config.GrammarPrecedence:
		return precedence.Parser{MaxDepth: o.cfg.Parser.MaxDepth}.Parse, nil
	default:
		return nil, fmt.Errorf("unknown grammar %q", name)
	}
}

// parseFormula parses arg, which is either a formula alone or a complete input.
// Atoms of a formula alone are bound to false.
func (o *options) parseFormula(arg string) (prop.Proposition, error) {
	parse, err := o.parseFunc("")
	if err != nil {
		return nil, err
	}
	if strings.ContainsRune(arg, ';') {
		return prop.ParseInputWith(arg, parse)
	}
	return parse(arg, prop.Unbound())
}

// logf prints a comment line when verbose mode is on.
func (o *options) logf(w io.Writer, format string, args ...interface{}) {
	if o.cfg.Output.Verbose {
		fmt.Fprintf(w, "c "+format+"\n", args...)
	}
}
