package prop_test

import (
	"errors"
	"fmt"

	"github.com/crillab/propeval/prop"
)

func ExampleEval() {
	for _, input := range []string{
		"P ∧ Q;P=T,Q=F",
		"¬(P ∨ Q);P=F,Q=F",
		"P ∧ R;P=T",
	} {
		val, err := prop.Eval(input)
		switch {
		case errors.Is(err, prop.ErrUnknownAtom):
			fmt.Printf("%s: unknown atom\n", input)
		case err != nil:
			fmt.Printf("%s: %v\n", input, err)
		default:
			fmt.Printf("%s: %t\n", input, val)
		}
	}
	// Output:
	// P ∧ Q;P=T,Q=F: false
	// ¬(P ∨ Q);P=F,Q=F: true
	// P ∧ R;P=T: unknown atom
}

func ExampleTruthTable() {
	f, err := prop.Parse("P → Q", prop.Unbound())
	if err != nil {
		fmt.Printf("could not parse: %v", err)
		return
	}
	for _, row := range prop.TruthTable(f) {
		fmt.Printf("%s: %t\n", row.Atoms, row.Value)
	}
	// Output:
	// P=F,Q=F: true
	// P=F,Q=T: true
	// P=T,Q=F: false
	// P=T,Q=T: true
}
