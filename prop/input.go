package prop

// ParseInput splits input into its formula and its assignments, then parses the formula.
func ParseInput(input string) (Proposition, error) {
	return ParseInputWith(input, Parse)
}

// ParseInputWith is like ParseInput, but the formula is parsed by parse.
func ParseInputWith(input string, parse ParseFunc) (Proposition, error) {
	formula, atoms, err := Split(input)
	if err != nil {
		return nil, err
	}
	return parse(formula, atoms)
}

// Eval returns the truth value of the formula described by input, e.g. "P ∧ Q;P=T,Q=F".
func Eval(input string) (bool, error) {
	return EvalWith(input, Parse)
}

// EvalWith is like Eval, but the formula is parsed by parse.
func EvalWith(input string, parse ParseFunc) (bool, error) {
	p, err := ParseInputWith(input, parse)
	if err != nil {
		return false, err
	}
	return Evaluate(p), nil
}

// Unbound returns a map that binds every atom symbol to false.
// It is useful to parse formulas whose atoms will be bound later, through EvaluateUnder.
func Unbound() AtomMap {
	return AtomMap{'P': 'F', 'Q': 'F', 'R': 'F', 'S': 'F', 'T': 'F'}
}
