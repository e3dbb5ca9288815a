package prop

import "fmt"

// Evaluate returns the truth value of p.
// Both operands of a binary connective are always evaluated.
// ◇ and □ evaluate as their operand.
// Evaluate panics if p holds a Connective that was not built by a constructor.
func Evaluate(p Proposition) bool {
	switch p := p.(type) {
	case Atom:
		return bool(p.Value)
	case Parenthesised:
		return Evaluate(p.Inner)
	case Connective:
		if len(p.operands) != p.op.Arity() {
			panic(fmt.Sprintf("connective %s has %d operands", p.op, len(p.operands)))
		}
		if p.op.Unary() {
			v := Evaluate(p.operands[0])
			if p.op == OpNot {
				return !v
			}
			// TODO: evaluate ◇ and □ over the worlds of a Kripke frame once frames can be described.
			return v
		}
		left := Evaluate(p.operands[0])
		right := Evaluate(p.operands[1])
		switch p.op {
		case OpAnd:
			return left && right
		case OpOr:
			return left || right
		case OpIfThen:
			return !left || right
		case OpIff:
			return left == right
		}
	}
	panic("invalid proposition type")
}

// Rebind returns a copy of p where each atom takes the value atoms associates with its symbol.
func Rebind(p Proposition, atoms AtomMap) (Proposition, error) {
	switch p := p.(type) {
	case Atom:
		return atoms.Resolve(p.Symbol)
	case Parenthesised:
		inner, err := Rebind(p.Inner, atoms)
		if err != nil {
			return nil, err
		}
		return Parenthesised{Inner: inner}, nil
	case Connective:
		ops := make([]Proposition, len(p.operands))
		for i, sub := range p.operands {
			var err error
			if ops[i], err = Rebind(sub, atoms); err != nil {
				return nil, err
			}
		}
		return Connective{op: p.op, operands: ops}, nil
	}
	panic("invalid proposition type")
}

// EvaluateUnder returns the truth value p takes when its atoms are bound by atoms rather than
// by the values they were parsed with.
func EvaluateUnder(p Proposition, atoms AtomMap) (bool, error) {
	q, err := Rebind(p, atoms)
	if err != nil {
		return false, err
	}
	return Evaluate(q), nil
}
