package prop

import (
	"fmt"
	"sort"
	"strings"
)

// A Proposition is a node of a formula tree: an Atom, a Connective or a Parenthesised formula.
// Trees are immutable once built; they can be evaluated concurrently.
type Proposition interface {
	String() string
	isProposition()
}

// A Truth is the value an atom is bound to.
type Truth bool

// The two truth values.
const (
	False Truth = false
	True  Truth = true
)

func (t Truth) String() string {
	if t {
		return "T"
	}
	return "F"
}

// An Atom is a leaf whose symbol was resolved to a truth value.
type Atom struct {
	Symbol rune
	Value  Truth
}

// NewAtom returns the leaf for symbol, bound to value.
func NewAtom(symbol rune, value Truth) Atom {
	return Atom{Symbol: symbol, Value: value}
}

func (a Atom) String() string { return string(a.Symbol) }
func (Atom) isProposition()    {}

// An Operator is the kind of a connective.
type Operator int

// The possible operators.
const (
	OpAnd Operator = iota
	OpOr
	OpIfThen
	OpIff
	OpNot
	OpPossibly
	OpNecessarily
)

var opSymbols = [...]rune{
	OpAnd:         '∧',
	OpOr:          '∨',
	OpIfThen:      '→',
	OpIff:         '↔',
	OpNot:         '¬',
	OpPossibly:    '◇',
	OpNecessarily: '□',
}

var opNames = [...]string{
	OpAnd:         "and",
	OpOr:          "or",
	OpIfThen:      "ifthen",
	OpIff:         "iff",
	OpNot:         "not",
	OpPossibly:    "possibly",
	OpNecessarily: "necessarily",
}

// Symbol returns the rune the operator is written with.
func (op Operator) Symbol() rune { return opSymbols[op] }

func (op Operator) String() string { return opNames[op] }

// Unary is true for ¬, ◇ and □.
func (op Operator) Unary() bool {
	return op == OpNot || op == OpPossibly || op == OpNecessarily
}

// Arity returns the number of operands the operator takes.
func (op Operator) Arity() int {
	if op.Unary() {
		return 1
	}
	return 2
}

var binaryOps = map[rune]Operator{
	'∧': OpAnd,
	'∨': OpOr,
	'→': OpIfThen,
	'↔': OpIff,
}

var unaryOps = map[rune]Operator{
	'¬': OpNot,
	'◇': OpPossibly,
	'□': OpNecessarily,
}

// A Connective applies an operator to one or two operands it exclusively owns.
// Connectives are built with And, Or, IfThen, Iff, Not, Possibly, Necessarily or Connect;
// the zero value has no operands and is not a formula Evaluate accepts.
type Connective struct {
	op       Operator
	operands []Proposition
}

// Op returns the operator of c.
func (c Connective) Op() Operator { return c.op }

// Operands returns a copy of the operands of c, in order.
func (c Connective) Operands() []Proposition {
	res := make([]Proposition, len(c.operands))
	copy(res, c.operands)
	return res
}

// Left returns the first operand of c. For unary connectives, it is the only operand.
// It is nil for a connective without operands.
func (c Connective) Left() Proposition {
	if len(c.operands) == 0 {
		return nil
	}
	return c.operands[0]
}

// Right returns the second operand of a binary connective, or nil for a unary one.
func (c Connective) Right() Proposition {
	if len(c.operands) < 2 {
		return nil
	}
	return c.operands[1]
}

func (c Connective) String() string {
	if len(c.operands) != c.op.Arity() {
		return fmt.Sprintf("%s(%d operands)", c.op, len(c.operands))
	}
	if c.op.Unary() {
		return string(c.op.Symbol()) + c.operands[0].String()
	}
	return c.operands[0].String() + " " + string(c.op.Symbol()) + " " + c.operands[1].String()
}

func (Connective) isProposition() {}

func binary(op Operator, left, right Proposition) Connective {
	return Connective{op: op, operands: []Proposition{left, right}}
}

func unary(op Operator, p Proposition) Connective {
	return Connective{op: op, operands: []Proposition{p}}
}

// And is the conjunction of left and right.
func And(left, right Proposition) Proposition { return binary(OpAnd, left, right) }

// Or is the disjunction of left and right.
func Or(left, right Proposition) Proposition { return binary(OpOr, left, right) }

// IfThen is the material implication left → right.
func IfThen(left, right Proposition) Proposition { return binary(OpIfThen, left, right) }

// Iff is the biconditional left ↔ right.
func Iff(left, right Proposition) Proposition { return binary(OpIff, left, right) }

// Not is the negation of p.
func Not(p Proposition) Proposition { return unary(OpNot, p) }

// Possibly is ◇p.
func Possibly(p Proposition) Proposition { return unary(OpPossibly, p) }

// Necessarily is □p.
func Necessarily(p Proposition) Proposition { return unary(OpNecessarily, p) }

// Connect applies op to operands. The number of operands must match op.Arity().
func Connect(op Operator, operands ...Proposition) Proposition {
	if len(operands) != op.Arity() {
		panic("prop: wrong number of operands for " + op.String())
	}
	ops := make([]Proposition, len(operands))
	copy(ops, operands)
	return Connective{op: op, operands: ops}
}

// A Parenthesised formula was explicitly grouped in its source.
// It evaluates as its inner formula.
type Parenthesised struct {
	Inner Proposition
}

// Group wraps p in parentheses.
func Group(p Proposition) Proposition { return Parenthesised{Inner: p} }

func (p Parenthesised) String() string { return "(" + p.Inner.String() + ")" }
func (Parenthesised) isProposition()    {}

// Walk calls fn on p and on each of its descendants, parents first.
func Walk(p Proposition, fn func(Proposition)) {
	fn(p)
	switch p := p.(type) {
	case Connective:
		for _, sub := range p.operands {
			Walk(sub, fn)
		}
	case Parenthesised:
		Walk(p.Inner, fn)
	}
}

// Symbols returns the distinct atom symbols found in p, sorted.
func Symbols(p Proposition) []rune {
	seen := make(map[rune]bool)
	Walk(p, func(sub Proposition) {
		if a, ok := sub.(Atom); ok {
			seen[a.Symbol] = true
		}
	})
	res := make([]rune, 0, len(seen))
	for s := range seen {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Depth returns the height of the tree rooted at p. An atom has depth 1.
func Depth(p Proposition) int {
	switch p := p.(type) {
	case Connective:
		max := 0
		for _, sub := range p.operands {
			if d := Depth(sub); d > max {
				max = d
			}
		}
		return max + 1
	case Parenthesised:
		return Depth(p.Inner) + 1
	default:
		return 1
	}
}

// Compact returns the whitespace-free notation of p, as accepted by Parse.
func Compact(p Proposition) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' {
			return -1
		}
		return r
	}, p.String())
}
