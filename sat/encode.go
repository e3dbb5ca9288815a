package sat

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/crillab/propeval/prop"
)

// A cnf is the Tseitin translation of a formula, as produced by a gini circuit.
type cnf struct {
	circuit *logic.C
	inputs  map[rune]z.Lit // Input literal of each atom symbol
	symbols []rune         // Sorted symbols
	root    z.Lit
	clauses [][]z.Lit
	maxVar  z.Var // Greatest variable found in clauses
	cur     []z.Lit
}

// encode builds the CNF of p, where atoms are variables and their bound values are ignored.
// The clauses assert that p holds; use encode(prop.Not(p)) to assert it does not.
// The circuit's own clauses include the unit clause fixing its constant true.
func encode(p prop.Proposition) *cnf {
	c := logic.NewC()
	res := &cnf{circuit: c, inputs: make(map[rune]z.Lit), symbols: prop.Symbols(p)}
	for _, s := range res.symbols {
		res.inputs[s] = c.Lit()
	}
	res.root = res.lit(p)
	c.ToCnf(res)
	res.addClause(res.root)
	return res
}

func (e *cnf) lit(p prop.Proposition) z.Lit {
	switch p := p.(type) {
	case prop.Atom:
		return e.inputs[p.Symbol]
	case prop.Parenthesised:
		return e.lit(p.Inner)
	case prop.Connective:
		left := e.lit(p.Left())
		switch p.Op() {
		case prop.OpNot:
			return left.Not()
		case prop.OpPossibly, prop.OpNecessarily:
			return left
		}
		right := e.lit(p.Right())
		switch p.Op() {
		case prop.OpAnd:
			return e.circuit.And(left, right)
		case prop.OpOr:
			return e.circuit.Or(left, right)
		case prop.OpIfThen:
			return e.circuit.Implies(left, right)
		case prop.OpIff:
			return e.circuit.Xor(left, right).Not()
		}
	}
	panic("invalid proposition type")
}

// Add implements gini's inter.Adder, so that the circuit can write its clauses in e.
// z.LitNull terminates a clause.
func (e *cnf) Add(m z.Lit) {
	if m == z.LitNull {
		e.clauses = append(e.clauses, e.cur)
		e.cur = nil
		return
	}
	if v := m.Var(); v > e.maxVar {
		e.maxVar = v
	}
	e.cur = append(e.cur, m)
}

func (e *cnf) addClause(ms ...z.Lit) {
	for _, m := range ms {
		e.Add(m)
	}
	e.Add(z.LitNull)
}

// nbVars is the number of variables of the circuit, including the constant one.
func (e *cnf) nbVars() int {
	return e.circuit.Len() - 1
}

// ints returns the clauses in DIMACS notation.
func (e *cnf) ints() [][]int {
	res := make([][]int, len(e.clauses))
	for i, clause := range e.clauses {
		res[i] = make([]int, len(clause))
		for j, m := range clause {
			res[i][j] = m.Dimacs()
		}
	}
	return res
}

// model builds an assignment of e's symbols from the value of each literal.
// Variables that appear in no clause are unconstrained and taken as false.
func (e *cnf) model(value func(m z.Lit) bool) prop.AtomMap {
	vals := make(map[rune]bool, len(e.symbols))
	for _, s := range e.symbols {
		m := e.inputs[s]
		vals[s] = m.Var() <= e.maxVar && value(m)
	}
	return prop.Valuation(vals)
}
