// Package sat decides whether propositional formulas are satisfiable or valid.
//
// Atoms are treated as variables: the values they were parsed with are ignored. Formulas are
// translated into a gini circuit, whose Tseitin encoding is given either to the gini solver or
// to the gophersat solver. ◇ and □ are transparent, as in prop.Evaluate.
package sat

import (
	"fmt"
	"strings"

	"github.com/crillab/gophersat/solver"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/crillab/propeval/prop"
)

// A Backend is a SAT solver able to decide a CNF.
type Backend int

// The available backends.
const (
	Gini Backend = iota
	Gophersat
)

var backendNames = [...]string{
	Gini:      "gini",
	Gophersat: "gophersat",
}

func (b Backend) String() string {
	if int(b) < len(backendNames) {
		return backendNames[b]
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

// ParseBackend returns the backend called name ("gini" or "gophersat"), ignoring case.
func ParseBackend(name string) (Backend, error) {
	for i, n := range backendNames {
		if strings.EqualFold(n, name) {
			return Backend(i), nil
		}
	}
	return 0, fmt.Errorf("unknown SAT backend %q", name)
}

// A Result is the outcome of a satisfiability check.
// When Sat is true, Model binds every symbol of the formula and satisfies it.
type Result struct {
	Sat   bool
	Model prop.AtomMap
}

// Satisfiable checks whether some assignment of the atoms of p makes p true.
func Satisfiable(p prop.Proposition, backend Backend) (Result, error) {
	e := encode(p)
	var (
		res Result
		err error
	)
	switch backend {
	case Gini:
		res, err = solveGini(e)
	case Gophersat:
		res, err = solveGophersat(e)
	default:
		return Result{}, fmt.Errorf("unknown SAT backend %v", backend)
	}
	if err != nil || !res.Sat {
		return res, err
	}
	if ok, _ := prop.EvaluateUnder(p, res.Model); !ok {
		// The solver left some variables out of its model: look for one ourselves.
		for _, row := range prop.TruthTable(p) {
			if row.Value {
				return Result{Sat: true, Model: row.Atoms}, nil
			}
		}
		return Result{}, fmt.Errorf("%v declared %q satisfiable, but no model exists", backend, p)
	}
	return res, nil
}

// Valid checks whether every assignment of the atoms of p makes p true.
// When p is not valid, the returned map is a counterexample.
func Valid(p prop.Proposition, backend Backend) (bool, prop.AtomMap, error) {
	res, err := Satisfiable(prop.Not(prop.Group(p)), backend)
	if err != nil {
		return false, nil, err
	}
	if res.Sat {
		return false, res.Model, nil
	}
	return true, nil, nil
}

func solveGini(e *cnf) (Result, error) {
	g := gini.New()
	for _, clause := range e.clauses {
		for _, m := range clause {
			g.Add(m)
		}
		g.Add(z.LitNull)
	}
	switch g.Solve() {
	case 1:
		return Result{Sat: true, Model: e.model(g.Value)}, nil
	case -1:
		return Result{}, nil
	default:
		return Result{}, fmt.Errorf("gini could not decide the problem")
	}
}

func solveGophersat(e *cnf) (Result, error) {
	pb := solver.ParseSlice(e.ints())
	s := solver.New(pb)
	switch s.Solve() {
	case solver.Sat:
		bindings := s.Model()
		value := func(m z.Lit) bool {
			idx := int(m.Var()) - 1
			if idx >= len(bindings) {
				return false
			}
			return bindings[idx] == m.IsPos()
		}
		return Result{Sat: true, Model: e.model(value)}, nil
	case solver.Unsat:
		return Result{}, nil
	default:
		return Result{}, fmt.Errorf("gophersat could not decide the problem")
	}
}
