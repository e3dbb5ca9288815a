package sat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/propeval/prop"
)

// Dimacs writes the DIMACS CNF version of p on w.
// Clauses assert that p holds. Atom symbols are associated with their DIMACS indices in comments,
// between the prolog and the set of clauses: if P has index 2, there is a line "c P=2".
// Index 1 stands for the constant true and is asserted by a unit clause.
func Dimacs(p prop.Proposition, w io.Writer) error {
	e := encode(p)
	prefix := fmt.Sprintf("p cnf %d %d\n", e.nbVars(), len(e.clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	for _, s := range e.symbols {
		line := fmt.Sprintf("c %c=%d\n", s, e.inputs[s].Dimacs())
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	for _, clause := range e.ints() {
		strClause := make([]string, len(clause))
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		line := fmt.Sprintf("%s 0\n", strings.Join(strClause, " "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	return nil
}
