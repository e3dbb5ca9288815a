package prop

// A Row is a line of a truth table.
type Row struct {
	Atoms AtomMap
	Value bool
}

// TruthTable evaluates p under every assignment of its symbols.
// Rows are ordered as binary numbers, the first symbol being the most significant bit
// and F coming before T.
func TruthTable(p Proposition) []Row {
	syms := Symbols(p)
	n := 1 << uint(len(syms))
	rows := make([]Row, n)
	for i := 0; i < n; i++ {
		atoms := make(AtomMap, len(syms))
		for j, s := range syms {
			if i&(1<<uint(len(syms)-1-j)) != 0 {
				atoms[s] = 'T'
			} else {
				atoms[s] = 'F'
			}
		}
		val, err := EvaluateUnder(p, atoms)
		if err != nil {
			panic(err) // atoms binds every symbol of p
		}
		rows[i] = Row{Atoms: atoms, Value: val}
	}
	return rows
}
