package prop

import (
	"sort"
	"strings"
	"unicode"
)

// An AtomMap associates atom symbols with truth tokens ('T' or 'F').
// Tokens are checked when an atom is resolved, not when the map is built.
type AtomMap map[rune]rune

// IsAtomSymbol returns true iff r is one of the atom symbols P, Q, R, S and T.
func IsAtomSymbol(r rune) bool {
	switch r {
	case 'P', 'Q', 'R', 'S', 'T':
		return true
	}
	return false
}

// Resolve returns the leaf for symbol.
func (m AtomMap) Resolve(symbol rune) (Atom, error) {
	tok, ok := m[symbol]
	if !ok {
		return Atom{}, newError(ErrUnknownAtom, -1, string(symbol), "no value assigned")
	}
	switch tok {
	case 'T':
		return NewAtom(symbol, True), nil
	case 'F':
		return NewAtom(symbol, False), nil
	default:
		return Atom{}, newError(ErrInvalidTruthToken, -1, string(tok), "value of "+string(symbol)+" must be T or F")
	}
}

// Valuation returns the map associating symbol with value.
func Valuation(values map[rune]bool) AtomMap {
	m := make(AtomMap, len(values))
	for s, v := range values {
		if v {
			m[s] = 'T'
		} else {
			m[s] = 'F'
		}
	}
	return m
}

// String returns the map in the assignment notation, symbols sorted, e.g. "P=T,Q=F".
func (m AtomMap) String() string {
	syms := make([]rune, 0, len(m))
	for s := range m {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	var sb strings.Builder
	for i, s := range syms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(s)
		sb.WriteByte('=')
		sb.WriteRune(m[s])
	}
	return sb.String()
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Split separates an input of the form "<formula>;<atom>=<value>,..." into its formula text and its atom map.
// Whitespace is removed first. Only the first character of each atom and of each value is significant,
// and later assignments of a symbol override earlier ones.
func Split(input string) (formula string, atoms AtomMap, err error) {
	input = stripSpaces(input)
	idx := strings.IndexRune(input, ';')
	if idx < 0 {
		return "", nil, newError(ErrMissingSeparator, -1, "", "expected ';' between formula and assignments")
	}
	formula, assigns := input[:idx], input[idx+1:]
	if strings.ContainsRune(assigns, ';') {
		return "", nil, newError(ErrMissingSeparator, -1, assigns, "expected exactly one ';'")
	}
	atoms = make(AtomMap)
	for _, pair := range strings.Split(assigns, ",") {
		eq := strings.IndexRune(pair, '=')
		if eq < 0 {
			return "", nil, newError(ErrMalformedAssignment, -1, pair, "missing '='")
		}
		name, value := []rune(pair[:eq]), []rune(pair[eq+1:])
		if len(name) == 0 || len(value) == 0 {
			return "", nil, newError(ErrMalformedAssignment, -1, pair, "empty atom or value")
		}
		if !IsAtomSymbol(name[0]) {
			return "", nil, newError(ErrMalformedAssignment, -1, pair, "atoms are P, Q, R, S or T")
		}
		atoms[name[0]] = value[0]
	}
	return formula, atoms, nil
}
