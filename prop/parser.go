package prop

import (
	"errors"
	"fmt"
)

// DefaultMaxDepth is the nesting limit used when a Parser does not set one.
const DefaultMaxDepth = 1000

// A ParseFunc builds the tree of a formula, resolving its atoms with atoms.
// Parse is the default one.
type ParseFunc func(formula string, atoms AtomMap) (Proposition, error)

// A Parser reads formulas left to right, without operator precedence.
// The zero value is ready to use.
type Parser struct {
	// MaxDepth bounds the nesting of parentheses and connectives.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

type parser struct {
	src      []rune
	atoms    AtomMap
	maxDepth int
}

// Parse parses formula with a zero Parser.
func Parse(formula string, atoms AtomMap) (Proposition, error) {
	return Parser{}.Parse(formula, atoms)
}

// Parse parses formula, resolving its atoms with atoms.
//
// The formula is scanned left to right. An atom or a parenthesised group becomes the current
// operand; a binary connective (∧, ∨, →, ↔) requires a current operand and takes everything after it,
// up to the end of the enclosing group, as its right operand. A unary connective (¬, ◇, □) must not
// follow an operand and likewise takes everything after it. Hence connectives at the same level
// associate to the right, whatever they are: "P ∧ Q ∨ R" is "P ∧ (Q ∨ R)".
func (ps Parser) Parse(formula string, atoms AtomMap) (Proposition, error) {
	max := ps.MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}
	p := parser{src: []rune(stripSpaces(formula)), atoms: atoms, maxDepth: max}
	return p.parse(0, len(p.src), 1)
}

// parse parses p.src[lo:hi].
func (p *parser) parse(lo, hi, depth int) (Proposition, error) {
	if depth > p.maxDepth {
		return nil, newError(ErrTooDeep, lo, "", fmt.Sprintf("nesting exceeds %d levels", p.maxDepth))
	}
	var cur Proposition
	for i := lo; i < hi; i++ {
		c := p.src[i]
		if IsAtomSymbol(c) {
			atom, err := p.atoms.Resolve(c)
			if err != nil {
				return nil, withOffset(err, i)
			}
			cur = atom
			continue
		}
		if op, ok := binaryOps[c]; ok {
			if cur == nil {
				return nil, newError(ErrUnexpectedOperator, i, string(c), "missing left operand")
			}
			if i+1 == hi {
				return nil, newError(ErrUnexpectedOperator, i, string(c), "missing right operand")
			}
			right, err := p.parse(i+1, hi, depth+1)
			if err != nil {
				return nil, err
			}
			return binary(op, cur, right), nil
		}
		if op, ok := unaryOps[c]; ok {
			if cur != nil {
				return nil, newError(ErrUnexpectedOperator, i, string(c), "unary connective after an operand")
			}
			if i+1 == hi {
				return nil, newError(ErrUnexpectedOperator, i, string(c), "missing operand")
			}
			operand, err := p.parse(i+1, hi, depth+1)
			if err != nil {
				return nil, err
			}
			return unary(op, operand), nil
		}
		switch c {
		case '(':
			end, err := p.closing(i, hi)
			if err != nil {
				return nil, err
			}
			inner, err := p.parse(i+1, end, depth+1)
			if err != nil {
				return nil, err
			}
			cur = Parenthesised{Inner: inner}
			i = end
		case ')':
			return nil, newError(ErrUnmatchedParenthesis, i, ")", "no matching '('")
		default:
			return nil, newError(ErrInvalidCharacter, i, string(c), "")
		}
	}
	if cur == nil {
		return nil, newError(ErrEmptyExpression, lo, "", "expected a proposition")
	}
	return cur, nil
}

// closing returns the index of the parenthesis matching the one at open.
func (p *parser) closing(open, hi int) (int, error) {
	count := 1
	for i := open + 1; i < hi; i++ {
		switch p.src[i] {
		case '(':
			count++
		case ')':
			count--
			if count == 0 {
				return i, nil
			}
		}
	}
	return 0, newError(ErrUnmatchedParenthesis, open, string(p.src[open:hi]), "no matching ')'")
}

// withOffset returns a copy of err located at off, if err is an *Error.
func withOffset(err error, off int) error {
	var perr *Error
	if !errors.As(err, &perr) {
		return err
	}
	cp := *perr
	cp.Offset = off
	return &cp
}
