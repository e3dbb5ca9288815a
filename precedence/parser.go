// Package precedence parses formulas with the usual precedence of propositional connectives.
//
// From the tightest to the loosest, the levels are: ¬ ◇ □, then ∧, then ∨, then →, then ↔.
// Binary connectives associate to the right, so that "P → Q → R" is "P → (Q → R)".
// The notation and the resulting trees are those of the prop package; only the way connectives
// are grouped differs. For instance "P ∧ Q ∨ R" is read "(P ∧ Q) ∨ R" here, and "P ∧ (Q ∨ R)"
// by prop.Parse.
package precedence

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"

	"github.com/crillab/propeval/prop"
)

// A Parser parses formulas with conventional precedence. The zero value is ready to use.
type Parser struct {
	// MaxDepth bounds the nesting of parentheses and connectives along any path of the tree;
	// an atom alone has depth 1. Zero means prop.DefaultMaxDepth.
	MaxDepth int
}

// Parse parses formula with a zero Parser. Its signature matches prop.ParseFunc.
func Parse(formula string, atoms prop.AtomMap) (prop.Proposition, error) {
	return Parser{}.Parse(formula, atoms)
}

// Parse parses formula, resolving its atoms with atoms.
// Errors are *prop.Error values whose offsets count runes in the whitespace-free formula.
func (ps Parser) Parse(formula string, atoms prop.AtomMap) (prop.Proposition, error) {
	max := ps.MaxDepth
	if max <= 0 {
		max = prop.DefaultMaxDepth
	}
	src := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, formula)
	if err := check(src, max); err != nil {
		return nil, err
	}
	expr, err := grammar.ParseString("", src)
	if err != nil {
		return nil, syntaxError(src, err)
	}
	b := builder{src: src, atoms: atoms}
	return b.iff(expr)
}

// check reports the errors the grammar could only describe vaguely:
// empty formulas, unknown characters, unbalanced or empty parentheses and excessive nesting.
// Nesting is bounded along each path of the tree: every connective and group adds a level to the
// groups that enclose it, so that side by side groups do not add up.
func check(src string, max int) error {
	runes := []rune(src)
	if len(runes) == 0 {
		return prop.Errorf(prop.ErrEmptyExpression, 0, "", "expected a proposition")
	}
	var (
		open  []int // positions of unclosed parentheses
		outer []int // depth before each unclosed parenthesis
		depth = 1
	)
	for i, r := range runes {
		switch {
		case prop.IsAtomSymbol(r):
		case r == '(':
			if i+1 < len(runes) && runes[i+1] == ')' {
				return prop.Errorf(prop.ErrEmptyExpression, i+1, "", "expected a proposition")
			}
			open = append(open, i)
			outer = append(outer, depth)
			depth++
		case r == ')':
			if len(open) == 0 {
				return prop.Errorf(prop.ErrUnmatchedParenthesis, i, ")", "no matching '('")
			}
			depth = outer[len(outer)-1]
			open, outer = open[:len(open)-1], outer[:len(outer)-1]
		case strings.ContainsRune("∧∨→↔¬◇□", r):
			depth++
		default:
			return prop.Errorf(prop.ErrInvalidCharacter, i, string(r), "")
		}
		if depth > max {
			return prop.Errorf(prop.ErrTooDeep, i, string(r), "nesting exceeds %d levels", max)
		}
	}
	if len(open) > 0 {
		return prop.Errorf(prop.ErrUnmatchedParenthesis, open[0], string(runes[open[0]:]), "no matching ')'")
	}
	return nil
}

func runeOffset(src string, byteOffset int) int {
	if byteOffset > len(src) {
		byteOffset = len(src)
	}
	return utf8.RuneCountInString(src[:byteOffset])
}

func syntaxError(src string, err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return fmt.Errorf("could not parse %q: %w", src, err)
	}
	pos := perr.Position()
	off := runeOffset(src, pos.Offset)
	var frag string
	if pos.Offset < len(src) {
		r, _ := utf8.DecodeRuneInString(src[pos.Offset:])
		frag = string(r)
	}
	return prop.Errorf(prop.ErrUnexpectedOperator, off, frag, "%s", perr.Message())
}

type builder struct {
	src   string
	atoms prop.AtomMap
}

func (b *builder) iff(e *iffExpr) (prop.Proposition, error) {
	left, err := b.ifThen(e.Left)
	if err != nil || e.Right == nil {
		return left, err
	}
	right, err := b.iff(e.Right)
	if err != nil {
		return nil, err
	}
	return prop.Iff(left, right), nil
}

func (b *builder) ifThen(e *ifThenExpr) (prop.Proposition, error) {
	left, err := b.or(e.Left)
	if err != nil || e.Right == nil {
		return left, err
	}
	right, err := b.ifThen(e.Right)
	if err != nil {
		return nil, err
	}
	return prop.IfThen(left, right), nil
}

func (b *builder) or(e *orExpr) (prop.Proposition, error) {
	left, err := b.and(e.Left)
	if err != nil || e.Right == nil {
		return left, err
	}
	right, err := b.or(e.Right)
	if err != nil {
		return nil, err
	}
	return prop.Or(left, right), nil
}

func (b *builder) and(e *andExpr) (prop.Proposition, error) {
	left, err := b.unary(e.Left)
	if err != nil || e.Right == nil {
		return left, err
	}
	right, err := b.and(e.Right)
	if err != nil {
		return nil, err
	}
	return prop.And(left, right), nil
}

func (b *builder) unary(e *unaryExpr) (prop.Proposition, error) {
	if e.Primary != nil {
		return b.primary(e.Primary)
	}
	operand, err := b.unary(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "¬":
		return prop.Not(operand), nil
	case "◇":
		return prop.Possibly(operand), nil
	case "□":
		return prop.Necessarily(operand), nil
	}
	return nil, fmt.Errorf("invalid unary connective %q", e.Op)
}

func (b *builder) primary(e *primary) (prop.Proposition, error) {
	if e.Group != nil {
		inner, err := b.iff(e.Group)
		if err != nil {
			return nil, err
		}
		return prop.Group(inner), nil
	}
	symbol, _ := utf8.DecodeRuneInString(e.Atom)
	atom, err := b.atoms.Resolve(symbol)
	if err != nil {
		var perr *prop.Error
		if errors.As(err, &perr) {
			located := *perr
			located.Offset = runeOffset(b.src, e.Pos.Offset)
			return nil, &located
		}
		return nil, err
	}
	return atom, nil
}
