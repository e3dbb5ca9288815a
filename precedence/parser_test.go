package precedence

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/repr"

	"github.com/crillab/propeval/prop"
)

func TestParseStructure(t *testing.T) {
	tests := []struct {
		formula string
		want    string
	}{
		{"P", "P"},
		{"P ∧ Q ∨ R", "(P ∧ Q) ∨ R"},
		{"P ∨ Q ∧ R", "P ∨ (Q ∧ R)"},
		{"P → Q ↔ R", "(P → Q) ↔ R"},
		{"P → Q → R", "P → (Q → R)"},
		{"¬P ∧ Q", "(¬P) ∧ Q"},
		{"¬(P ∧ Q)", "¬(P ∧ Q)"},
		{"◇P ∨ □Q", "(◇P) ∨ (□Q)"},
	}
	for _, test := range tests {
		got, err := Parse(test.formula, prop.Unbound())
		assert.NoError(t, err, "formula %q", test.formula)
		assert.Equal(t, test.want, explicit(got), "formula %q", test.formula)
	}
}

// explicit renders p with parentheses around every binary connective that is an operand,
// and around every unary connective that is the operand of a binary one.
func explicit(p prop.Proposition) string {
	switch p := p.(type) {
	case prop.Connective:
		if p.Op().Unary() {
			return string(p.Op().Symbol()) + explicitOperand(p.Left(), false)
		}
		return explicitOperand(p.Left(), true) + " " + string(p.Op().Symbol()) + " " + explicitOperand(p.Right(), true)
	case prop.Parenthesised:
		return "(" + explicit(p.Inner) + ")"
	default:
		return p.String()
	}
}

func explicitOperand(p prop.Proposition, ofBinary bool) string {
	if c, ok := p.(prop.Connective); ok && (ofBinary || !c.Op().Unary()) {
		return "(" + explicit(p) + ")"
	}
	return explicit(p)
}

func TestParseEvaluate(t *testing.T) {
	tests := map[string]bool{
		"P ∧ Q;P=T,Q=F":                               false,
		"¬(P ∨ Q);P=F,Q=F":                            true,
		"P ∨ (Q ∧ R);P=F,Q=F,R=T":                     false,
		"P ∨ (Q ∧ R) ↔ (P ∨ Q) ∧ (P ∨ R);P=F,Q=T,R=T": true,
		"P ∧ Q ∨ R;P=F,Q=T,R=T":                       true,
		"¬P ∧ Q;P=T,Q=F":                              false,
	}
	for input, want := range tests {
		got, err := prop.EvalWith(input, Parse)
		assert.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

// Both grammars agree whenever the formula is fully parenthesised.
func TestParseAgreesWithLegacy(t *testing.T) {
	formulas := []string{
		"(P ∧ Q) ∨ R",
		"¬(P → (Q ↔ R))",
		"((P ∨ Q) ∧ (R ∨ S)) → T",
		"◇(P ∧ □Q)",
	}
	for _, formula := range formulas {
		legacy, err := prop.Parse(formula, prop.Unbound())
		assert.NoError(t, err)
		conventional, err := Parse(formula, prop.Unbound())
		assert.NoError(t, err)
		assert.Equal(t, legacy.String(), conventional.String(), repr.String(conventional))
		for _, row := range prop.TruthTable(legacy) {
			v, err := prop.EvaluateUnder(conventional, row.Atoms)
			assert.NoError(t, err)
			assert.Equal(t, row.Value, v, "formula %q under %s", formula, row.Atoms)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		formula string
		kind    prop.ErrorKind
		offset  int
	}{
		{"", prop.ErrEmptyExpression, 0},
		{"P ∧ ()", prop.ErrEmptyExpression, 3},
		{"P + Q", prop.ErrInvalidCharacter, 1},
		{"(P", prop.ErrUnmatchedParenthesis, 0},
		{"P)", prop.ErrUnmatchedParenthesis, 1},
		{"∧P", prop.ErrUnexpectedOperator, 0},
		{"P Q", prop.ErrUnexpectedOperator, 1},
		{"P ∧ S", prop.ErrUnknownAtom, 2},
	}
	atoms := prop.AtomMap{'P': 'T', 'Q': 'F'}
	for _, test := range tests {
		_, err := Parse(test.formula, atoms)
		assert.True(t, errors.Is(err, test.kind), "formula %q: expected %s, got %v", test.formula, test.kind, err)
		var perr *prop.Error
		assert.True(t, errors.As(err, &perr), "formula %q: %v is not a *prop.Error", test.formula, err)
		if perr != nil {
			assert.Equal(t, test.offset, perr.Offset, "formula %q: %v", test.formula, err)
		}
	}
	_, err := Parse("P", prop.AtomMap{'P': '?'})
	assert.True(t, errors.Is(err, prop.ErrInvalidTruthToken))
}

func TestParseTooDeep(t *testing.T) {
	ps := Parser{MaxDepth: 3}
	_, err := ps.Parse("¬(P)", prop.AtomMap{'P': 'T'})
	assert.NoError(t, err)
	_, err = ps.Parse("¬¬(P)", prop.AtomMap{'P': 'T'})
	assert.True(t, errors.Is(err, prop.ErrTooDeep), "got %v", err)

	// Side by side groups only count once.
	ps = Parser{MaxDepth: 5}
	f, err := ps.Parse("(P ∧ Q) ∧ (R ∧ S) ∧ (P ∧ Q)", prop.AtomMap{'P': 'T', 'Q': 'T', 'R': 'T', 'S': 'T'})
	assert.NoError(t, err)
	assert.True(t, prop.Evaluate(f))
	_, err = ps.Parse("(P ∧ Q) ∧ (R ∧ S) ∧ (P ∧ (Q ∧ R))", prop.AtomMap{'P': 'T', 'Q': 'T', 'R': 'T', 'S': 'T'})
	assert.True(t, errors.Is(err, prop.ErrTooDeep), "got %v", err)
}
