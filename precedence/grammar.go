package precedence

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Atom", Pattern: `[PQRST]`},
	{Name: "Connective", Pattern: `[∧∨→↔¬◇□]`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var grammar = participle.MustBuild[iffExpr](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"),
)

// Each level of the grammar binds tighter than the previous one.
// Binary connectives are right-associative.

type iffExpr struct {
	Left  *ifThenExpr `parser:"@@"`
	Right *iffExpr    `parser:"( \"↔\" @@ )?"`
}

type ifThenExpr struct {
	Left  *orExpr     `parser:"@@"`
	Right *ifThenExpr `parser:"( \"→\" @@ )?"`
}

type orExpr struct {
	Left  *andExpr `parser:"@@"`
	Right *orExpr  `parser:"( \"∨\" @@ )?"`
}

type andExpr struct {
	Left  *unaryExpr `parser:"@@"`
	Right *andExpr   `parser:"( \"∧\" @@ )?"`
}

type unaryExpr struct {
	Op      string     `parser:"  ( @( \"¬\" | \"◇\" | \"□\" )"`
	Operand *unaryExpr `parser:"    @@ )"`
	Primary *primary   `parser:"| @@"`
}

type primary struct {
	Pos lexer.Position

	Atom  string   `parser:"  @Atom"`
	Group *iffExpr `parser:"| \"(\" @@ \")\""`
}
