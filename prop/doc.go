// Package prop parses and evaluates propositional formulas written in a compact notation.
//
// An input bundles a formula with the truth values of its atoms:
//
//	P ∧ (Q → ¬R);P=T,Q=F,R=T
//
// Atoms are the single letters P, Q, R, S and T. They are bound to T (true) or F (false)
// by the comma-separated list following the semicolon. Whitespace is never significant.
//
// The connectives are ∧ (and), ∨ (or), → (material implication), ↔ (biconditional),
// ¬ (negation) and the modal operators ◇ (possibly) and □ (necessarily). The modal operators
// are recognized but evaluated as their operand: there is no Kripke frame to quantify over.
//
// Parse reads formulas left to right without operator precedence: a binary connective takes
// the whole rest of its scope as its right operand, so that
//
//	P ∧ Q ∨ R
//
// reads as P ∧ (Q ∨ R). Parentheses are the only way to group otherwise.
// The precedence package offers the conventional reading instead.
//
// Formulas are parsed into an immutable tree of Proposition values, which Evaluate folds into
// a boolean. A tree can be evaluated any number of times, and under other assignments through
// EvaluateUnder.
//
// Malformed inputs never panic: every failure is returned as an *Error whose Kind can be tested
// with errors.Is, e.g.
//
//	if _, err := prop.Eval("P ∧ R;P=T"); errors.Is(err, prop.ErrUnknownAtom) {
//		...
//	}
package prop
