package prop

import "fmt"

// An ErrorKind identifies why an input was rejected.
// Kinds are errors themselves, so that callers can write errors.Is(err, ErrUnknownAtom).
type ErrorKind int

// The possible kinds of errors.
const (
	ErrMissingSeparator ErrorKind = iota + 1
	ErrMalformedAssignment
	ErrUnknownAtom
	ErrInvalidTruthToken
	ErrUnexpectedOperator
	ErrUnmatchedParenthesis
	ErrInvalidCharacter
	ErrEmptyExpression
	ErrTooDeep
)

var kindNames = map[ErrorKind]string{
	ErrMissingSeparator:     "missing-separator",
	ErrMalformedAssignment:  "malformed-assignment",
	ErrUnknownAtom:          "unknown-atom",
	ErrInvalidTruthToken:    "invalid-truth-token",
	ErrUnexpectedOperator:   "unexpected-operator",
	ErrUnmatchedParenthesis: "unmatched-parenthesis",
	ErrInvalidCharacter:     "invalid-character",
	ErrEmptyExpression:      "empty-expression",
	ErrTooDeep:              "too-deep",
}

// String returns the kebab-case name of the kind, e.g. "unknown-atom".
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error-kind(%d)", int(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// ParseErrorKind returns the kind whose name is name.
func ParseErrorKind(name string) (ErrorKind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown error kind %q", name)
}

// An Error describes a rejected input.
type Error struct {
	Kind     ErrorKind
	Offset   int    // Offset, in runes, in the whitespace-free text being read; -1 if irrelevant.
	Fragment string // Offending character or substring
	Msg      string
}

func (e *Error) Error() string {
	var s string
	if e.Offset >= 0 {
		s = fmt.Sprintf("%s at position %d", e.Kind, e.Offset)
	} else {
		s = e.Kind.String()
	}
	if e.Fragment != "" {
		s += fmt.Sprintf(" (%q)", e.Fragment)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

// Unwrap makes the error kind reachable from errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind ErrorKind, offset int, fragment, msg string) *Error {
	return &Error{Kind: kind, Offset: offset, Fragment: fragment, Msg: msg}
}

// Errorf builds an *Error. It is meant for alternative parsers that report prop error kinds.
func Errorf(kind ErrorKind, offset int, fragment string, format string, args ...interface{}) *Error {
	return newError(kind, offset, fragment, fmt.Sprintf(format, args...))
}
