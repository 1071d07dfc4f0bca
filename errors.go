package xpr

import (
	"strconv"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when it failed. For unknown
	// identifiers, it is the whole identifier.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "identifier", or the empty string for an unrecognized character.
	Kind string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	switch err.Kind {
	case "":
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	case "identifier":
		return errpos(err.Col, "unknown name "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates a token in a position where it cannot be used, such
// as an operator with a missing operand or two adjacent values. It implements
// InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the offending token.
	Token string
	// Msg describes what was wrong with it.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, strconv.Quote(err.Token)+": "+err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if an open parenthesis was never closed, and false if a
	// close parenthesis had no open one.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating an illegal use of a comma. It
// implements InputError.
type SeparatorError struct {
	// Col is the position of the comma.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator \",\"")
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the close parenthesis ending the call.
	Col int
	// Func is the function name that was called. It is empty for bare
	// parentheses, which accept exactly one argument.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *CallError) Error() string {
	if err.Func == "" {
		return errpos(err.Col, "parentheses must contain one expression, not "+strconv.Itoa(err.Len))
	}
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an input with no tokens.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator or function is applied to
// arguments outside its domain. It implements InputError.
type DomainError struct {
	// Col is the position of the operator, or of the close parenthesis ending
	// a function call.
	Col int
	// Func is the operator or function name.
	Func string
	// Args are the operands.
	Args []float64
}

func (err *DomainError) Error() string {
	var b []byte
	b = append(b, '(')
	for i, x := range err.Args {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendFloat(b, x, 'g', -1, 64)
	}
	b = append(b, ')')
	return errpos(err.Col, string(b)+" outside domain of "+err.Func)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DomainError)(nil)
)
