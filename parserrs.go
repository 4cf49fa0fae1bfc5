package molarmass

import "strconv"

// SymbolError is an error indicating that a unit was expected but the input
// did not start an element symbol or a group. It implements InputError.
type SymbolError struct {
	// Col is the position of the offending rune.
	Col int
	// Char is the rune that could not start a symbol.
	Char rune
	// Group is the body of the innermost group containing the error, or the
	// empty string at the top level of the formula.
	Group string
}

func (err *SymbolError) Error() string {
	msg := "expected atomic symbol, found " + strconv.QuoteRune(err.Char)
	if err.Group != "" {
		msg += " in group " + strconv.Quote(err.Group)
	}
	switch {
	case err.Char == CloseBracket:
		msg += " (close bracket with no open bracket)"
	case isLower(err.Char):
		msg += " (did you check capitalization?)"
	default:
		msg += " (symbols start with an uppercase letter)"
	}
	return errpos(err.Col, msg)
}

func (err *SymbolError) Pos() int {
	return err.Col
}

// UnknownSymbolError is an error indicating a well-formed symbol that does not
// name any element in the mass table. It implements InputError.
type UnknownSymbolError struct {
	// Col is the position of the start of the symbol.
	Col int
	// Symbol is the symbol that was not found.
	Symbol string
	// Group is the body of the innermost group containing the symbol, or the
	// empty string at the top level of the formula.
	Group string
}

func (err *UnknownSymbolError) Error() string {
	msg := "unknown atomic symbol " + strconv.Quote(err.Symbol)
	if err.Group != "" {
		msg += " in group " + strconv.Quote(err.Group)
	}
	return errpos(err.Col, msg)
}

func (err *UnknownSymbolError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open bracket that is never closed.
// It implements InputError.
type BracketError struct {
	// Col is the position of the open bracket.
	Col int
	// Left is the opening bracket.
	Left string
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CountError is an error indicating a count outside the accepted range. It
// implements InputError.
type CountError struct {
	// Col is the position of the first digit of the count.
	Col int
	// Text is the digits of the count.
	Text string
	// Max is the largest count accepted by the parse.
	Max uint64
}

func (err *CountError) Error() string {
	return errpos(err.Col, "count "+err.Text+" outside range 1 to "+strconv.FormatUint(err.Max, 10))
}

func (err *CountError) Pos() int {
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
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SymbolError)(nil)
	_ InputError = (*UnknownSymbolError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CountError)(nil)
)
