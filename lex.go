package molarmass

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	// tokenNone is the result of scanning an optional token that is absent.
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenSymbol is a candidate element symbol, e.g. Na.
	tokenSymbol
	// tokenCount is a run of decimal digits following a unit.
	tokenCount
	// tokenGroup is the text between a pair of matched parentheses.
	tokenGroup
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "Symbol"
	case tokenCount:
		return "Count"
	case tokenGroup:
		return "Group"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OpenBracket and CloseBracket delimit groups.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes consumed so far, including any runes before
	// the start of src when src is the body of a group.
	col int
}

// lex creates a lexer over src. col is the number of runes that precede src
// in the full formula, so that positions in errors refer to the full input.
func lex(src io.RuneScanner, col int) *lexer {
	return &lexer{
		src: src,
		col: col,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// peek returns the next rune without consuming it. ok is false at the end of
// the input.
func (l *lexer) peek() (r rune, ok bool, err error) {
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	l.unreadRune()
	return r, true, nil
}

// symbol scans one candidate element symbol: an uppercase letter followed by
// any number of lowercase letters. At the end of the input, the result is an
// EOF token with a nil error.
func (l *lexer) symbol() (lexToken, error) {
	defer l.buf.Reset()
	tok := lexToken{pos: l.col + 1}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			return tok, nil
		}
		return tok, err
	}
	if !isUpper(r) {
		return tok, &SymbolError{Col: tok.pos, Char: r}
	}
	l.buf.WriteRune(r)
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if !isLower(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	tok.text = l.buf.String()
	tok.kind = tokenSymbol
	return tok, nil
}

// count scans a run of decimal digits. If there are none, the result is a
// tokenNone token and no runes are consumed.
func (l *lexer) count() (lexToken, error) {
	defer l.buf.Reset()
	tok := lexToken{pos: l.col + 1}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	if l.buf.Len() == 0 {
		return tok, nil
	}
	tok.text = l.buf.String()
	tok.kind = tokenCount
	return tok, nil
}

// group scans the body of a group whose open bracket has just been consumed.
// The result's text excludes both brackets, and its pos is the position of
// the open bracket. Nested groups are included in the text verbatim.
func (l *lexer) group() (lexToken, error) {
	defer l.buf.Reset()
	tok := lexToken{kind: tokenGroup, pos: l.col}
	depth := 1
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lexToken{pos: tok.pos}, &BracketError{Col: tok.pos, Left: string(OpenBracket)}
			}
			return lexToken{pos: tok.pos}, err
		}
		switch r {
		case OpenBracket:
			depth++
		case CloseBracket:
			depth--
		}
		if depth == 0 {
			tok.text = l.buf.String()
			return tok, nil
		}
		l.buf.WriteRune(r)
	}
}

func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isDigit(r rune) bool { return '0' <= r && r <= '9' }
