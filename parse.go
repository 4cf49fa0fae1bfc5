package molarmass

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Formula = { Unit }
// Unit = ( Atom | Group ) [ Count ]
// Atom = upper { lower }
// Group = '(' Formula ')'
// Count = digit { digit }

// Formula is a parsed chemical formula that can be evaluated with a context.
type Formula struct {
	// n is the root node of the formula.
	n *node
	// symbols is the sorted list of distinct element symbols in the formula.
	symbols []string
}

// Parse parses a formula so it can be evaluated with a context. Parsing reads
// src to its end. Every symbol is resolved against the parse's table as it is
// scanned, so an unknown symbol is reported before any error later in the
// input. The given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Formula, error) {
	p := newparsectx(opts)
	n, err := parseformula(lex(src, 0), &p, "")
	if err != nil {
		return nil, err
	}
	f := Formula{n: n}
	n.symbols(&f.symbols)
	slices.Sort(f.symbols)
	f.symbols = slices.Compact(f.symbols)
	return &f, nil
}

// ParseString is a shortcut to parse a formula held in a string.
func ParseString(src string, opts ...ParseOption) (*Formula, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseformula parses units until the end of the lexer's input. group is the
// text being parsed when it is the body of a group, for error messages.
func parseformula(scan *lexer, p *parsectx, group string) (*node, error) {
	n := &node{kind: nodeFormula, count: 1}
	for {
		r, ok, err := scan.peek()
		if err != nil {
			return nil, err
		}
		var u *node
		if ok && r == OpenBracket {
			scan.readRune()
			tok, err := scan.group()
			if err != nil {
				return nil, err
			}
			// The body starts just after the open bracket at tok.pos, so
			// tok.pos runes precede it.
			body, err := parseformula(lex(strings.NewReader(tok.text), tok.pos), p, tok.text)
			if err != nil {
				return nil, err
			}
			u = &node{kind: nodeGroup, pos: tok.pos, body: body}
		} else {
			tok, err := scan.symbol()
			if err != nil {
				var se *SymbolError
				if errors.As(err, &se) {
					se.Group = group
				}
				return nil, err
			}
			if tok.kind == tokenEOF {
				return n, nil
			}
			el, ok := p.table.Lookup(tok.text)
			if !ok {
				return nil, &UnknownSymbolError{Col: tok.pos, Symbol: tok.text, Group: group}
			}
			u = &node{kind: nodeAtom, pos: tok.pos, el: el}
		}
		u.count, err = parsecount(scan, p)
		if err != nil {
			return nil, err
		}
		n.units = append(n.units, u)
	}
}

// parsecount scans the optional count following a unit. The result is 1 if
// there is no count.
func parsecount(scan *lexer, p *parsectx) (uint64, error) {
	tok, err := scan.count()
	if err != nil {
		return 0, err
	}
	if tok.kind == tokenNone {
		return 1, nil
	}
	c, err := strconv.ParseUint(tok.text, 10, 64)
	if err != nil || c == 0 || c > p.max {
		// The lexer only produces digits, so the only possible parse error
		// is overflow.
		return 0, &CountError{Col: tok.pos, Text: tok.text, Max: p.max}
	}
	return c, nil
}

// symbols appends the symbol of every atom under n to v, with repeats.
func (n *node) symbols(v *[]string) {
	switch n.kind {
	case nodeFormula:
		for _, u := range n.units {
			u.symbols(v)
		}
	case nodeAtom:
		*v = append(*v, n.el.Symbol)
	case nodeGroup:
		n.body.symbols(v)
	}
}

// Elements returns the distinct element symbols used in the formula, sorted.
func (f *Formula) Elements() []string {
	return append(([]string)(nil), f.symbols...)
}

// String creates the canonical text of the formula: the same units in the
// same order, with counts of 1 omitted.
func (f *Formula) String() string {
	return f.n.String()
}
