package molarmass

import (
	"io"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadTable reads a YAML mapping of element symbols to atomic weights and
// returns a table that resolves those symbols first and falls back to base.
// base may be nil. Each value is either a weight or a mapping with the keys
// weight, name, and number:
//
//	D: 2.014
//	Tc: {weight: 98, name: Technetium, number: 43}
//
// Symbols must have the form of element symbols, and weights must be positive
// decimal numbers. Symbols that appear in base take their name and number from
// base unless the entry gives them.
func LoadTable(r io.Reader, base Table) (Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document overrides nothing.
			return &overlay{top: table{}, base: base}, nil
		}
		return nil, errors.Wrap(err, "molarmass: decoding table")
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &TableError{Line: root.Line, Msg: "table must be a mapping of symbols to weights"}
	}
	t := make(table, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		el, err := tableEntry(k, v, base)
		if err != nil {
			return nil, err
		}
		if _, ok := t[el.Symbol]; ok {
			return nil, &TableError{Line: k.Line, Symbol: el.Symbol, Msg: "duplicate symbol"}
		}
		t[el.Symbol] = el
	}
	return &overlay{top: t, base: base}, nil
}

func tableEntry(k, v *yaml.Node, base Table) (Element, error) {
	sym := k.Value
	if !isSymbol(sym) {
		return Element{}, &TableError{Line: k.Line, Symbol: sym, Msg: "not an element symbol"}
	}
	var el Element
	if base != nil {
		el, _ = base.Lookup(sym)
	}
	el.Symbol = sym
	switch v.Kind {
	case yaml.ScalarNode:
		el.Weight = v.Value
	case yaml.MappingNode:
		var entry struct {
			Weight yaml.Node `yaml:"weight"`
			Name   string    `yaml:"name"`
			Number int       `yaml:"number"`
		}
		if err := v.Decode(&entry); err != nil {
			return Element{}, errors.Wrapf(err, "molarmass: decoding table entry %s", sym)
		}
		el.Weight = entry.Weight.Value
		if entry.Name != "" {
			el.Name = entry.Name
		}
		if entry.Number != 0 {
			el.Number = entry.Number
		}
	default:
		return Element{}, &TableError{Line: v.Line, Symbol: sym, Msg: "entry must be a weight or a mapping"}
	}
	w, _, err := new(big.Float).Parse(el.Weight, 10)
	if err != nil || w.Sign() <= 0 || w.IsInf() {
		return Element{}, &TableError{Line: v.Line, Symbol: sym, Msg: "invalid weight " + strconv.Quote(el.Weight)}
	}
	return el, nil
}

// isSymbol reports whether s has the form of an element symbol.
func isSymbol(s string) bool {
	for i, r := range s {
		if i == 0 && !isUpper(r) || i > 0 && !isLower(r) {
			return false
		}
	}
	return s != ""
}

type overlay struct {
	top  table
	base Table
}

func (t *overlay) Lookup(symbol string) (Element, bool) {
	if el, ok := t.top.Lookup(symbol); ok {
		return el, true
	}
	if t.base == nil {
		return Element{}, false
	}
	return t.base.Lookup(symbol)
}

// Len returns the number of symbols the table overrides.
func (t *overlay) Len() int {
	return len(t.top)
}

// TableError is an error in a mass table document.
type TableError struct {
	// Line is the line of the document where the error occurred.
	Line int
	// Symbol is the symbol of the offending entry, if any.
	Symbol string
	// Msg describes the error.
	Msg string
}

func (err *TableError) Error() string {
	r := "molarmass: table line " + strconv.Itoa(err.Line) + ": "
	if err.Symbol != "" {
		r += strconv.Quote(err.Symbol) + ": "
	}
	return r + err.Msg
}
