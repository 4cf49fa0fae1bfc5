package molarmass

import (
	"strconv"
	"strings"
)

// node is a node in the parse tree of a formula.
type node struct {
	kind nodeKind

	// el is the resolved element of an atom.
	el Element
	// count is the multiplicity of an atom or group. It is 1 when the input
	// gives no count.
	count uint64
	// pos is the position of the start of the unit in the input.
	pos int

	units []*node // units of a formula, in input order
	body  *node   // formula inside a group
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeFormula // sum of units
	nodeAtom    // el.Weight times count
	nodeGroup   // body times count
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeFormula:
		return "Formula"
	case nodeAtom:
		return "Atom"
	case nodeGroup:
		return "Group"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeFormula:
		for _, u := range n.units {
			u.fmt(b)
		}
	case nodeAtom:
		b.WriteString(n.el.Symbol)
		n.fmtcount(b)
	case nodeGroup:
		b.WriteRune(OpenBracket)
		n.body.fmt(b)
		b.WriteRune(CloseBracket)
		n.fmtcount(b)
	default:
		panic("molarmass: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtcount(b *strings.Builder) {
	if n.count != 1 {
		b.WriteString(strconv.FormatUint(n.count, 10))
	}
}
