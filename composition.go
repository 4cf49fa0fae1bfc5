package molarmass

import (
	"math/big"
	"strings"

	"golang.org/x/exp/slices"
)

// Component is the share of one element in a formula.
type Component struct {
	Element Element
	// Count is the total number of atoms of the element, through every
	// enclosing group count.
	Count *big.Int
	// Mass is the element's contribution to the molar mass in grams per mole.
	Mass *big.Float
	// Fraction is Mass divided by the molar mass of the formula, or zero if
	// the formula has no mass.
	Fraction *big.Float
}

// Composition breaks a formula down by element. Components are in Hill order:
// carbon then hydrogen, then everything else alphabetically, or alphabetical
// if there is no carbon.
func (ctx *Context) Composition(f *Formula) ([]Component, error) {
	counts := make(map[string]*Component, len(f.symbols))
	f.n.tally(counts, big.NewInt(1))
	total := new(big.Float).SetPrec(ctx.prec)
	r := make([]Component, 0, len(counts))
	for _, c := range counts {
		w, err := ctx.weight(c.Element.Symbol, c.Element.Weight)
		if err != nil {
			return nil, err
		}
		c.Mass = new(big.Float).SetPrec(ctx.prec).SetInt(c.Count)
		c.Mass.Mul(c.Mass, w)
		total.Add(total, c.Mass)
		r = append(r, *c)
	}
	for i := range r {
		r[i].Fraction = new(big.Float).SetPrec(ctx.prec)
		if total.Sign() != 0 {
			r[i].Fraction.Quo(r[i].Mass, total)
		}
	}
	_, carbon := counts["C"]
	slices.SortFunc(r, func(a, b Component) int {
		return hillcmp(a.Element.Symbol, b.Element.Symbol, carbon)
	})
	return r, nil
}

// tally adds the atom counts under n, each multiplied by k, to counts.
func (n *node) tally(counts map[string]*Component, k *big.Int) {
	switch n.kind {
	case nodeFormula:
		for _, u := range n.units {
			u.tally(counts, k)
		}
	case nodeAtom:
		c := counts[n.el.Symbol]
		if c == nil {
			c = &Component{Element: n.el, Count: new(big.Int)}
			counts[n.el.Symbol] = c
		}
		m := new(big.Int).SetUint64(n.count)
		c.Count.Add(c.Count, m.Mul(m, k))
	case nodeGroup:
		m := new(big.Int).SetUint64(n.count)
		n.body.tally(counts, m.Mul(m, k))
	}
}

func hillcmp(a, b string, carbon bool) int {
	if carbon {
		for _, s := range [...]string{"C", "H"} {
			switch {
			case a == s && b == s:
				return 0
			case a == s:
				return -1
			case b == s:
				return 1
			}
		}
	}
	return strings.Compare(a, b)
}

// Hill returns the formula's empirical formula in Hill notation, e.g. C2H4O2
// for HC2H3O2.
func (ctx *Context) Hill(f *Formula) (string, error) {
	comp, err := ctx.Composition(f)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range comp {
		b.WriteString(c.Element.Symbol)
		if c.Count.Cmp(big.NewInt(1)) != 0 {
			b.WriteString(c.Count.String())
		}
	}
	return b.String(), nil
}
