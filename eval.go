package molarmass

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Context is a context for evaluating formulae. It is not safe to use a
// Context concurrently.
type Context struct {
	// weights caches atomic weights parsed from their text.
	weights map[string]*big.Float
	prec    uint
	r       *big.Float
	err     error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{weights: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates a formula and returns its molar mass in grams per mole. The
// result belongs to the caller.
func (ctx *Context) Eval(f *Formula) *big.Float {
	r := new(big.Float).SetPrec(ctx.prec)
	ctx.err = f.n.eval(ctx, r)
	if ctx.err != nil {
		ctx.r = nil
		return nil
	}
	ctx.r = r
	return ctx.Result()
}

// Result returns a copy of the result obtained after evaluating a formula.
// Panics if ctx has not been used to evaluate a formula. Returns nil if an
// error occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	if ctx.r == nil {
		panic("molarmass: Context.Result called before evaluating any formula")
	}
	return new(big.Float).Copy(ctx.r)
}

// Err returns the error that occurred while evaluating the last formula with
// ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		weights: make(map[string]*big.Float, len(ctx.weights)),
		prec:    ctx.prec,
	}
	// Loop backward so we apply the last precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Cached weights are only reusable at the same precision.
	if n.prec == ctx.prec {
		for k, v := range ctx.weights {
			n.weights[k] = v
		}
	}
	for _, opt := range opts {
		switch opt.(type) {
		case nil, precopt: // already done
		default:
			panic("molarmass: unknown option type")
		}
	}
	return &n
}

// weight gets a possibly cached atomic weight from its text.
func (ctx *Context) weight(symbol, s string) (*big.Float, error) {
	if r := ctx.weights[s]; r != nil {
		return r, nil
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil || r.Sign() <= 0 || r.IsInf() {
		return nil, &WeightError{Symbol: symbol, Weight: s}
	}
	ctx.weights[s] = r
	return r, nil
}

// eval adds the node's mass to r.
func (n *node) eval(ctx *Context, r *big.Float) error {
	switch n.kind {
	case nodeFormula:
		for _, u := range n.units {
			if err := u.eval(ctx, r); err != nil {
				return err
			}
		}
	case nodeAtom:
		w, err := ctx.weight(n.el.Symbol, n.el.Weight)
		if err != nil {
			return err
		}
		m := new(big.Float).SetPrec(ctx.prec).SetUint64(n.count)
		r.Add(r, m.Mul(m, w))
	case nodeGroup:
		m := new(big.Float).SetPrec(ctx.prec)
		if err := n.body.eval(ctx, m); err != nil {
			return err
		}
		c := new(big.Float).SetPrec(ctx.prec).SetUint64(n.count)
		r.Add(r, m.Mul(m, c))
	default:
		panic("molarmass: invalid parse node " + n.kind.String())
	}
	return nil
}

// MolarMass is a shortcut to parse a formula and return its molar mass in
// grams per mole. Options may be any mix of ParseOption and ContextOption
// values.
func MolarMass(src string, opts ...Option) (*big.Float, error) {
	var (
		popts []ParseOption
		copts []ContextOption
	)
	for _, opt := range opts {
		switch opt := opt.(type) {
		case ParseOption:
			popts = append(popts, opt)
		case ContextOption:
			copts = append(copts, opt)
		case nil: // do nothing
		default:
			panic("molarmass: unknown option type")
		}
	}
	return Eval(strings.NewReader(src), popts, copts)
}

// Option is either a ParseOption or a ContextOption.
type Option interface{}

// Eval is a shortcut to parse a formula from src and evaluate it.
func Eval(src io.RuneScanner, popts []ParseOption, copts []ContextOption) (*big.Float, error) {
	f, err := Parse(src, popts...)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(copts...)
	r := ctx.Eval(f)
	return r, ctx.Err()
}

// Mass is a shortcut to compute the molar mass of a formula as a float64,
// using the standard table.
func Mass(src string) (float64, error) {
	r, err := MolarMass(src)
	if err != nil {
		return 0, err
	}
	m, _ := r.Float64()
	return m, nil
}

// WeightError is an error indicating that a mass table holds a weight that is
// not a positive finite decimal number.
type WeightError struct {
	// Symbol is the element whose weight is invalid.
	Symbol string
	// Weight is the text of the weight.
	Weight string
}

func (err *WeightError) Error() string {
	return "invalid atomic weight " + strconv.Quote(err.Weight) + " for " + strconv.Quote(err.Symbol)
}
