package molarmass

import "math"

// DefaultMaxCount is the largest count accepted unless MaxCount says
// otherwise.
const DefaultMaxCount = math.MaxUint32

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	tableopt struct {
		t Table
	}
	maxopt uint64
)

// parsectx holds general data for parsing.
type parsectx struct {
	// table resolves symbols to elements.
	table Table
	// max is the largest count allowed.
	max uint64
}

// WithTable sets the table used to resolve element symbols. The default is
// Standard.
func WithTable(t Table) ParseOption {
	return tableopt{t}
}

func (o tableopt) parseOption(p parsectx) parsectx {
	p.table = o.t
	return p
}

// MaxCount sets the largest count the parser accepts after a symbol or group.
// Counts of zero are always rejected. Passing 0 restores DefaultMaxCount.
func MaxCount(n uint64) ParseOption {
	return maxopt(n)
}

func (o maxopt) parseOption(p parsectx) parsectx {
	p.max = uint64(o)
	return p
}

func newparsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	if p.table == nil {
		p.table = Standard
	}
	if p.max == 0 {
		p.max = DefaultMaxCount
	}
	return p
}
