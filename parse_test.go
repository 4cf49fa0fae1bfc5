package molarmass

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func el(symbol string) Element {
	e, ok := Standard.Lookup(symbol)
	if !ok {
		panic("no element " + symbol)
	}
	return e
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"empty", "", ""},
		{"atom", "H", "H"},
		{"two", "Na", "Na"},
		{"adjacent", "NaCl", "NaCl"},
		{"count", "H2O", "H2O"},
		{"one", "H1", "H"},
		{"zeros", "Na007Cl", "Na7Cl"},
		{"group", "Fe(NO3)3", "Fe(NO3)3"},
		{"groupone", "(OH)1", "(OH)"},
		{"leading", "(NH4)2SO4", "(NH4)2SO4"},
		{"nested", "(Pb(H2)2)2", "(Pb(H2)2)2"},
		{"deep", "(Ag(Pb(H2)2)2)2SO4", "(Ag(Pb(H2)2)2)2SO4"},
		{"emptygroup", "()", "()"},
		{"emptygroups", "(())3", "(())3"},
		{"tail", "Na2(CH3(CH2)2CH3)2", "Na2(CH3(CH2)2CH3)2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			if s := a.String(); s != c.b {
				t.Errorf("%q formats as %q, want %q", c.a, s, c.b)
			}
			b, err := ParseString(a.String())
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", c.a, a.String(), err)
			}
			if diff := cmp.Diff(a.n, b.n, cmp.AllowUnexported(node{}), cmp.Comparer(func(x, y int) bool { return true })); diff != "" {
				t.Errorf("%q and %q parse differently (-a +b):\n%s", c.a, a, diff)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "empty",
			src:  "",
			n:    &node{kind: nodeFormula, count: 1},
		},
		{
			name: "nitrate",
			src:  "Fe(NO3)3",
			n: &node{
				kind:  nodeFormula,
				count: 1,
				units: []*node{
					{kind: nodeAtom, el: el("Fe"), count: 1, pos: 1},
					{
						kind:  nodeGroup,
						count: 3,
						pos:   3,
						body: &node{
							kind:  nodeFormula,
							count: 1,
							units: []*node{
								{kind: nodeAtom, el: el("N"), count: 1, pos: 4},
								{kind: nodeAtom, el: el("O"), count: 3, pos: 5},
							},
						},
					},
				},
			},
		},
		{
			name: "emptygroup",
			src:  "()2",
			n: &node{
				kind:  nodeFormula,
				count: 1,
				units: []*node{
					{kind: nodeGroup, count: 2, pos: 1, body: &node{kind: nodeFormula, count: 1}},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if diff := cmp.Diff(c.n, a.n, cmp.AllowUnexported(node{})); diff != "" {
				t.Errorf("mismatched tree for %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		pos  int
		res  []string
	}{
		{"lower", "he", new(SymbolError), 1, []string{`'h'`, `(?i)\bcapitali`}},
		{"emoji", "💯", new(SymbolError), 1, []string{`'💯'`, `(?i)\buppercase\b`}},
		{"space", "H2 O", new(SymbolError), 3, []string{`' '`}},
		{"stray", ")FeH3", new(SymbolError), 1, []string{`'\)'`, `(?i)\bno open bracket\b`}},
		{"strayend", "H2O)", new(SymbolError), 4, []string{`'\)'`, `(?i)\bno open bracket\b`}},
		{"ingroup", "BaC(l2)", new(SymbolError), 5, []string{`'l'`, `(?i)\bgroup\b`, `"l2"`}},
		{"unknown", "Cat", new(UnknownSymbolError), 1, []string{`(?i)\bunknown\b`, `"Cat"`}},
		{"unknownmid", "HAx", new(UnknownSymbolError), 2, []string{`"Ax"`}},
		{"unknownlast", "NaHST", new(UnknownSymbolError), 5, []string{`"T"`}},
		{"unknownfirst", "MKCl", new(UnknownSymbolError), 1, []string{`"M"`}},
		{"unknownafter", "Fe(NO3)3Q", new(UnknownSymbolError), 9, []string{`"Q"`}},
		{"unknowngroup", "(H2(Zz)3)", new(UnknownSymbolError), 5, []string{`"Zz"`, `(?i)\bgroup\b`}},
		{"unclosed", "Fe(OH", new(BracketError), 3, []string{`(?i)\bbracket\b`, `\(`}},
		{"unclosedmany", "Ba(((((OH)", new(BracketError), 3, []string{`(?i)\bbracket\b`}},
		{"unclosedfirst", "(Xx", new(BracketError), 1, []string{`(?i)\bbracket\b`}},
		{"zero", "H0", new(CountError), 2, []string{`\b0\b`, `(?i)\bcount\b`}},
		{"zerogroup", "(OH)00", new(CountError), 5, []string{`\b00\b`}},
		{"huge", "H4294967296", new(CountError), 2, []string{`\b4294967296\b`, `\b4294967295\b`}},
		{"overflow", "C99999999999999999999999", new(CountError), 2, []string{`\b99999999999999999999999\b`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v with no error", c.src, a)
			}
			if a != nil {
				t.Errorf("%q gave non-nil formula %v with error", c.src, a)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("%q gave wrong error type: want %T, got %T (%v)", c.src, c.err, err, err)
			}
			if p := err.(InputError).Pos(); p != c.pos {
				t.Errorf("%q gave error at %d, want %d", c.src, p, c.pos)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("%q doesn't match %q", msg, re)
				}
			}
		})
	}
}

func TestParseMaxCount(t *testing.T) {
	if _, err := ParseString("H10", MaxCount(10)); err != nil {
		t.Errorf("H10 failed with max 10: %v", err)
	}
	_, err := ParseString("H11", MaxCount(10))
	var ce *CountError
	if !errors.As(err, &ce) {
		t.Fatalf("want *CountError, got %#v", err)
	}
	if ce.Max != 10 {
		t.Errorf("error has max %d, want 10", ce.Max)
	}
	if _, err := ParseString("H4294967296", MaxCount(0), MaxCount(1<<40)); err != nil {
		t.Errorf("later MaxCount didn't apply: %v", err)
	}
	if _, err := ParseString("H4294967296", MaxCount(1<<40), MaxCount(0)); err == nil {
		t.Error("MaxCount(0) didn't restore the default")
	}
}

func TestParseTable(t *testing.T) {
	tbl := table{
		"D":  {Symbol: "D", Name: "Deuterium", Weight: "2.014"},
		"Xx": {Symbol: "Xx", Weight: "1"},
	}
	f, err := ParseString("D2(Xx)3", WithTable(tbl))
	if err != nil {
		t.Fatalf("parse with custom table: %v", err)
	}
	if got, want := f.Elements(), []string{"D", "Xx"}; !reflect.DeepEqual(got, want) {
		t.Errorf("wrong elements: want %q, got %q", want, got)
	}
	// The custom table replaces the standard one entirely.
	_, err = ParseString("H2O", WithTable(tbl))
	var ue *UnknownSymbolError
	if !errors.As(err, &ue) || ue.Symbol != "H" {
		t.Errorf("want unknown H, got %v", err)
	}
}

func TestElements(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"none", "", nil},
		{"emptygroup", "()", nil},
		{"one", "H2", []string{"H"}},
		{"sort", "ZnCuFeAgH", strings.Fields("Ag Cu Fe H Zn")},
		{"reuse", "HC2H3O2", []string{"C", "H", "O"}},
		{"groups", "(NH4)2SO4", []string{"H", "N", "O", "S"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q didn't parse: %v", c.src, err)
			}
			if got := f.Elements(); !reflect.DeepEqual(got, c.want) {
				t.Errorf("%q gave wrong elements:\n\twant %q\n\tgot  %q", c.src, c.want, got)
			}
		})
	}
}

type errScanner struct {
	*strings.Reader
	err error
}

func (s errScanner) ReadRune() (rune, int, error) {
	if s.Len() == 0 {
		return 0, 0, s.err
	}
	return s.Reader.ReadRune()
}

func TestParseReadError(t *testing.T) {
	boom := errors.New("boom")
	for _, src := range []string{"", "H2", "Fe(", "(OH)"} {
		_, err := Parse(errScanner{strings.NewReader(src), boom})
		if !errors.Is(err, boom) {
			t.Errorf("%q: want read error, got %v", src, err)
		}
	}
}
