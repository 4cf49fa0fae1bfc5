package molarmass_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/molarmass"
)

func TestComposition(t *testing.T) {
	type share struct {
		Symbol string
		Count  string
	}
	cases := []struct {
		name string
		src  string
		want []share
	}{
		{"empty", "", []share{}},
		{"water", "H2O", []share{{"H", "2"}, {"O", "1"}}},
		{"acetic", "HC2H3O2", []share{{"C", "2"}, {"H", "4"}, {"O", "2"}}},
		{"nocarbon", "(NH4)2SO4", []share{{"H", "8"}, {"N", "2"}, {"O", "4"}, {"S", "1"}}},
		{"nested", "(Ag(Pb(H2)2)2)2SO4", []share{{"Ag", "2"}, {"H", "16"}, {"O", "4"}, {"Pb", "4"}, {"S", "1"}}},
		{"butane", "Na2(CH3(CH2)2CH3)2", []share{{"C", "8"}, {"H", "20"}, {"Na", "2"}}},
		{"bighill", "ClCH", []share{{"C", "1"}, {"H", "1"}, {"Cl", "1"}}},
		{"overflow", "(((H4294967295)4294967295)4294967295)4294967295", []share{{"H", "340282366604025813516997721482669850625"}}},
	}
	ctx := molarmass.NewContext()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := molarmass.ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			comp, err := ctx.Composition(f)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			got := make([]share, 0, len(comp))
			sum := 0.0
			for _, s := range comp {
				got = append(got, share{s.Element.Symbol, s.Count.String()})
				x, _ := s.Fraction.Float64()
				sum += x
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("%q: wrong composition (-want +got):\n%s", c.src, diff)
			}
			if len(comp) > 0 && math.Abs(sum-1) > 1e-9 {
				t.Errorf("%q: fractions sum to %g", c.src, sum)
			}
		})
	}
}

func TestCompositionMass(t *testing.T) {
	f, err := molarmass.ParseString("Fe(NO3)3")
	if err != nil {
		t.Fatal(err)
	}
	ctx := molarmass.NewContext()
	total := ctx.Eval(f)
	comp, err := ctx.Composition(f)
	if err != nil {
		t.Fatal(err)
	}
	sum := ctx.Eval(f).SetInt64(0)
	for _, c := range comp {
		sum.Add(sum, c.Mass)
	}
	a, _ := total.Float64()
	b, _ := sum.Float64()
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("components sum to %g, total is %g", b, a)
	}
}

func TestHill(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"HC2H3O2", "C2H4O2"},
		{"CH3(CH2)2CH3", "C4H10"},
		{"Fe(NO3)3", "FeN3O9"},
		{"OH2", "H2O"},
		{"ClNa", "ClNa"},
	}
	ctx := molarmass.NewContext()
	for _, c := range cases {
		f, err := molarmass.ParseString(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		got, err := ctx.Hill(f)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
}
