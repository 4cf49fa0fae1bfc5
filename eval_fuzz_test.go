//go:build go1.18
// +build go1.18

package molarmass_test

import (
	"testing"

	"github.com/zephyrtronium/molarmass"
)

func FuzzMolarMass(f *testing.F) {
	f.Add("KIO3")
	f.Add("Na2(CH3(CH2)2CH3)2")
	f.Add(")FeH3")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := molarmass.MolarMass(s)
		if err == nil && r.Sign() < 0 {
			t.Errorf("%q has negative mass %g", s, r)
		}
	})
}
