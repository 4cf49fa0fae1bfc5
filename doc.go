// Package molarmass computes molar masses of chemical formulae.
//
// A formula is a sequence of element symbols, each optionally followed by a
// count, like "H2O" or "KIO3". Parenthesized groups act like atoms, so
// "Fe(NO3)3" has three nitrate groups and "(NH4)2SO4" has two ammonium groups.
// Groups nest to any depth. Symbols are case-sensitive: "Co" is cobalt, and
// "CO" is carbon monoxide.
//
// Parse a formula once and evaluate it with a Context to choose the precision
// of the result, or use MolarMass for one-off calculations. The standard mass
// table covers elements 1 through 103; LoadTable layers other weights over it.
//
package molarmass
