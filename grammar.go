package molarmass

import (
	_ "embed"
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of the formula grammar.
const GrammarStart = "Formula"

//go:embed formula.ebnf
var grammarsrc string

// GrammarText returns the grammar accepted by Parse in the EBNF notation of
// golang.org/x/exp/ebnf.
func GrammarText() string {
	return grammarsrc
}

// Grammar parses and verifies the grammar accepted by Parse.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("formula.ebnf", strings.NewReader(grammarsrc))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, err
	}
	return g, nil
}
