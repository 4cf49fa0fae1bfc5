package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/molarmass"
)

// writeBreakdown renders the per-element composition of a formula.
func writeBreakdown(w io.Writer, comp []molarmass.Component) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Element", "Count", "Mass (g/mol)", "Mass %"})
	tw.SetAutoFormatHeaders(false)
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, c := range comp {
		pct, _ := c.Fraction.Float64()
		tw.Append([]string{
			c.Element.Symbol,
			c.Count.String(),
			fmt.Sprintf("%.3f", c.Mass),
			fmt.Sprintf("%.2f", 100*pct),
		})
	}
	tw.Render()
}

func newElementsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "elements [symbol...]",
		Short: "List atomic weights in the mass table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeElements(cmd.OutOrStdout(), opts.table, args)
		},
	}
}

// writeElements renders the table entries for symbols, or every standard
// element if there are none.
func writeElements(w io.Writer, t molarmass.Table, symbols []string) error {
	var els []molarmass.Element
	if len(symbols) == 0 {
		for _, el := range molarmass.Elements() {
			// Overrides from --table replace standard entries.
			if el, ok := t.Lookup(el.Symbol); ok {
				els = append(els, el)
			}
		}
	}
	for _, s := range symbols {
		el, ok := t.Lookup(s)
		if !ok {
			return errors.Errorf("unknown atomic symbol %q", s)
		}
		els = append(els, el)
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Number", "Symbol", "Name", "Weight"})
	tw.SetAutoFormatHeaders(false)
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, el := range els {
		num := ""
		if el.Number > 0 {
			num = strconv.Itoa(el.Number)
		}
		tw.Append([]string{num, el.Symbol, el.Name, el.Weight})
	}
	tw.Render()
	return nil
}

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of formulae",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := molarmass.Grammar()
			if err != nil {
				return err
			}
			log.Debugf("grammar has %d productions", len(g))
			_, err = io.WriteString(cmd.OutOrStdout(), molarmass.GrammarText())
			return err
		},
	}
}
