package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/zephyrtronium/molarmass"
)

var log = commonlog.GetLogger("molarmass")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fmt.Fprintln(stderr, red(err.Error()))
	return 1
}

var red = color.New(color.FgRed).SprintFunc()

// options are the flags shared by every subcommand.
type options struct {
	prec      uint
	tablePath string
	maxCount  uint64
	breakdown bool
	noColor   bool
	verbose   int

	// table is loaded from tablePath before any command runs.
	table molarmass.Table
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "molarmass <formula>",
		Short:         "Compute the molar mass of a chemical formula",
		Example:       "  molarmass 'Fe(NO3)3'\n  molarmass --breakdown '(NH4)2SO4'",
		Args:          exactlyOneFormula,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.calc(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.UintVarP(&opts.prec, "prec", "p", 64, "precision of calculations in bits")
	flags.StringVar(&opts.tablePath, "table", "", "YAML file of atomic weights to use over the standard table")
	flags.Uint64Var(&opts.maxCount, "max-count", molarmass.DefaultMaxCount, "largest count accepted after a symbol or group")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored error messages")
	flags.CountVarP(&opts.verbose, "verbose", "v", "log more details (repeatable)")
	cmd.Flags().BoolVarP(&opts.breakdown, "breakdown", "b", false, "print the mass contributed by each element")

	cmd.AddCommand(newReplCmd(&opts))
	cmd.AddCommand(newElementsCmd(&opts))
	cmd.AddCommand(newGrammarCmd())
	return cmd
}

// usageError is an error in the shape of the command line.
type usageError struct {
	use string
}

func (err *usageError) Error() string {
	return "usage: " + err.use
}

func exactlyOneFormula(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &usageError{use: cmd.Use}
	}
	return nil
}

func (o *options) setup() error {
	commonlog.Configure(o.verbose, nil)
	if o.noColor {
		color.NoColor = true
	}
	if o.prec == 0 {
		return errors.New("precision must be positive")
	}
	o.table = molarmass.Standard
	if o.tablePath == "" {
		return nil
	}
	f, err := os.Open(o.tablePath)
	if err != nil {
		return errors.Wrap(err, "opening mass table")
	}
	defer f.Close()
	t, err := molarmass.LoadTable(f, molarmass.Standard)
	if err != nil {
		return errors.Wrapf(err, "loading mass table %s", o.tablePath)
	}
	if l, ok := t.(interface{ Len() int }); ok {
		log.Infof("loaded %d atomic weights from %s", l.Len(), o.tablePath)
	}
	o.table = t
	return nil
}

func (o *options) parseOptions() []molarmass.ParseOption {
	return []molarmass.ParseOption{molarmass.WithTable(o.table), molarmass.MaxCount(o.maxCount)}
}

// eval parses and evaluates one formula.
func (o *options) eval(formula string) (*molarmass.Formula, *molarmass.Context, error) {
	start := time.Now()
	f, err := molarmass.Parse(strings.NewReader(formula), o.parseOptions()...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error parsing formula %q", formula)
	}
	ctx := molarmass.NewContext(molarmass.Prec(o.prec))
	if ctx.Eval(f) == nil {
		return nil, nil, errors.Wrapf(ctx.Err(), "error evaluating formula %q", formula)
	}
	log.Debugf("evaluated %s in %v", f, time.Since(start))
	return f, ctx, nil
}

func (o *options) calc(w io.Writer, formula string) error {
	f, ctx, err := o.eval(formula)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%.3f g/mol\n", ctx.Result())
	if !o.breakdown {
		return nil
	}
	comp, err := ctx.Composition(f)
	if err != nil {
		return errors.Wrap(err, "breaking down formula")
	}
	writeBreakdown(w, comp)
	return nil
}
