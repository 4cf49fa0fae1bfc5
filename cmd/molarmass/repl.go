package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/molarmass"
)

const (
	historyFile = ".molarmass_history"
	promptMain  = "mm> "
	promptCont  = "... "
	replHelp    = `Enter a formula to compute its molar mass.
  :breakdown  toggle the per-element breakdown
  :hill       toggle printing the Hill formula
  :quit       exit`
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Compute molar masses interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runRepl(opts *options, stdout, stderr io.Writer) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			ln.Close()
			os.Exit(130)
		}
	}()

	fmt.Fprintln(stdout, `molarmass: type a formula, or :help`)
	r := repl{opts: opts, stdout: stdout, stderr: stderr}
	for {
		src, ok := readFormula(ln, opts)
		if !ok {
			fmt.Fprintln(stdout)
			return nil
		}
		if r.line(src) {
			return nil
		}
		if strings.TrimSpace(src) != "" {
			ln.AppendHistory(src)
		}
	}
}

// readFormula reads one formula, prompting for more while brackets are left
// open. ok is false at the end of input.
func readFormula(ln *liner.State, opts *options) (src string, ok bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Aborted with ^C; discard the partial formula.
			return "", true
		}
		b.WriteString(strings.TrimSpace(line))
		if !unclosed(b.String(), opts) {
			return b.String(), true
		}
	}
}

// unclosed reports whether src fails to parse only because a bracket is
// still open.
func unclosed(src string, opts *options) bool {
	if strings.HasPrefix(src, ":") {
		return false
	}
	_, err := molarmass.ParseString(src, opts.parseOptions()...)
	var be *molarmass.BracketError
	return errors.As(err, &be)
}

// repl evaluates one input line at a time.
type repl struct {
	opts      *options
	stdout    io.Writer
	stderr    io.Writer
	breakdown bool
	hill      bool
}

// line handles a line of input and reports whether the session should end.
func (r *repl) line(src string) (quit bool) {
	src = strings.TrimSpace(src)
	if strings.HasPrefix(src, ":") {
		switch strings.ToLower(src) {
		case ":quit", ":q", ":exit":
			return true
		case ":help":
			fmt.Fprintln(r.stdout, replHelp)
		case ":breakdown":
			r.breakdown = !r.breakdown
			fmt.Fprintf(r.stdout, "breakdown %s\n", onoff(r.breakdown))
		case ":hill":
			r.hill = !r.hill
			fmt.Fprintf(r.stdout, "hill formula %s\n", onoff(r.hill))
		default:
			fmt.Fprintln(r.stdout, "unknown command. Type :help for commands.")
		}
		return false
	}
	if src == "" {
		return false
	}
	f, ctx, err := r.opts.eval(src)
	if err != nil {
		fmt.Fprintln(r.stderr, red(err.Error()))
		return false
	}
	if r.hill {
		h, err := ctx.Hill(f)
		if err != nil {
			fmt.Fprintln(r.stderr, red(err.Error()))
			return false
		}
		fmt.Fprintf(r.stdout, "%s  ", h)
	}
	fmt.Fprintf(r.stdout, "%.3f g/mol\n", ctx.Result())
	if r.breakdown {
		comp, err := ctx.Composition(f)
		if err != nil {
			fmt.Fprintln(r.stderr, red(err.Error()))
			return false
		}
		writeBreakdown(r.stdout, comp)
	}
	return false
}

func onoff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
