package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/width"

	sc "github.com/zephyrtronium/supercalc"
)

const (
	promptMain = "sc> "
	promptCont = "... "
)

func main() {
	log.SetFlags(0)
	var (
		inname, hist       string
		with               [][2]string
		echo, pretty, fold bool
		prec, depth        int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", 64, "precision of transcendental functions in bits")
	flag.IntVar(&depth, "depth", 1024, "maximum function call depth")
	flag.BoolVar(&echo, "echo", false, "print parsed statements and their free variables")
	flag.BoolVar(&pretty, "pretty", false, "print results with mathematical symbols")
	flag.BoolVar(&fold, "fold", false, "fold fullwidth input characters to their narrow forms")
	flag.StringVar(&hist, "history", defaultHistory(), "interactive history file (empty to disable)")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if depth <= 0 {
		log.Fatalf("depth (%d) must be positive", depth)
	}

	ctx := sc.NewContext(sc.Prec(uint(prec)), sc.MaxDepth(depth))
	for _, d := range with {
		nm, vl := d[0], d[1]
		r, err := sc.EvalString(vl, sc.Prec(uint(prec)))
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		if err := ctx.SetGlobal(nm, r); err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
	}

	r := runner{ctx: ctx, echo: echo, pretty: pretty, fold: fold}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			r.exec(arg, nil)
		}
		if inname == "" {
			return
		}
	}
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r.scan(f)
	case interactive():
		r.repl(hist)
	default:
		r.scan(os.Stdin)
	}
}

// runner executes statements against a single context.
type runner struct {
	ctx                *sc.Context
	echo, pretty, fold bool
}

// exec runs one statement. more supplies continuation lines for statements
// left inside brackets.
func (r *runner) exec(line string, more func() (string, bool)) {
	if r.fold {
		line = width.Fold.String(line)
	}
	var opts []sc.ParseOption
	if more != nil {
		opts = append(opts, sc.Continue(func() (string, bool) {
			s, ok := more()
			if r.fold {
				s = width.Fold.String(s)
			}
			return s, ok
		}))
	}
	stmt, err := sc.ParseStatement(line, opts...)
	if err != nil {
		r.report(err)
		return
	}
	if r.echo {
		if v := stmt.Expr(); v != nil {
			fmt.Printf("%v : %v\n", stmt, v.Vars())
		} else {
			fmt.Println(stmt)
		}
	}
	v, err := r.ctx.Exec(stmt)
	if err != nil {
		r.report(err)
		return
	}
	if v != nil {
		fmt.Println(r.format(v))
	}
}

func (r *runner) format(v *sc.Value) string {
	s := v.String()
	if r.pretty {
		s = v.Pretty()
	}
	if v.Kind() == sc.KindFrac {
		x, _ := v.Float64()
		s += " (" + sc.FormatReal(x) + ")"
	}
	return s
}

// report prints a recoverable error or exits on a fatal one.
func (r *runner) report(err error) {
	var e *sc.Error
	if errors.As(err, &e) {
		if e.Kind == sc.ErrIgnore {
			return
		}
		if !e.Recoverable() {
			log.Fatal(e)
		}
	}
	fmt.Fprintln(os.Stderr, err)
}

// scan runs each line of a non-interactive input.
func (r *runner) scan(in io.Reader) {
	s := bufio.NewScanner(in)
	more := func() (string, bool) {
		if !s.Scan() {
			return "", false
		}
		return s.Text(), true
	}
	for s.Scan() {
		r.exec(s.Text(), more)
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// repl runs an interactive session with line editing.
func (r *runner) repl(hist string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}
	var entry []string
	more := func() (string, bool) {
		s, err := ln.Prompt(promptCont)
		if err != nil {
			return "", false
		}
		entry = append(entry, s)
		return s, true
	}
	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return
		}
		entry = append(entry[:0], line)
		r.exec(line, more)
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(strings.Join(entry, " "))
		}
	}
}

func interactive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0 && liner.TerminalSupported()
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".supercalc_history")
}
