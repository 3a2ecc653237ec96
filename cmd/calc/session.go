package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/bejker123/calc"
)

// session evaluates lines against one variable table and prints the results.
type session struct {
	vars *calc.Vars
	// float and debug are options applied to every line in addition to the
	// line's own prefix.
	float bool
	debug bool
	// echo prints the parse tree before each result.
	echo bool
	out  io.Writer
}

// eval evaluates a line and writes its result or error. Blank lines are
// ignored. Returns whether the line succeeded.
func (s *session) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	r, err := calc.EvalLine(s.prefix(line), s.vars)
	if r.Options.Debug && len(r.Tokens) != 0 {
		fmt.Fprintln(s.out, calc.FormatDebug(r.Tokens))
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	if s.echo || r.Options.Debug {
		fmt.Fprintf(s.out, "%v : ", r.Expr)
	}
	fmt.Fprintf(s.out, "=%s\n", r.Format())
	return true
}

// prefix adds the session's options to the option prefix of a line.
func (s *session) prefix(line string) string {
	var p string
	if s.float {
		p += "f"
	}
	if s.debug {
		p += "d"
	}
	if p == "" {
		return line
	}
	if strings.IndexByte(line, calc.OptionSep) < 0 {
		return p + string(calc.OptionSep) + line
	}
	return p + line
}

// define binds a name to the value of an expression.
func (s *session) define(name, expr string) error {
	toks := calc.Tokenize(name)
	if len(toks) != 1 || toks[0].Kind != calc.TokenLiteral {
		return fmt.Errorf("%q is not a variable name", name)
	}
	r, err := calc.EvalString(expr, s.vars)
	if err != nil {
		return err
	}
	s.vars.Set(name, r)
	return nil
}

// batch evaluates each line of in. Returns the number of lines that failed.
func (s *session) batch(in io.Reader) (int, error) {
	failed := 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !s.eval(sc.Text()) {
			failed++
		}
	}
	return failed, sc.Err()
}

// repl reads lines interactively until end of input. History is loaded from
// and saved to the named file, keeping at most size entries if size is
// positive.
func (s *session) repl(history string, size int) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if history != "" {
		if err := loadHistory(ln.ReadHistory, history); err != nil {
			log.Print(err)
		}
		defer saveHistory(ln, history, size)
	}
	for {
		line, err := ln.Prompt(">")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		s.eval(line)
	}
}

// loadHistory passes a history file to read. A missing file is not an error.
func loadHistory(read func(io.Reader) (int, error), name string) error {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading history: %w", err)
	}
	defer f.Close()
	if _, err := read(f); err != nil {
		return fmt.Errorf("reading history from %s: %w", name, err)
	}
	return nil
}

func saveHistory(ln *liner.State, name string, size int) {
	if err := writeHistory(ln.WriteHistory, name, size); err != nil {
		log.Print(err)
	}
}

// writeHistory saves the last size history entries written by write to a
// file.
func writeHistory(write func(io.Writer) (int, error), name string, size int) error {
	var b bytes.Buffer
	if _, err := write(&b); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	if err := os.WriteFile(name, []byte(lastLines(b.String(), size)), 0o600); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// lastLines keeps the last n newline-terminated lines of s. If n is not
// positive, s is returned unchanged.
func lastLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "")
}
