package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/bejker123/calc"
)

func main() {
	log.SetFlags(0)
	var (
		cfgname, inname, histname string
		with                      [][2]string
		float, debug, echo        bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&cfgname, "config", "", "configuration file (default "+defaultConfig()+")")
	flag.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given and stdin is not a terminal)")
	flag.StringVar(&histname, "history", "", "interactive history file (default ~/.calc_history)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&float, "f", false, "print results as decimal numbers")
	flag.BoolVar(&debug, "d", false, "print the tokens and parse tree of each line")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	required := cfgname != ""
	if !required {
		cfgname = defaultConfig()
	}
	cfg, err := loadConfig(cfgname, required)
	if err != nil {
		log.Fatal(err)
	}
	defs, err := cfg.bindings()
	if err != nil {
		log.Fatalf("%s: %v", cfgname, err)
	}

	s := &session{
		vars:  calc.NewVars(),
		float: float || cfg.Float,
		debug: debug || cfg.Debug,
		echo:  echo,
		out:   os.Stdout,
	}
	for _, d := range append(defs, with...) {
		if err := s.define(d[0], d[1]); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}

	std := flag.NArg() == 0 && !term.IsTerminal(int(os.Stdin.Fd()))
	in, err := infile(inname, std)
	if err != nil {
		log.Fatal(err)
	}
	if in == nil && flag.NArg() == 0 {
		hist := histname
		if hist == "" {
			hist = cfg.History
		}
		if hist == "" {
			hist = expandHome("~/.calc_history")
		}
		if err := s.repl(hist, cfg.HistorySize); err != nil {
			log.Fatal(err)
		}
		return
	}

	failed := 0
	if in != nil {
		n, err := s.batch(in)
		if err != nil {
			log.Fatal(err)
		}
		failed += n
	}
	for _, arg := range flag.Args() {
		if !s.eval(arg) {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
