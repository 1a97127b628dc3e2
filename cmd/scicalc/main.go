package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strings"

	"fortio.org/log"

	"github.com/zephyrtronium/scicalc"
)

func main() {
	var (
		inname, verb, cfgname    string
		nl, echo, inter, verbose bool
		prec                     uint
		depth                    int
		ans                      float64
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default %g)")
	flag.StringVar(&cfgname, "config", "", "YAML configuration file")
	flag.UintVar(&prec, "p", 0, "precision of exp, ln, and log in bits (default 64)")
	flag.IntVar(&depth, "depth", 0, "maximum nesting depth")
	flag.Float64Var(&ans, "ans", 0, "initial value of Ans")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print rewritten expressions and parse trees")
	flag.BoolVar(&inter, "i", false, "interactive mode")
	flag.BoolVar(&verbose, "v", false, "log each function call as it is rewritten")
	flag.Parse()

	cfg := scicalc.DefaultConfig()
	if cfgname != "" {
		f, err := os.Open(cfgname)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg, err = scicalc.LoadConfig(f)
		f.Close()
		if err != nil {
			log.Fatalf("reading %s: %v", cfgname, err)
		}
	}
	lvl, ok := levels[strings.ToLower(cfg.LogLevel)]
	if !ok {
		log.Fatalf("unknown log level %q", cfg.LogLevel)
	}
	if verbose {
		lvl = log.Verbose
	}
	log.SetLogLevel(lvl)

	// Flags override the configuration file.
	opts := cfg.Options()
	if prec != 0 {
		opts = append(opts, scicalc.Prec(prec))
	}
	if depth != 0 {
		opts = append(opts, scicalc.MaxDepth(depth))
	}
	if verb == "" {
		verb = cfg.Format
	}
	sh := &shell{
		ctx:  scicalc.NewContext(opts...),
		ans:  ans,
		verb: verb,
		echo: echo,
		out:  os.Stdout,
	}

	if inter || (inname == "" && flag.NArg() == 0 && isTerminal(os.Stdin)) {
		os.Exit(sh.repl())
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if f != nil {
		in, err := readExprs(f, nl)
		if err != nil {
			log.Fatalf("%v", err)
		}
		srcs = append(srcs, in...)
	}
	srcs = append(srcs, flag.Args()...)

	code := 0
	for _, src := range srcs {
		if !sh.run(src) {
			code = 1
		}
	}
	os.Exit(code)
}

var levels = map[string]log.Level{
	"debug":    log.Debug,
	"verbose":  log.Verbose,
	"info":     log.Info,
	"warning":  log.Warning,
	"error":    log.Error,
	"critical": log.Critical,
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

// readExprs reads the whole input as one expression, or each non-blank line
// as its own expression if nl is set.
func readExprs(r io.Reader, nl bool) ([]string, error) {
	if !nl {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimSpace(string(b))}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			srcs = append(srcs, s)
		}
	}
	return srcs, sc.Err()
}

func isTerminal(f *os.File) bool {
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
