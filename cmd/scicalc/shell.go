package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"fortio.org/log"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/scicalc"
)

const (
	historyFile = ".scicalc_history"
	prompt      = "> "
	help        = `Type an expression, e.g. sqrt(16)+50% or prime(97), to evaluate it.
Ans is the last answer. Commands:
  :ans   show the last answer
  :neg   negate the last answer
  :pct   divide the last answer by 100
  :help  show this message
  :quit  exit`
)

// shell evaluates lines of input, carrying the last answer between them.
type shell struct {
	ctx  *scicalc.Context
	ans  float64
	verb string
	echo bool
	out  io.Writer
}

// eval evaluates one line and returns the text to display. Every result
// becomes the new last answer; booleans count as 1 or 0 and print as true or
// false.
func (sh *shell) eval(line string) (string, error) {
	r, err := sh.ctx.Eval(line, sh.ans)
	if err != nil {
		return "", err
	}
	if sh.echo {
		src := strings.ReplaceAll(line, scicalc.AnsPlaceholder, "("+strconv.FormatFloat(sh.ans, 'f', -1, 64)+")")
		s, err := sh.ctx.Rewrite(src)
		if err != nil {
			return "", err
		}
		e, err := scicalc.Parse(s)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(sh.out, "%s\n%v\n", s, e)
	}
	sh.ans = r.X
	if r.Bool {
		return r.String(), nil
	}
	return fmt.Sprintf(sh.verb, r), nil
}

// run evaluates a line and prints the result or error. It returns false if
// there was an error.
func (sh *shell) run(line string) bool {
	s, err := sh.eval(line)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		log.LogVf("%q: %#v", line, err)
		return false
	}
	fmt.Fprintln(sh.out, s)
	return true
}

// command runs a shell command like :neg. It returns true if the shell should
// exit.
func (sh *shell) command(cmd string) bool {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case ":quit", ":q", ":exit":
		return true
	case ":ans":
	case ":neg":
		sh.ans = -sh.ans
	case ":pct":
		sh.ans /= 100
	case ":help", ":?":
		fmt.Fprintln(sh.out, help)
		return false
	default:
		fmt.Fprintf(sh.out, "unknown command %s. Type :help for help.\n", cmd)
		return false
	}
	fmt.Fprintf(sh.out, sh.verb+"\n", scicalc.Result{X: sh.ans})
	return false
}

// historyPath returns the path of the history file, or "" if there is no home
// directory to keep it in.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("not keeping history: %v", err)
		return ""
	}
	return filepath.Join(home, historyFile)
}

// historyWriter is the part of a liner.State that saves history.
type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// saveHistory writes history to path. It does nothing if path is empty.
func saveHistory(h historyWriter, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Warnf("saving history: %v", err)
		return
	}
	if _, err := h.WriteHistory(f); err != nil {
		log.Warnf("saving history: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Warnf("saving history: %v", err)
	}
}

// repl runs an interactive session on the terminal and returns the exit code.
func (sh *shell) repl() int {
	histPath := historyPath()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	var once sync.Once
	save := func() { once.Do(func() { saveHistory(ln, histPath) }) }
	defer save()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		save()
		ln.Close()
		os.Exit(130)
	}()

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(sh.out)
			return 0
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			log.Errf("reading input: %v", err)
			return 1
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(line, ":") {
			if sh.command(line) {
				return 0
			}
			continue
		}
		sh.run(line)
	}
}
