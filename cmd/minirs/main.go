package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/mattn/minirs"
	"github.com/peterh/liner"
)

const (
	appName     = "minirs"
	historyFile = ".minirs_history"
	promptMain  = "> "
	promptCont  = ". "
)

var errColor = color.New(color.FgRed)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-c config] [-dhlt] [-e sample | file]\n", appName)
}

func report(err error) {
	errColor.Fprintln(os.Stderr, err)
}

func newInterpreter(cfg *Config) *minirs.Interpreter {
	in := minirs.NewInterpreter()
	if cfg.Trace {
		in.Logger = log.New(os.Stderr, appName+": ", 0)
	}
	return in
}

func run(in *minirs.Interpreter, cfg *Config, src string) int {
	prog, err := in.Parse(src)
	if err != nil {
		report(err)
		return 1
	}
	if cfg.Dump {
		pretty.Println(prog)
	}
	status, err := in.Execute(prog)
	if err != nil {
		report(err)
	}
	return status
}

func printVars(in *minirs.Interpreter) {
	for _, name := range in.Memory.Names() {
		v, err := in.Value(name)
		if err != nil {
			report(err)
			continue
		}
		fmt.Printf("%s = %d\n", name, v)
	}
}

// incomplete reports whether src only failed to parse because it ended early.
func incomplete(src string) bool {
	_, err := minirs.Parse(src)
	var se *minirs.SyntaxError
	return errors.As(err, &se) && se.Pos >= len(src)
}

func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !incomplete(src) {
			return src, true
		}
	}
}

func repl(in *minirs.Interpreter, cfg *Config) int {
	fmt.Printf("%s REPL\nEach entry is a program with a main function. Type :vars to list bindings, :quit to exit.\n", appName)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist := cfg.historyPath(); hist != "" {
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

	for {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		switch cmd := strings.TrimSpace(src); {
		case cmd == "":
			continue
		case cmd == ":quit":
			return 0
		case cmd == ":vars":
			printVars(in)
			continue
		case strings.HasPrefix(cmd, ":"):
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		run(in, cfg, src)
	}
}

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "c:de:hlt")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt.Option == 'c' {
			cfg, err = loadConfig(opt.Value)
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	var sample string
	var list bool
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			cfg.Dump = true
		case 'e':
			sample = opt.Value
		case 'h':
			usage()
			os.Exit(0)
		case 'l':
			list = true
		case 't':
			cfg.Trace = true
		}
	}
	cfg.applyColor()

	args := os.Args[optind:]
	if len(args) > 1 || (len(args) == 1 && sample != "") {
		usage()
		os.Exit(2)
	}

	if list {
		names, err := minirs.Samples()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	in := newInterpreter(cfg)

	var src string
	switch {
	case sample != "":
		src, err = minirs.LoadSample(sample)
		if err != nil {
			log.Fatal(err)
		}
	case len(args) == 1:
		b, err := ioutil.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		src = string(b)
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		os.Exit(repl(in, cfg))
	default:
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		src = string(b)
	}
	os.Exit(run(in, cfg, src))
}
