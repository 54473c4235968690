package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"cmini/internal"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

const usage = "Usage: cmini [flags] /path/to/source.c [int args...]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type driver struct {
	stdout io.Writer
	stderr io.Writer
	colors *color.Color
	log    *logrus.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("cmini", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	printTokens := flags.Bool("tokens", false, "print the token stream and exit")
	printAst := flags.Bool("ast", false, "print the syntax tree and exit")
	configPath := flags.String("config", "", "path to a YAML configuration file")
	trace := flags.Bool("trace", false, "log allocations and calls")
	dump := flags.Bool("dump", false, "print the final store to stderr")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return 2
	}

	cfg := internal.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = internal.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if *trace {
		cfg.LogLevel = logrus.DebugLevel.String()
	}

	d := &driver{
		stdout: stdout,
		stderr: stderr,
		colors: color.New(),
	}
	d.colors.SetOutput(stderr)
	if !cfg.Color {
		d.colors.Disable()
	}
	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		d.report(err)
		return 1
	}
	d.log = logger

	absPath, err := filepath.Abs(flags.Arg(0))
	if err != nil {
		d.report(err)
		return 1
	}
	b, err := os.ReadFile(absPath)
	if err != nil {
		d.report(err)
		return 1
	}
	source := string(b)

	if *printTokens {
		return d.tokens(source)
	}

	mainArgs, err := parseArgs(flags.Args()[1:])
	if err != nil {
		d.report(err)
		return 2
	}

	program, err := internal.Parse(source)
	if err != nil {
		d.report(err)
		return 1
	}

	if *printAst {
		if err := internal.PrintTree(stdout, program); err != nil {
			d.report(err)
			return 1
		}
		return 0
	}

	d.log.WithFields(logrus.Fields{
		"file": absPath,
		"args": mainArgs,
	}).Info("run")

	final, err := internal.Run(program, mainArgs, cfg.Options(stdout, logger))
	if err != nil {
		d.report(err)
		return 1
	}

	d.log.WithField("top", final.Top()).Info("done")

	if *dump {
		if err := final.Dump(stderr); err != nil {
			d.report(err)
			return 1
		}
	}
	return 0
}

func (d *driver) tokens(source string) int {
	lines, err := internal.Tokens(source)
	for _, line := range lines {
		fmt.Fprintln(d.stdout, line)
	}
	if err != nil {
		d.report(err)
		return 1
	}
	return 0
}

func (d *driver) report(err error) {
	var runErr *internal.RuntimeError
	var parseErrs internal.ParseErrors
	switch {
	case errors.As(err, &runErr):
		fmt.Fprintln(d.stderr, d.colors.Red(runErr.Error()))
	case errors.As(err, &parseErrs):
		for _, pe := range parseErrs {
			fmt.Fprintln(d.stderr, d.colors.Yellow(pe.Error()))
		}
	default:
		fmt.Fprintln(d.stderr, d.colors.Red(err.Error()))
	}
}

func parseArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = n
	}
	return out, nil
}
