package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options controls a single run
type Options struct {
	// Out receives program output; nil discards it
	Out io.Writer
	// Logger receives execution traces; nil discards them
	Logger *logrus.Logger
	// MaxStore caps the number of store slots, 0 means unlimited
	MaxStore int
	// Separator is written after every printi, a single space when nil
	Separator *string
}

type interpreter struct {
	functions map[string]*fnDecl
	globals   *env

	out       io.Writer
	separator string
	maxStore  int

	log   *logrus.Logger
	trace bool
}

func newInterpreter(program *Program, opts Options) *interpreter {
	in := &interpreter{
		functions: make(map[string]*fnDecl),
		out:       opts.Out,
		separator: " ",
		maxStore:  opts.MaxStore,
		log:       opts.Logger,
	}
	if in.out == nil {
		in.out = io.Discard
	}
	if opts.Separator != nil {
		in.separator = *opts.Separator
	}
	if in.log == nil {
		in.log = logrus.New()
		in.log.Out = io.Discard
	}
	in.trace = in.log.IsLevelEnabled(logrus.DebugLevel)

	for _, fn := range program.functions() {
		in.functions[fn.name.lexeme] = fn
	}
	return in
}

// Tokens scans source and returns one line per token
func Tokens(source string) ([]string, error) {
	state := newInterpreterState(source)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()

	out := make([]string, len(state.tokens))
	for i := range state.tokens {
		out[i] = state.tokens[i].String()
	}
	return out, state.err()
}

// Parse scans and parses source. On failure the error is a ParseErrors.
func Parse(source string) (*Program, error) {
	state := newInterpreterState(source)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	parser := &parser{
		state: state,
	}

	lexer.scan()

	if !state.Valid() {
		return nil, state.err()
	}

	parser.parse()

	if !state.Valid() {
		return nil, state.err()
	}

	return state.program, nil
}

// RunSource parses and runs source on a fresh interpreter instance
func RunSource(source string, args []int, opts Options) (*Store, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return Run(program, args, opts)
}

// Run allocates the program's globals, binds args to the parameters of main
// and executes it. The final store is returned for inspection. Any failure
// aborts the run and is returned as a *RuntimeError.
func Run(program *Program, args []int, opts Options) (final *Store, err error) {
	in := newInterpreter(program, opts)

	defer func() {
		if r := recover(); r != nil {
			runErr, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			in.log.WithError(runErr).Debug("run aborted")
			final, err = nil, runErr
		}
	}()

	st := newStore(in.maxStore)
	globals := newEnv(0)
	for _, g := range program.globals() {
		globals, st = in.allocate(g, globals, st)
	}
	in.globals = globals

	entry := &token{token: tkIdentifier, lexeme: "main"}
	st = in.invoke(in.function(entry), args, st, entry)

	return st, nil
}
