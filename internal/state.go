package internal

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError is a lexing or parsing failure
type ParseError struct {
	Err  error
	Line int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("Error on line %d\n\t%s", e.Line, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// ParseErrors holds every front-end error found in one source
type ParseErrors []ParseError

func (e ParseErrors) Error() string {
	msgs := make([]string, len(e))
	for i, pe := range e {
		msgs[i] = pe.Error()
	}
	return strings.Join(msgs, "\n")
}

// RuntimeError is a fatal evaluation error. Err is one of the Err* sentinels.
type RuntimeError struct {
	Err    error
	Lexeme string
	Line   int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime Error on line %d\n\t%s: %s", e.Line, e.Err, e.Lexeme)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// interpreterState stores the state of a interpreter
type interpreterState struct {
	source  string
	errors  []ParseError
	tokens  []token
	program *Program
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{
		source:  source,
		errors:  make([]ParseError, 0),
		program: &Program{},
	}
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, ParseError{
		Err:  err,
		Line: line,
	})
}

// fatalError records err and unwinds to the parser's synchronization point
func (s *interpreterState) fatalError(err error, line int) {
	s.setError(err, line)
	panic(err)
}

// Valid returns true if no errors were found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

func (s *interpreterState) err() error {
	if s.Valid() {
		return nil
	}
	return ParseErrors(s.errors)
}

// runtimeErr aborts evaluation; the error is recovered in Run
func runtimeErr(err error, tk *token) {
	rErr := &RuntimeError{Err: err}
	if tk != nil {
		rErr.Lexeme = tk.lexeme
		rErr.Line = tk.line
	}
	panic(rErr)
}

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errUnclosedChar = errors.New("Closing ' was expected")
var errUnclosedComment = errors.New("Closing */ was expected")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression")
var errUnclosedBracket = errors.New("Expected ']' after index")
var errUnclosedList = errors.New("Expected ']' at end of list")
var errExpectedParen = errors.New("Expected '('")
var errExpectedSemicolon = errors.New("Expected ';'")
var errExpectedIdentifier = errors.New("Expected variable name")
var errExpectedType = errors.New("Expected type")
var errExpectedArrayLength = errors.New("Expected array length")
var errExpectedOpeningCurlyBrace = errors.New("Expected '{'")
var errExpectedClosingCurlyBrace = errors.New("Expected '}'")
var errInvalidAssignTarget = errors.New("Invalid assignment target")
var errInvalidAddressOf = errors.New("Can only take the address of a variable, dereference or index")
var errUndefinedExpr = errors.New("Undefined expression")
var errMaxArguments = errors.New("Max number of arguments is 255")
var errMaxParameters = errors.New("Max number of parameters is 255")

// Runtime errors
var (
	ErrNameNotFound         = errors.New("Undefined name")
	ErrFunctionNotFound     = fmt.Errorf("%w (function)", ErrNameNotFound)
	ErrAddressFault         = errors.New("Invalid memory access")
	ErrArityMismatch        = errors.New("Invalid number of arguments")
	ErrDivisionByZero       = errors.New("Division by zero")
	ErrUnknownPrimitive     = errors.New("Unknown primitive")
	ErrReturnNotImplemented = errors.New("Return is not implemented")
	ErrStoreExhausted       = errors.New("Store exhausted")
)
