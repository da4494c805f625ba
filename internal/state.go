package internal

import (
	"fmt"
)

// errorKind tags a runtime or compile-time failure by category. It is
// also the prefix of the user-visible message: "<Kind>: <description>
// (line <N>)".
type errorKind string

const (
	kindSyntaxError errorKind = "SyntaxError"
	kindNameError   errorKind = "NameError"
	kindTypeError   errorKind = "TypeError"
	kindIndexError  errorKind = "IndexError"
	kindArityError  errorKind = "ArityError"
	kindRuntimeError errorKind = "RuntimeError"
)

// convoError is the single user-visible error shape for both
// lex/parse failures and runtime failures raised by operators and
// built-ins: one line per error.
type convoError struct {
	kind    errorKind
	message string
	line    int
}

// ConvoError is the exported view of a reported Convo error, for
// callers outside this package that need to print Result.Errors.
type ConvoError = convoError

func (e *convoError) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", e.kind, e.message, e.line)
}

func newConvoError(kind errorKind, line int, format string, args ...interface{}) *convoError {
	return &convoError{kind: kind, message: fmt.Sprintf(format, args...), line: line}
}

// interpreterState carries the compile-time artifacts and accumulated
// lex/parse errors for a single run of the pipeline.
type interpreterState struct {
	absPath string
	source  string

	tokens []*token
	stmts  []stmt

	errors []*convoError
}

func newInterpreterState(absPath, source string) *interpreterState {
	return &interpreterState{absPath: absPath, source: source}
}

// valid reports whether lexing/parsing completed without error.
func (s *interpreterState) valid() bool {
	return len(s.errors) == 0
}

// setError records a compile-time error without panicking. The
// parser's per-statement recovery goes through fatalError instead.
func (s *interpreterState) setError(kind errorKind, line int, format string, args ...interface{}) {
	s.errors = append(s.errors, newConvoError(kind, line, format, args...))
}

// fatalError records the error and panics with it, to be recovered by
// the nearest error-synchronization point. The lexer's scan loop has
// none, so a lex error is always fatal; the parser recovers per
// statement.
func (s *interpreterState) fatalError(kind errorKind, line int, format string, args ...interface{}) {
	err := newConvoError(kind, line, format, args...)
	s.errors = append(s.errors, err)
	panic(err)
}

func (s *interpreterState) printErrors() {
	for _, e := range s.errors {
		fmt.Println(e.Error())
	}
}

// Lexer errors.
var (
	errIllegalChar         = "illegal character %q"
	errUnterminatedString  = "unterminated string"
	errInconsistentDedent  = "inconsistent dedent"
)

// Parser errors.
var (
	errUnexpectedToken       = "unexpected token %s, expected %s"
	errUnterminatedBlock     = "unterminated block"
	errUnknownStatementHead  = "unknown statement head %s"
	errReturnOutsideFunction = "Return is only valid inside a function or method body"
)

// Evaluator errors.
var (
	errUndefinedVar       = "undefined name %q"
	errUndefinedProp      = "undefined property %q"
	errReadOnly           = "cannot assign to %q"
	errDivisionByZero     = "division by zero"
	errOnlyNumbers        = "operator %q requires numbers"
	errOnlyNumbersOrStrings = "operator %q requires two numbers or two strings"
	errExpectedString     = "expected a string"
	errExpectedList       = "expected a list"
	errExpectedDict       = "expected a dict"
	errUndefinedOp        = "operator %q is not defined for this type"
	errNotCallable        = "value is not callable"
	errWrongArity         = "expected %d argument(s), got %d"
	errIndexOutOfRange    = "index out of range"
	errKeyNotFound        = "key not found: %v"
	errExpectedKey        = "dict index requires a string key"
	errOnlyOnLists        = "expected a list or dict"
	errUndefinedClass     = "undefined class %q"
	errNotAnInstance      = "value is not an instance"
	errNullAccess         = "cannot access %q on null"
	errNotIterable        = "value is not iterable"
)
