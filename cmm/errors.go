package cmm

import (
	"errors"
	"fmt"
	"strings"
)

const (
	runtimeErrorTypeBase         = "RuntimeError"
	runtimeErrorTypeName         = "NameError"
	runtimeErrorTypeZeroDivision = "ZeroDivisionError"
	runtimeErrorTypeQuota        = "QuotaError"

	eofLexeme = "end of input"
)

var (
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrStepQuotaExceeded = errors.New("step quota exceeded")
)

// LexicalError reports a character that starts no token. It is fatal: the
// run stops before any diagnostics are collected or any code is evaluated.
type LexicalError struct {
	Char rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Lexical error, unrecognized character %q", e.Char)
}

// SyntaxError is a single parser diagnostic.
type SyntaxError struct {
	Lexeme string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error, didn't expect %s", e.Lexeme)
}

func newSyntaxError(tok Token) *SyntaxError {
	if tok.IsEOF() {
		return &SyntaxError{Lexeme: eofLexeme}
	}
	return &SyntaxError{Lexeme: tok.Literal}
}

// CompileError batches every syntax error found in one parse, in detection
// order.
type CompileError struct {
	Errors []*SyntaxError
}

func (e *CompileError) Error() string {
	lines := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// RuntimeError aborts evaluation. Err holds the sentinel describing the
// fault class so callers can match it with errors.Is.
type RuntimeError struct {
	Type    string
	Message string
	Err     error
}

func (re *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", re.Type, re.Message)
}

func (re *RuntimeError) Unwrap() error {
	return re.Err
}

func classifyRuntimeErrorType(err error) string {
	switch {
	case errors.Is(err, ErrUnknownIdentifier):
		return runtimeErrorTypeName
	case errors.Is(err, ErrDivisionByZero):
		return runtimeErrorTypeZeroDivision
	case errors.Is(err, ErrStepQuotaExceeded):
		return runtimeErrorTypeQuota
	default:
		return runtimeErrorTypeBase
	}
}

func newRuntimeError(err error, format string, args ...any) error {
	return &RuntimeError{
		Type:    classifyRuntimeErrorType(err),
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
