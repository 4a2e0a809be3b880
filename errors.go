package sym

import (
	"errors"
	"fmt"
)

// Sentinel errors. Concrete error types below wrap one of these via
// Unwrap so callers can test with [errors.Is] without caring about the
// offending identifier, or use [errors.As] to recover it.
var (
	// ErrUndefinedVariable indicates a $name reference with no binding.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrDuplicateVariable indicates a non-override variable redefinition.
	ErrDuplicateVariable = errors.New("duplicate variable")
	// ErrDuplicateKey indicates a non-override duplicate object key under
	// [WithStrictKeys]. Never raised otherwise: by default, duplicate
	// object keys deep-merge silently.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrAppendToNonArray indicates a `+` modifier where either the
	// existing or incoming value is not an array.
	ErrAppendToNonArray = errors.New("cannot append to non-array")
	// ErrRead indicates a file read failure from [ParseFile].
	ErrRead = errors.New("read error")
)

// ParseError is a syntactic failure, captured at the cursor position of
// the first character the parser could not accept. Line and Col are
// 1-based.
type ParseError struct {
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at line %d, column %d: %s", e.Line, e.Col, e.Message)
}

// UndefinedVariableError is returned when a variable reference has no
// binding in scope at substitution time.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable: $%s", e.Name)
}

func (e *UndefinedVariableError) Unwrap() error { return ErrUndefinedVariable }

// DuplicateVariableError is returned when a variable is redefined across
// blocks without the `!` override modifier.
type DuplicateVariableError struct {
	Name string
}

func (e *DuplicateVariableError) Error() string {
	return fmt.Sprintf("Duplicate variable without override: $%s (use $%s! to override)", e.Name, e.Name)
}

func (e *DuplicateVariableError) Unwrap() error { return ErrDuplicateVariable }

// DuplicateKeyError is returned under [WithStrictKeys] when two values
// collide on the same key without a `!` override and are not both
// objects.
type DuplicateKeyError struct {
	Name string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate key without override: :%s (use :%s! to override)", e.Name, e.Name)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// AppendToNonArrayError is returned when a `+` modifier is applied to a
// key whose existing or incoming value is not an array.
type AppendToNonArrayError struct {
	Name string
}

func (e *AppendToNonArrayError) Error() string {
	return fmt.Sprintf("Cannot append to non-array: :%s", e.Name)
}

func (e *AppendToNonArrayError) Unwrap() error { return ErrAppendToNonArray }
