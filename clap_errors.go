package clap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds Parse and Register can report.
// Compare with errors.Is; inspect the offending option/value via errors.As
// against *ParseError.
var (
	ErrUnknownOption  = errors.New("unknown option")
	ErrNotFlag        = errors.New("option is not a flag")
	ErrIllegalValue   = errors.New("illegal option value")
	ErrDuplicateValue = errors.New("single-value option already has a value")
	ErrValueLimit     = errors.New("option value limit exceeded")
	ErrInvalidCount   = errors.New("invalid option count")
	ErrDuplicateName  = errors.New("option name already in use")
)

// ParseError is the structured error returned by Parse and the registry
// operations. It carries the failure kind plus the offending option name
// (as displayed, e.g. "-s,--size") and value, where applicable.
type ParseError struct {
	kind  error
	name  string
	value string
	cause error
}

func newParseError(kind error, name, value string) *ParseError {
	return &ParseError{kind: kind, name: name, value: value}
}

func (e *ParseError) withCause(cause error) *ParseError {
	e.cause = cause
	return e
}

// OptionName returns the display name of the offending option, or the raw
// token text when the option is not registered.
func (e *ParseError) OptionName() string { return e.name }

// Value returns the offending value, if any.
func (e *ParseError) Value() string { return e.value }

func (e *ParseError) Error() string {
	switch e.kind {
	case ErrUnknownOption:
		return fmt.Sprintf("unknown option: %s", e.name)
	case ErrNotFlag:
		return fmt.Sprintf("option %s requires a value and cannot be grouped as a flag", e.name)
	case ErrIllegalValue:
		if e.value == "" {
			return fmt.Sprintf("illegal or missing value for option %s", e.name)
		}
		return fmt.Sprintf("illegal value for option %s: %q", e.name, e.value)
	case ErrDuplicateValue:
		return fmt.Sprintf("option %s accepts a single value, but got another: %q", e.name, e.value)
	case ErrValueLimit:
		return fmt.Sprintf("too many values for option %s", e.name)
	case ErrInvalidCount:
		return fmt.Sprintf("invalid number of occurrences for option %s", e.name)
	case ErrDuplicateName:
		return fmt.Sprintf("option name already in use: %s", e.name)
	}
	return fmt.Sprintf("option error: %s", e.name)
}

// Is reports whether target matches this error's kind, so that
// errors.Is(err, clap.ErrUnknownOption) and friends work.
func (e *ParseError) Is(target error) bool {
	return target == e.kind
}

func (e *ParseError) Unwrap() error {
	return e.cause
}
