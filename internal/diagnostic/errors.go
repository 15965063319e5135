package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched with errors.Is.
var (
	// ErrConfiguration marks a malformed field configuration or override template.
	ErrConfiguration = errors.New("configuration error")
	// ErrUnsupportedTypeCombination marks a field type mixing asynchronous and
	// collection wrapping in an unsupported way.
	ErrUnsupportedTypeCombination = errors.New("unsupported type combination")
	// ErrFormatting marks assembled source text the formatter rejected.
	ErrFormatting = errors.New("formatting error")
)

// Kind classifies a generation failure.
type Kind int

const (
	KindConfiguration Kind = iota + 1
	KindUnsupportedType
	KindFormatting
)

// String returns the diagnostic code used for the kind.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUnsupportedType:
		return "unsupported_type_combination"
	case KindFormatting:
		return "formatting"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindUnsupportedType:
		return ErrUnsupportedTypeCombination
	case KindFormatting:
		return ErrFormatting
	default:
		return nil
	}
}

// Error is a generation failure for one class, optionally narrowed to a field.
type Error struct {
	Kind  Kind
	Class string
	Field string
	Err   error
}

// Error implements error.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.sentinel().Error())

	if e.Class != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Class)

		if e.Field != "" {
			sb.WriteString(".")
			sb.WriteString(e.Field)
		}
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Configuration builds a configuration error.
func Configuration(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Err: fmt.Errorf(format, args...)}
}

// Unsupported builds an unsupported type combination error.
func Unsupported(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedType, Err: fmt.Errorf(format, args...)}
}

// Formatting wraps a formatter failure.
func Formatting(err error) *Error {
	return &Error{Kind: KindFormatting, Err: err}
}

// At returns err located at class and field. A *Error that already names a
// class or field keeps it; other errors are wrapped as configuration errors.
func At(err error, class, field string) *Error {
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Kind: KindConfiguration, Class: class, Field: field, Err: err}
	}

	out := *e
	if out.Class == "" {
		out.Class = class
	}

	if out.Field == "" {
		out.Field = field
	}

	return &out
}

// AddFailure records a generation failure as an error diagnostic.
func (d *Diagnostics) AddFailure(err error) {
	var e *Error
	if !errors.As(err, &e) {
		d.AddError("generation_failed", err.Error(), "", "")
		return
	}

	msg := e.Kind.sentinel().Error()
	if e.Err != nil {
		msg = e.Err.Error()
	}

	d.AddError(e.Kind.String(), msg, e.Class, e.Field)
}
