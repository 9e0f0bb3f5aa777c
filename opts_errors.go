package opts

import (
	"errors"
	"fmt"
)

// ErrSpec is the category sentinel for errors raised while declaring
// options, before any parse. These indicate a bug in the embedding
// application, not bad user input, and have no tolerant mode.
var ErrSpec = errors.New("invalid option specification")

// ErrParse is the category sentinel for errors raised during a Parse call.
// Every parse error aborts the pass; no partial result is returned.
var ErrParse = errors.New("parse error")

// ErrQuery is the category sentinel for errors raised while querying a
// ParseResult after a successful parse.
var ErrQuery = errors.New("result query error")

// ExistsError reports a second registration claiming an already-taken name.
type ExistsError struct {
	Option string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("option %q already exists", e.Option)
}

func (e *ExistsError) Unwrap() error { return ErrSpec }

// InvalidFormatError reports an option specifier that violates the name
// shape rules (short: one alnum char or '?'; long: alnum start, length > 1,
// alnum/'-'/'_' body).
type InvalidFormatError struct {
	Format string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid option format %q", e.Format)
}

func (e *InvalidFormatError) Unwrap() error { return ErrSpec }

// SyntaxError reports a dash-prefixed argv token that matches no valid
// option shape.
type SyntaxError struct {
	Token string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("argument %q starts with a - but has incorrect syntax", e.Token)
}

func (e *SyntaxError) Unwrap() error { return ErrParse }

// NotExistsError reports a name that is not in the registry, referenced
// either directly in argv under strict mode or through an inconsistent
// positional plan.
type NotExistsError struct {
	Option string
}

func (e *NotExistsError) Error() string {
	return fmt.Sprintf("option %q does not exist", e.Option)
}

func (e *NotExistsError) Unwrap() error { return ErrParse }

// MissingArgumentError reports an option that requires a value when none
// is available, including the case where the next argv entry looks like
// another registered option.
type MissingArgumentError struct {
	Option string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("option %q is missing an argument", e.Option)
}

func (e *MissingArgumentError) Unwrap() error { return ErrParse }

// IncorrectTypeError reports value text that failed to convert to the
// declared type. Type carries the expected type label ("integer", "bool",
// "char") and may be empty.
type IncorrectTypeError struct {
	Arg  string
	Type string
}

func (e *IncorrectTypeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("argument %q failed to parse", e.Arg)
	}
	return fmt.Sprintf("argument %q failed to parse: %s expected", e.Arg, e.Type)
}

func (e *IncorrectTypeError) Unwrap() error { return ErrParse }

// NotPresentError reports a ParseResult query for a name that was never
// registered. Distinct from zero occurrences of a registered name.
type NotPresentError struct {
	Option string
}

func (e *NotPresentError) Error() string {
	return fmt.Sprintf("option %q not present", e.Option)
}

func (e *NotPresentError) Unwrap() error { return ErrQuery }

// NoValueError reports a typed value request for an option with zero
// occurrences and no applied default.
type NoValueError struct {
	Option string
}

func (e *NoValueError) Error() string {
	if e.Option == "" {
		return "option has no value"
	}
	return fmt.Sprintf("option %q has no value", e.Option)
}

func (e *NoValueError) Unwrap() error { return ErrQuery }

// WrongTypeError reports an As[T] call whose type parameter does not match
// the type the option was declared with.
type WrongTypeError struct {
	Option string
	Want   string
	Got    string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("option %q holds %s, not %s", e.Option, e.Got, e.Want)
}

func (e *WrongTypeError) Unwrap() error { return ErrQuery }
