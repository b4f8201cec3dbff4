package inspect

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingHandler is matched by every diagnostic about an uncovered case.
	ErrMissingHandler = errors.New("missing handler")

	// ErrNoHandlers is returned when a dispatch is given an empty handler set.
	ErrNoHandlers = errors.New("no handlers")

	// ErrIncompleteOptional is matched when an Option is missing the
	// present-value handler or the zero-argument absent handler.
	ErrIncompleteOptional = errors.New("incomplete optional coverage")

	// ErrAmbiguousPayload is matched when a handler takes a payload type that
	// is shared by two cases and therefore cannot select either.
	ErrAmbiguousPayload = errors.New("ambiguous payload type")

	// ErrNotMember is returned when a value is not one of a family's variants.
	ErrNotMember = errors.New("not a member of the family")

	// ErrCaseSetMismatch is the panic value when a Matcher is applied to a
	// value from a different case set than the one it was compiled for.
	ErrCaseSetMismatch = errors.New("case set mismatch")

	// ErrNoRoute is returned by a Decoder when no route matches a message.
	ErrNoRoute = errors.New("no route matched message")
)

// CoverageError collects every diagnostic produced while validating one
// handler set against one case set.
type CoverageError struct {
	Shape Shape
	Errs  []error
}

func (e *CoverageError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("inspect: incomplete coverage of %s: %s", e.Shape, strings.Join(msgs, "; "))
}

// Unwrap returns the individual diagnostics.
func (e *CoverageError) Unwrap() []error { return e.Errs }

// MissingHandlerError reports a case that no handler accepts.
type MissingHandlerError struct {
	Shape Shape
	Case  CaseInfo
}

func (e *MissingHandlerError) Error() string {
	return fmt.Sprintf("no handler for %s case %s", e.Shape, e.Case)
}

func (e *MissingHandlerError) Is(target error) bool { return target == ErrMissingHandler }

// IncompleteOptionalError reports the missing halves of an Option handler
// set. Both halves are mandatory and reported independently.
type IncompleteOptionalError struct {
	// ValueType is the type carried by the present case.
	ValueType string

	// MissingValue is true when no handler accepts ValueType.
	MissingValue bool

	// MissingEmpty is true when no zero-argument handler was given.
	MissingEmpty bool
}

func (e *IncompleteOptionalError) Error() string {
	var parts []string
	if e.MissingValue {
		parts = append(parts, fmt.Sprintf("no handler for the present value (%s)", e.ValueType))
	}
	if e.MissingEmpty {
		parts = append(parts, "no handler for the absent state; add inspect.Empty(func() R { ... })")
	}
	return fmt.Sprintf("optional of %s: %s", e.ValueType, strings.Join(parts, " and "))
}

func (e *IncompleteOptionalError) Is(target error) bool {
	return target == ErrIncompleteOptional || target == ErrMissingHandler
}

// AmbiguousPayloadError reports a handler written against a payload type
// shared by several cases, such as the bare int of a Result[int, int].
type AmbiguousPayloadError struct {
	// Case is the case left uncovered.
	Case CaseInfo

	// Handler is the position of the offending handler in the handler set.
	Handler int

	// Param is the type the handler accepts.
	Param string
}

func (e *AmbiguousPayloadError) Error() string {
	return fmt.Sprintf("case %s is not covered: handler %d takes %s, which does not identify the case; write it against %s",
		e.Case, e.Handler, e.Param, e.Case.Forms[0].Type)
}

func (e *AmbiguousPayloadError) Is(target error) bool {
	return target == ErrAmbiguousPayload || target == ErrMissingHandler
}
