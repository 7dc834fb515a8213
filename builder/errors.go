package builder

import (
	"errors"
	"fmt"
	"strings"

	"struct-builder/internal/ctor"
)

var (
	// ErrNoSuchField is returned when an action targets a field without a value.
	ErrNoSuchField = errors.New("no such field")
	// ErrUnknownField is returned when a field has nowhere to go on the built value.
	ErrUnknownField = errors.New("unknown field")
	// ErrIncompatibleValue is returned when a value cannot be converted to its destination.
	ErrIncompatibleValue = errors.New("incompatible value")
	// ErrNoTarget is returned when the target type cannot be constructed or assigned to.
	ErrNoTarget = errors.New("no target type bound")
	// ErrBadConstructor is returned by Define for an unusable constructor.
	ErrBadConstructor = errors.New("bad constructor")
	// ErrUnknownAction is returned by Method when no method or named action matches.
	ErrUnknownAction = errors.New("unknown action")
	// ErrDuplicateField is returned when two pending names resolve to the same
	// constructor parameter or struct field.
	ErrDuplicateField = errors.New("field already set under another name")

	// ErrMissingArgument is returned when a required constructor parameter has no field.
	ErrMissingArgument = ctor.ErrMissingArgument
)

// FieldError reports a failure tied to one pending field.
type FieldError struct {
	Field       string
	Suggestions []string
	Err         error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("field %q: %v", e.Field, e.Err)
	if len(e.Suggestions) == 0 {
		return msg
	}

	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = fmt.Sprintf("%q", s)
	}

	return msg + " (did you mean " + strings.Join(quoted, " or ") + "?)"
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
