package invoice

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation          = errors.New("invoice is not valid")
	ErrDuplicateIdentifier = errors.New("invoice number already exists")
	ErrNotFound            = errors.New("invoice not found")
	ErrStoreUnavailable    = errors.New("invoice store unavailable")
	ErrStoreTimeout        = errors.New("invoice store did not respond in time")
	ErrItemIndex           = errors.New("item index out of range")
	ErrUnknownField        = errors.New("unknown item field")
)

// ValidationError names the field that blocked a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidationErrors collects every problem found in one pass over a draft.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (es ValidationErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}

func (es *ValidationErrors) add(field, reason string) {
	*es = append(*es, &ValidationError{Field: field, Reason: reason})
}
