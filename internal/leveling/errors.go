package leveling

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparsableSegment marks leveling text that is known to carry no
	// per-rank numbers. Callers usually keep the raw text instead.
	ErrUnparsableSegment = errors.New("leveling text has no per-rank values")
	ErrMalformedValue    = errors.New("value does not start with a number")
	ErrAmbiguousValue    = errors.New("unexpected count of numbers")
	ErrInconsistentUnits = errors.New("ranks disagree on unit")
	ErrEmptyAttribute    = errors.New("attribute has no modifiers")
)

// ParseError is returned by every parse operation. It unwraps to one of the
// sentinel errors above.
type ParseError struct {
	Err       error
	Attribute string // empty when the failure happened before segmentation
	Fragment  string
}

func (e *ParseError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Fragment)
	}
	return fmt.Sprintf("attribute %q: %v: %q", e.Attribute, e.Err, e.Fragment)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func failf(err error, fragment string) error {
	return &ParseError{Err: err, Fragment: fragment}
}

// withAttribute stamps the attribute name onto a ParseError that does not
// have one yet.
func withAttribute(name string, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Attribute == "" {
		pe.Attribute = name
	}
	return err
}
