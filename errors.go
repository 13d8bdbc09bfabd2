package hermitego

import "fmt"

// DomainError indicates an out-of-range numeric argument.
//
// It is the only error kind the library produces: negative order or rank,
// an axis outside [1,3], or a dimension outside [1,3]. Malformed index
// strings are never an error; unrecognized characters are masked instead.
type DomainError struct {
	// Param names the offending parameter ("order", "rank", "axis",
	// "dimension").
	Param string
	// Value is the rejected argument.
	Value int
	// Valid describes the accepted range.
	Valid string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("hermitego: invalid %s %d: must be %s", e.Param, e.Value, e.Valid)
}

func newDomainError(param string, value int, valid string) *DomainError {
	return &DomainError{Param: param, Value: value, Valid: valid}
}
