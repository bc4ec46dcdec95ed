package alphanum

import (
	"encoding"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is a set of builtin types that have a default text representation.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool | ~string
}

// CompareValues renders both values with their String method and compares the results.
func CompareValues[L, R fmt.Stringer](l L, r R) int {
	return Compare(l.String(), r.String())
}

// CompareScalars renders both values the same way fmt does with the %v verb
// and compares the results, so CompareScalars(1.2, 3.14) compares "1.2" with "3.14".
func CompareScalars[L, R Scalar](l L, r R) int {
	return Compare(fmt.Sprint(l), fmt.Sprint(r))
}

// CompareText renders both values with MarshalText and compares the results.
// The left value is rendered first. If rendering fails, the error is returned as is.
func CompareText[L, R encoding.TextMarshaler](l L, r R) (int, error) {
	ltext, err := l.MarshalText()
	if err != nil {
		return 0, err
	}

	rtext, err := r.MarshalText()
	if err != nil {
		return 0, err
	}

	return CompareBytes(ltext, rtext), nil
}
