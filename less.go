package alphanum

import (
	"fmt"

	"github.com/maxpoletaev/alphanum/internal/generic"
)

// Comparator is a function that compares two values.
// It returns a negative number if a < b, 0 if a == b, and a positive number if a > b.
type Comparator[T any] func(a, b T) int

// Less reports whether a goes before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// ScalarLess reports whether the text representation of a goes before that of b.
func ScalarLess[T Scalar](a, b T) bool {
	return CompareScalars(a, b) < 0
}

// ValueLess reports whether a.String() goes before b.String() in natural order.
func ValueLess[T fmt.Stringer](a, b T) bool {
	return CompareValues(a, b) < 0
}

// LessFunc turns a comparator into a less-than predicate, suitable for sort.Slice
// and other APIs that expect one.
func LessFunc[T any](cmp Comparator[T]) func(a, b T) bool {
	return func(a, b T) bool {
		return cmp(a, b) < 0
	}
}

// Inverse returns a comparator that orders values in the opposite direction.
func Inverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return -cmp(a, b) }
}

// StringSlice attaches the methods of sort.Interface to []string, sorting in natural order.
type StringSlice []string

func (s StringSlice) Len() int           { return len(s) }
func (s StringSlice) Less(i, j int) bool { return Compare(s[i], s[j]) < 0 }
func (s StringSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sort sorts the slice in natural order.
func (s StringSlice) Sort() { Sort(s) }

// Sort sorts s in ascending natural order. Strings that compare equal,
// such as "a07" and "a7", keep their relative order.
func Sort(s []string) {
	generic.SortFunc(s, Compare, false)
}

// SortReverse sorts s in descending natural order.
func SortReverse(s []string) {
	generic.SortFunc(s, Compare, true)
}

// SortFunc sorts s with the given comparator, in descending order if reverse is set.
func SortFunc[T any](s []T, cmp Comparator[T], reverse bool) {
	generic.SortFunc(s, cmp, reverse)
}

// IsSorted reports whether s is sorted in ascending natural order.
func IsSorted(s []string) bool {
	sorted, _ := generic.IsSortedFunc(s, Compare, false)
	return sorted
}
