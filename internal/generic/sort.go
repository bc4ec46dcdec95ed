package generic

import "sort"

// SortFunc sorts arr according to the compare function, which must return a
// negative number, zero or a positive number like strings.Compare does.
// Elements that compare equal keep their original order.
func SortFunc[T any](arr []T, compare func(a, b T) int, reverse bool) {
	sort.SliceStable(arr, func(i, j int) bool {
		if reverse {
			return compare(arr[i], arr[j]) > 0
		}

		return compare(arr[i], arr[j]) < 0
	})
}

// IsSortedFunc reports whether arr is sorted according to the compare function.
// It returns the index of the first element that is out of order, or -1.
func IsSortedFunc[T any](arr []T, compare func(a, b T) int, reverse bool) (bool, int) {
	for i := 1; i < len(arr); i++ {
		c := compare(arr[i-1], arr[i])

		if (!reverse && c > 0) || (reverse && c < 0) {
			return false, i
		}
	}

	return true, -1
}
