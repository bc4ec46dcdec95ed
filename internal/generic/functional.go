package generic

// Filter returns the elements of s for which keep returns true.
// The result shares the backing array with s, so s must not be used afterwards.
func Filter[T any](s []T, keep func(T) bool) []T {
	res := s[:0]

	for _, v := range s {
		if keep(v) {
			res = append(res, v)
		}
	}

	return res
}
