package utils

// Map applies fn to every element of s and returns the results.
func Map[S any, T any](s []S, fn func(S) T) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v))
	}
	return out
}

// Filter returns the elements of s for which keep is true.
func Filter[S any](s []S, keep func(S) bool) []S {
	var out []S
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
