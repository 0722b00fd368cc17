package funcdrills

// Tuple is a fixed, ordered group of arbitrary values.
type Tuple []any

// Len returns the number of elements in the tuple.
func (t Tuple) Len() int {
	return len(t)
}

// Sizes returns the element count of every tuple in seq, in order.
func Sizes(seq []Tuple) []int {
	return mapSlice(seq, Tuple.Len)
}

// OddLenOnly returns the tuples of seq whose length is odd, preserving their
// relative order. The empty tuple has even length.
func OddLenOnly(seq []Tuple) []Tuple {
	return filterSlice(seq, func(t Tuple) bool {
		return t.Len()%2 != 0
	})
}

func mapSlice[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

func filterSlice[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}
