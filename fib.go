package funcdrills

// fibState is the private two-value window of a Fibonacci generator.
type fibState struct {
	prev, cur int
}

func (s *fibState) next() int {
	out := s.prev
	s.prev, s.cur = s.cur, s.prev+s.cur
	return out
}

// MakeFib returns a generator that yields 1, 1, 2, 3, 5, 8, ... on successive
// calls. Every call to MakeFib starts a new, independent sequence.
//
// A generator is not safe for concurrent use; callers sharing one between
// goroutines must synchronize. Values overflow int after the 92nd term.
func MakeFib() func() int {
	s := &fibState{prev: 1, cur: 1}
	return s.next
}

// Fibonacci returns the first n Fibonacci numbers from a fresh generator.
func Fibonacci(n int) []int {
	if n <= 0 {
		return []int{}
	}

	fib := MakeFib()
	out := make([]int, n)
	for i := range out {
		out[i] = fib()
	}
	return out
}
