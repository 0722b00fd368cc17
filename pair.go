package funcdrills

import "fmt"

// Selector messages understood by a pair.
const (
	SelectFirst  = 0
	SelectSecond = 1
	SelectPair   = "pair"
)

// PairFunc answers selector messages for a pair built by MakePair.
type PairFunc func(selector any) (any, error)

// MakePair returns an accessor that dispatches on selector messages:
// SelectFirst yields first, SelectSecond yields second, and SelectPair yields
// Tuple{first, second}. Any other selector returns ErrInvalidSelector.
//
// Example:
//
//	p := MakePair(10, "hello")
//	p(0)      // 10, nil
//	p(1)      // "hello", nil
//	p("pair") // Tuple{10, "hello"}, nil
func MakePair(first, second any) PairFunc {
	return NewPair(first, second).Select
}

// Pair is an immutable ordered pair. The fields are unexported so the values
// cannot change after NewPair.
type Pair[A, B any] struct {
	first  A
	second B
}

// NewPair is the only way to build a Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{first: first, second: second}
}

// First returns the first value.
func (p Pair[A, B]) First() A {
	return p.first
}

// Second returns the second value.
func (p Pair[A, B]) Second() B {
	return p.second
}

// Both returns the two values as a fresh Tuple.
func (p Pair[A, B]) Both() Tuple {
	return Tuple{p.first, p.second}
}

// Unpack returns both values as multiple return values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// Select dispatches a selector message. See MakePair.
func (p Pair[A, B]) Select(selector any) (any, error) {
	switch s := selector.(type) {
	case int:
		switch s {
		case SelectFirst:
			return p.first, nil
		case SelectSecond:
			return p.second, nil
		}
	case string:
		if s == SelectPair {
			return p.Both(), nil
		}
	}
	return nil, fmt.Errorf("select %#v: %w", selector, ErrInvalidSelector)
}

// String implements fmt.Stringer.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}
