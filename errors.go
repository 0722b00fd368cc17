package funcdrills

import "errors"

var (
	// ErrUnsupportedType is returned by IsNumber for values that are neither
	// numeric nor strings.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidSelector is returned when a pair is asked for anything other
	// than SelectFirst, SelectSecond, or SelectPair.
	ErrInvalidSelector = errors.New("invalid selector message: use 0, 1, or 'pair'")

	// ErrNoBigrams is returned when the cleaned text is too short to hold a
	// single bigram, which would otherwise divide by zero.
	ErrNoBigrams = errors.New("text has no bigrams")
)
