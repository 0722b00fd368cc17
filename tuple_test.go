package funcdrills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizes(t *testing.T) {
	tests := []struct {
		name  string
		input []Tuple
		want  []int
	}{
		{"mixed", []Tuple{{1, 2}, {3, 4, 5}, {6, 7, 8, 9}}, []int{2, 3, 4}},
		{"with empty tuple", []Tuple{{}, {"a"}}, []int{0, 1}},
		{"empty input", []Tuple{}, []int{}},
		{"nil input", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sizes(tt.input))
		})
	}
}

func TestOddLenOnly(t *testing.T) {
	input := []Tuple{
		{1, 2},
		{3, 4, 5},
		{6, 7, 8, 9},
		{},
		{"a", "b", "c"},
		{"apple", "orange", "banana"},
	}
	want := []Tuple{
		{3, 4, 5},
		{"a", "b", "c"},
		{"apple", "orange", "banana"},
	}

	assert.Equal(t, want, OddLenOnly(input))
	assert.Equal(t, []Tuple{}, OddLenOnly(nil))
	assert.Equal(t, []Tuple{}, OddLenOnly([]Tuple{{}, {1, 2}}))
}

func TestTupleUtilities_Idempotent(t *testing.T) {
	input := []Tuple{{1}, {2, 3}, {4, 5, 6}}
	snapshot := []Tuple{{1}, {2, 3}, {4, 5, 6}}

	assert.Equal(t, Sizes(input), Sizes(input))
	assert.Equal(t, OddLenOnly(input), OddLenOnly(input))
	assert.Equal(t, snapshot, input)
}
