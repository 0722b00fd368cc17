package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pure-Company/funcdrills"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"5", 5},
		{"-10", -10},
		{"1.5", 1.5},
		{"true", true},
		{"bad", "bad"},
		{"'10'", "10"},
		{`"pair"`, "pair"},
		{"hello world", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	_, err := ParseValue("[1, 2")
	assert.Error(t, err)
}

func TestParseTuples(t *testing.T) {
	got, err := ParseTuples(`[[1, 2], [3, 4, 5], [], ["a", "b", "c"]]`)
	require.NoError(t, err)

	want := []funcdrills.Tuple{{1, 2}, {3, 4, 5}, {}, {"a", "b", "c"}}
	assert.Equal(t, want, got)
	assert.Equal(t, []int{2, 3, 0, 3}, funcdrills.Sizes(got))
}

func TestParseTuples_Empty(t *testing.T) {
	got, err := ParseTuples("[]")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseTuples_NotASequence(t *testing.T) {
	_, err := ParseTuples("[1, 2]")
	assert.Error(t, err)
}
