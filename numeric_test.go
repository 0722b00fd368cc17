package funcdrills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

func TestIsNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"int", 5, true},
		{"negative int", -10, true},
		{"zero", 0, true},
		{"int8", int8(3), true},
		{"uint64", uint64(7), true},
		{"float", 2.5, true},
		{"float32", float32(-1.25), true},
		{"complex", complex(1, 2), true},
		{"named float", celsius(21.5), true},
		{"digit string", "10", true},
		{"long digit string", "0123456789", true},
		{"non-digit string", "bad", false},
		{"empty string", "", false},
		{"signed string", "-1", false},
		{"decimal string", "1.5", false},
		{"padded string", " 7", false},
		{"true", true, false},
		{"false", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNumber_UnsupportedType(t *testing.T) {
	inputs := map[string]any{
		"nil":    nil,
		"slice":  []int{1, 2},
		"map":    map[string]int{"a": 1},
		"struct": struct{ N int }{N: 1},
		"func":   func() {},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := IsNumber(input)
			require.ErrorIs(t, err, ErrUnsupportedType)
			assert.False(t, got)
		})
	}
}
