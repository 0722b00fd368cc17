package funcdrills

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigramFrequencies(t *testing.T) {
	freqs, err := BigramFrequencies("Viva la vida")
	require.NoError(t, err)

	assert.Equal(t, 0.2222222222222222, freqs["vi"])
	assert.InDelta(t, 1.0/9, freqs["la"], 1e-12)
	assert.Len(t, freqs, 8)

	var sum float64
	for _, f := range freqs {
		sum += f
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestBigramFrequencies_OnlyRemovesSpaces(t *testing.T) {
	freqs, err := BigramFrequencies("a\tb")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a\t": 0.5, "\tb": 0.5}, freqs)
}

func TestBigramFrequencies_Unicode(t *testing.T) {
	freqs, err := BigramFrequencies("ÉÉÉ")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"éé": 1.0}, freqs)
}

func TestBigramFrequencies_NoBigrams(t *testing.T) {
	for _, text := range []string{"", "a", "   ", " b "} {
		freqs, err := BigramFrequencies(text)
		require.ErrorIs(t, err, ErrNoBigrams, "text %q", text)
		assert.Nil(t, freqs)
	}
}

func TestBigrams(t *testing.T) {
	assert.Equal(t, []string{"ab", "bc", "cd"}, Bigrams("A bc D"))
	assert.Equal(t, []string{}, Bigrams("x"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestBigramFrequenciesFrom(t *testing.T) {
	freqs, err := BigramFrequenciesFrom(strings.NewReader("aaa"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"aa": 1.0}, freqs)

	_, err = BigramFrequenciesFrom(failingReader{})
	assert.ErrorContains(t, err, "boom")
}
