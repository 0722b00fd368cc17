package funcdrills

import (
	"fmt"
	"io"
	"strings"
)

// Bigrams lowercases text, removes space characters (other whitespace is
// kept), and returns every overlapping two-character substring in order.
func Bigrams(text string) []string {
	cleaned := []rune(strings.ReplaceAll(strings.ToLower(text), " ", ""))
	if len(cleaned) < 2 {
		return []string{}
	}

	out := make([]string, 0, len(cleaned)-1)
	for i := 0; i < len(cleaned)-1; i++ {
		out = append(out, string(cleaned[i:i+2]))
	}
	return out
}

// BigramFrequencies maps every distinct bigram of text to its count divided by
// the total number of bigrams, so the frequencies sum to 1.
//
// Text with fewer than two characters after cleaning has no bigrams and
// returns ErrNoBigrams.
//
// Example:
//
//	freqs, _ := BigramFrequencies("Viva la vida")
//	freqs["vi"] // 0.2222222222222222 ("vi" is 2 of 9 bigrams)
func BigramFrequencies(text string) (map[string]float64, error) {
	bigrams := Bigrams(text)
	total := len(bigrams)
	if total == 0 {
		return nil, fmt.Errorf("bigram frequencies of %q: %w", text, ErrNoBigrams)
	}

	counts := make(map[string]int)
	for _, b := range bigrams {
		counts[b]++
	}

	freqs := make(map[string]float64, len(counts))
	for b, n := range counts {
		freqs[b] = float64(n) / float64(total)
	}
	return freqs, nil
}

// BigramFrequenciesFrom reads r to the end and analyses the text it holds.
func BigramFrequenciesFrom(r io.Reader) (map[string]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return BigramFrequencies(string(data))
}
