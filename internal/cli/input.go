package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Pure-Company/funcdrills"
)

// ParseValue decodes a single command line argument as a YAML scalar, so
// "5" is an int, "true" a bool, "1.5" a float, and "'10'" the string "10".
// Unquoted words stay strings.
func ParseValue(arg string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return nil, fmt.Errorf("parse value %q: %w", arg, err)
	}
	return v, nil
}

// ParseTuples decodes a YAML or JSON sequence of sequences, such as
// "[[1, 2], [3, 4, 5], []]", into tuples.
func ParseTuples(arg string) ([]funcdrills.Tuple, error) {
	var raw [][]any
	if err := yaml.Unmarshal([]byte(arg), &raw); err != nil {
		return nil, fmt.Errorf("parse tuples %q: %w", arg, err)
	}

	tuples := make([]funcdrills.Tuple, 0, len(raw))
	for _, r := range raw {
		if r == nil {
			r = []any{}
		}
		tuples = append(tuples, funcdrills.Tuple(r))
	}
	return tuples, nil
}
