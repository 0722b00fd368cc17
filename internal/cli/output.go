package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Pure-Company/funcdrills"
)

// Output formats accepted by NewPrinter.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for output formats other than text, json, and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// Printer writes command results in one output format.
type Printer struct {
	w      io.Writer
	format string
	styles styles
}

// NewPrinter returns a Printer for w. Styling follows the color profile of w,
// so plain buffers and pipes receive unstyled text.
func NewPrinter(w io.Writer, format string) (*Printer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return &Printer{
		w:      w,
		format: format,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}, nil
}

// Print writes one labelled result. In json and yaml formats the label
// becomes the single key of a document.
func (p *Printer) Print(label string, v any) error {
	switch p.format {
	case FormatJSON:
		data, err := json.MarshalIndent(map[string]any{label: v}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(map[string]any{label: v})
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = p.w.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(p.w, p.styles.label.Render(label+":")+" "+p.text(v))
		return err
	}
}

func (p *Printer) text(v any) string {
	switch val := v.(type) {
	case map[string]float64:
		return "\n" + p.frequencyTable(val)
	case []funcdrills.Tuple:
		parts := make([]string, 0, len(val))
		for _, t := range val {
			parts = append(parts, formatTuple(t))
		}
		return p.styles.value.Render("[" + strings.Join(parts, ", ") + "]")
	case funcdrills.Tuple:
		return p.styles.value.Render(formatTuple(val))
	case bool:
		if !val {
			return p.styles.declined.Render("false")
		}
		return p.styles.value.Render("true")
	default:
		return p.styles.value.Render(fmt.Sprint(val))
	}
}

// frequencyTable lists frequencies from most to least common, ties by key.
func (p *Printer) frequencyTable(freqs map[string]float64) string {
	keys := make([]string, 0, len(freqs))
	for k := range freqs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if freqs[keys[i]] != freqs[keys[j]] {
			return freqs[keys[i]] > freqs[keys[j]]
		}
		return keys[i] < keys[j]
	})

	var b strings.Builder
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(p.styles.key.Render(fmt.Sprintf("%q", k)))
		b.WriteString(p.styles.subtle.Render(fmt.Sprintf("%.4f", freqs[k])))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func formatTuple(t funcdrills.Tuple) string {
	parts := make([]string, 0, len(t))
	for _, v := range t {
		if s, ok := v.(string); ok {
			parts = append(parts, fmt.Sprintf("%q", s))
			continue
		}
		parts = append(parts, fmt.Sprint(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
