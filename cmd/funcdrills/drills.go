package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Pure-Company/funcdrills"
	"github.com/Pure-Company/funcdrills/internal/cli"
)

var errNegativeCount = errors.New("count must not be negative")

func (a *app) isNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isnum <value>",
		Short: "Report whether a value is a number",
		Long: `Decode the argument as a YAML scalar and classify it.

Booleans are never numbers; strings are numbers only when made of digits.`,
		Example: `  funcdrills isnum 5       # true
  funcdrills isnum "'10'"  # true, the string "10"
  funcdrills isnum true    # false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := cli.ParseValue(args[0])
			if err != nil {
				return err
			}
			slog.Debug("classifying value", "value", value, "type", fmt.Sprintf("%T", value))

			ok, err := funcdrills.IsNumber(value)
			if err != nil {
				return err
			}
			return a.emit(cmd, "is_number", ok)
		},
	}
}

func (a *app) guardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guard <value>",
		Short: "Double a value only if it is a positive integer",
		Long: `Run Doubling guarded by IsPositiveInteger through TypeCheck, MakeSafe,
and MakeSafeLambda. Illegal input yields false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := cli.ParseValue(args[0])
			if err != nil {
				return err
			}

			variants := map[string]funcdrills.SafeFunc{
				"type_check": func(x any) any {
					return funcdrills.TypeCheck(funcdrills.Doubling, funcdrills.IsPositiveInteger, x)
				},
				"make_safe":        funcdrills.MakeSafe(funcdrills.Doubling, funcdrills.IsPositiveInteger),
				"make_safe_lambda": funcdrills.MakeSafeLambda(funcdrills.Doubling, funcdrills.IsPositiveInteger),
			}

			results := make(map[string]any, len(variants))
			for name, safe := range variants {
				results[name] = safe(value)
			}
			slog.Debug("guarded application", "value", value, "results", results)

			return a.emit(cmd, "result", results["make_safe"])
		},
	}
}

func (a *app) pairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pair <first> <second> <selector>",
		Short: "Build a pair and send it a selector message",
		Long:  `Selectors are 0 (first), 1 (second), and pair (both, as a tuple).`,
		Example: `  funcdrills pair 10 hello 1     # hello
  funcdrills pair 10 hello pair  # (10, "hello")`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args))
			for i, arg := range args {
				v, err := cli.ParseValue(arg)
				if err != nil {
					return err
				}
				values[i] = v
			}

			result, err := funcdrills.MakePair(values[0], values[1])(values[2])
			if err != nil {
				return err
			}
			return a.emit(cmd, "value", result)
		},
	}
}

func (a *app) sizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sizes <tuples>",
		Short:   "Print the length of every tuple",
		Example: `  funcdrills sizes '[[1, 2], [3, 4, 5], [6, 7, 8, 9]]'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuples, err := cli.ParseTuples(args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd, "sizes", funcdrills.Sizes(tuples))
		},
	}
}

func (a *app) oddLenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "oddlen <tuples>",
		Short:   "Keep only the tuples of odd length",
		Example: `  funcdrills oddlen '[[1, 2], [3, 4, 5], [], [a, b, c]]'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuples, err := cli.ParseTuples(args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd, "odd_len_only", funcdrills.OddLenOnly(tuples))
		},
	}
}

func (a *app) fibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print the first Fibonacci numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count := a.v.GetInt("fib.count")
			if count < 0 {
				return fmt.Errorf("%w: %d", errNegativeCount, count)
			}
			return a.emit(cmd, "fibonacci", funcdrills.Fibonacci(count))
		},
	}

	cmd.Flags().IntP("count", "n", 10, "how many numbers to print")
	_ = a.v.BindPFlag("fib.count", cmd.Flags().Lookup("count"))

	return cmd
}

func (a *app) bigramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bigrams [text]",
		Short: "Print normalized bigram frequencies",
		Long: `Lowercase the text, drop spaces, and print how often each pair of adjacent
characters occurs. Without an argument the text is read from stdin.`,
		Example: `  funcdrills bigrams "Viva la vida"
  cat notes.txt | funcdrills bigrams -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				freqs map[string]float64
				err   error
			)
			if len(args) == 1 {
				freqs, err = funcdrills.BigramFrequencies(args[0])
			} else {
				freqs, err = funcdrills.BigramFrequenciesFrom(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			slog.Debug("bigrams computed", "distinct", len(freqs))
			return a.emit(cmd, "bigrams", freqs)
		},
	}
}

func (a *app) emit(cmd *cobra.Command, label string, v any) error {
	p, err := a.printer(cmd)
	if err != nil {
		return err
	}
	return p.Print(label, v)
}
