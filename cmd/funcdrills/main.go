package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Pure-Company/funcdrills/internal/cli"
	"github.com/Pure-Company/funcdrills/internal/logging"
)

var version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "funcdrills",
		Short: "Small functional-programming drills",
		Long: `funcdrills runs the drills of the funcdrills library from the command line:
number classification, guarded application, pairs, tuple utilities,
Fibonacci generators, and bigram frequencies.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/funcdrills/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringP("output", "o", cli.FormatText, "output format (text, json, yaml)")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	a.v.SetDefault("fib.count", 10)

	rootCmd.AddCommand(a.isNumberCmd())
	rootCmd.AddCommand(a.guardCmd())
	rootCmd.AddCommand(a.pairCmd())
	rootCmd.AddCommand(a.sizesCmd())
	rootCmd.AddCommand(a.oddLenCmd())
	rootCmd.AddCommand(a.fibCmd())
	rootCmd.AddCommand(a.bigramsCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		a.v.AddConfigPath(fmt.Sprintf("%s/.config/funcdrills", home))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("FUNCDRILLS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults apply without a config file
	}

	if err := logging.Setup(cmd.ErrOrStderr(), a.v.GetString("logging.level"), a.v.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "output", a.v.GetString("output.format"))
	return nil
}

// printer returns a Printer for the configured output format.
func (a *app) printer(cmd *cobra.Command) (*cli.Printer, error) {
	return cli.NewPrinter(cmd.OutOrStdout(), a.v.GetString("output.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "funcdrills %s\n", version)
		},
	}
}
