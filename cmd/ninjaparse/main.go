package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dangerclosesec/ninjaparse/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(gentableCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fdtestCmd)
}

var rootCmd = &cobra.Command{
	Use:   "ninjaparse",
	Short: "ninjaparse is a toolkit for build file lexing",
	Long: `ninjaparse generates the byte-class tables used by the build file lexer,
parses build files, and writes stress-test fixtures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if err := cfg.ValidateRoot(); err != nil {
			return err
		}

		level := cfg.SlogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
