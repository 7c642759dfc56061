package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikeschinkel/go-easydb/internal/logging"
)

var (
	// Global flags
	logLevel  string
	logFormat string

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "easydb",
	Short: "easydb - column checks and upsert statements for MySQL and SQLite",
	Long: `easydb validates rows against declared column types and builds
REPLACE INTO statements for them.

A schema is a YAML file naming a table and its columns:

  table: users
  columns:
    - name: id
      type: INT UNSIGNED
    - name: email
      type: VARCHAR(255)

Rows are YAML or JSON objects keyed by column name. Keys that are not
columns of the schema are dropped before a statement is built.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{
			Level:  logLevel,
			Format: logFormat,
			Writer: cmd.ErrOrStderr(),
		}, Version)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: json, text")
}
