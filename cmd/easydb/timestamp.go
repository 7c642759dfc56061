package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikeschinkel/go-easydb"
)

var timestampUTC bool

var timestampCmd = &cobra.Command{
	Use:   "timestamp",
	Short: "Print the current time in DATETIME format",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ts := easydb.CurrentTimestamp()
		if timestampUTC {
			ts = easydb.FormatTimestamp(time.Now().UTC())
		}
		fmt.Fprintln(cmd.OutOrStdout(), ts)
	},
}

func init() {
	rootCmd.AddCommand(timestampCmd)

	timestampCmd.Flags().BoolVar(&timestampUTC, "utc", false, "print UTC instead of local time")
}
