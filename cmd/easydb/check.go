package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mikeschinkel/go-easydb"
)

var errRowInvalid = errors.New("row is invalid")

var checkFlags struct {
	schema  string
	row     string
	metrics bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a row against a schema",
	Long: `Check every value of a row against the type of its column.

Values for names that are not columns of the schema are ignored. Each
invalid value is printed with the reason, and the command fails if there
is at least one.

Examples:
  # Validate a row
  easydb check --schema users.yaml --row row.yaml

  # Also print the check counters
  easydb check --schema users.yaml --row row.json --metrics`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.schema, "schema", "", "schema file (YAML)")
	checkCmd.Flags().StringVar(&checkFlags.row, "row", "", "row file (YAML or JSON)")
	checkCmd.Flags().BoolVar(&checkFlags.metrics, "metrics", false, "print check counters after the result")
	_ = checkCmd.MarkFlagRequired("schema")
	_ = checkCmd.MarkFlagRequired("row")
}

func runCheck(cmd *cobra.Command, args []string) error {
	schema, err := easydb.LoadSchema(checkFlags.schema)
	if err != nil {
		return err
	}
	ps, err := readRow(checkFlags.row)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := easydb.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}
	schema = schema.WithMetrics(metrics)

	out := cmd.OutOrStdout()
	checked := schema.Filter(ps)
	logger.Debug("checking row",
		"table", schema.Table(),
		"values", len(ps),
		"columns", len(checked),
	)

	err = schema.Validate(checked)
	if err == nil {
		fmt.Fprintf(out, "ok: %d of %d values valid for %s\n", len(checked), len(ps), schema.Table())
	} else {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(out, "invalid: %s\n", line)
		}
		err = errRowInvalid
	}

	if checkFlags.metrics {
		if merr := writeMetrics(out, reg); merr != nil {
			return merr
		}
	}
	return err
}

// writeMetrics prints every counter in reg as name{labels} value.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g",
				mf.GetName(),
				strings.Join(labels, ","),
				m.GetCounter().GetValue(),
			))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
