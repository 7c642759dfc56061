package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikeschinkel/go-easydb"
)

var upsertFlags struct {
	schema string
	row    string
	exec   bool
}

var upsertCmd = &cobra.Command{
	Use:   "upsert",
	Short: "Build the REPLACE INTO statement for a row",
	Long: `Filter a row to the columns of a schema, validate it and print the
REPLACE INTO statement with its bound arguments. With --exec the statement
is run against the database named by the connection flags.

Examples:
  # Print the statement
  easydb upsert --schema users.yaml --row row.yaml

  # Write the row using TEST_DB_* credentials
  easydb upsert --schema users.yaml --row row.yaml --exec --prefix TEST`,
	Args: cobra.NoArgs,
	RunE: runUpsert,
}

func init() {
	rootCmd.AddCommand(upsertCmd)

	upsertCmd.Flags().StringVar(&upsertFlags.schema, "schema", "", "schema file (YAML)")
	upsertCmd.Flags().StringVar(&upsertFlags.row, "row", "", "row file (YAML or JSON)")
	upsertCmd.Flags().BoolVar(&upsertFlags.exec, "exec", false, "execute the statement")
	_ = upsertCmd.MarkFlagRequired("schema")
	_ = upsertCmd.MarkFlagRequired("row")
	addConnectionFlags(upsertCmd)
}

func runUpsert(cmd *cobra.Command, args []string) error {
	schema, err := easydb.LoadSchema(upsertFlags.schema)
	if err != nil {
		return err
	}
	ps, err := readRow(upsertFlags.row)
	if err != nil {
		return err
	}

	named, filtered, err := schema.Upsert(ps)
	if err != nil {
		return err
	}
	query, bound, err := easydb.BindParams(named, filtered, easydb.QuestionMark)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, named)
	fmt.Fprintln(out, query)
	for i, p := range filtered {
		fmt.Fprintf(out, "  %d %s = %v\n", i+1, p.Name, bound[i])
	}
	if !upsertFlags.exec {
		return nil
	}

	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck

	query, bound, err = easydb.BindParams(named, filtered, db.Placeholder())
	if err != nil {
		return err
	}
	res, err := db.ExecContext(cmd.Context(), string(query), bound...)
	if err != nil {
		return fmt.Errorf("executing upsert on %s: %w", schema.Table(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	logger.Info("row written", "table", schema.Table(), "rows_affected", n)
	fmt.Fprintf(out, "ok: %d rows affected\n", n)
	return nil
}
