// Command easydb checks rows against column schemas and writes them with
// REPLACE INTO statements.
//
// Usage:
//
//	# Validate a row file against a schema
//	easydb check --schema users.yaml --row row.yaml
//
//	# Print the upsert statement and its bound arguments
//	easydb upsert --schema users.yaml --row row.yaml
//
//	# Write the row to the database named by TEST_DB_* variables
//	easydb upsert --schema users.yaml --row row.yaml --exec --prefix TEST
//
//	# Check that the credentials connect
//	easydb ping --prefix TEST --env-file .env --local
package main

func main() {
	Execute()
}
