// Package easydb builds the SQL text for MySQL style upserts from an ordered
// set of named parameters and opens database handles from explicit
// configuration.
//
// Statements use colon-prefixed placeholders (:name) which:
//   - Keep column names and bound values visibly paired
//   - Are rewritten to driver syntax by BindParams (? for MySQL and SQLite)
//   - Work with IDE SQL syntax highlighting
//
// Table and column names are written into statements verbatim. They must come
// from trusted code, never from request data; use FilterColumns or a Schema
// to drop unexpected keys before building a statement.
//
// Column values can be checked against their column types with the rules
// subpackage before a write.
package easydb

// Identifier is a column name, e.g. id, created_at or _rev: a letter or
// underscore followed by letters, digits or underscores.
type Identifier string

// SQLQuery is SQL text, either with :name placeholders or already rewritten
// for a specific driver.
type SQLQuery string
