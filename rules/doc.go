// Package rules checks scalar values against the storage constraints of
// common MySQL column types before they are written.
//
// Every validator is a pure function returning a Result. A value that does
// not fit its column is reported as an Invalid result carrying a message of
// the form
//
//	TINYINT unsigned: Value '300' is out of range.
//
// Validators never panic and never return an error for bad input; Result.Err
// converts an Invalid result into an error when a caller wants one.
//
// Numeric validators accept any value Canonical understands: Go integer and
// float kinds, string, []byte and json.Number. Text and temporal validators
// take a string.
package rules
