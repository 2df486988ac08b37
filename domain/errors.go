package domain

import (
	"fmt"
	"strings"
)

// SourceNotFoundError indicates that the source file or database does not
// exist, or that the named table is missing from an existing database.
type SourceNotFoundError struct {
	Path  string
	Table string // set when a table inside an existing database is missing
}

func (e *SourceNotFoundError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("source table %q not found in %s", e.Table, e.Path)
	}
	return fmt.Sprintf("source %s not found", e.Path)
}

// SchemaError indicates that one or more mandatory columns could not be
// matched after case-insensitive normalization of the source's columns.
type SchemaError struct {
	Missing []string // canonical names of the unmatched columns
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("source does not contain all mandatory columns, missing: %s", strings.Join(e.Missing, ", "))
}

// DataFormatError indicates a source value that cannot be coerced into
// the record shape: a non-numeric or negative measure, or a blank state
// or county. A single bad value rejects the whole load.
type DataFormatError struct {
	Row    int    // 1-based data row number, header excluded
	Column string // canonical column name
	Value  string // offending raw value
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("row %d: column %q has invalid value %q", e.Row, e.Column, e.Value)
}
