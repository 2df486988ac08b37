package domain

// Canonical column names every source must provide. Source header or
// column names are matched onto these case-insensitively.
const (
	ColumnState     = "state"
	ColumnCounty    = "county"
	ColumnTaxRate   = "tax_rate"
	ColumnTaxAmount = "tax_amount"
)

// CanonicalColumns returns the mandatory columns in canonical order.
func CanonicalColumns() []string {
	return []string{ColumnState, ColumnCounty, ColumnTaxRate, ColumnTaxAmount}
}

// Record is a single tax record. State and County are non-empty trimmed
// strings, TaxRate and TaxAmount are non-negative; the loaders reject any
// source row that violates these invariants.
type Record struct {
	State     string
	County    string
	TaxRate   float64
	TaxAmount float64
}

// Table is the fully loaded sequence of records for one run. It is built
// once by a TableSource and never mutated afterwards.
type Table []Record

// TableSource is the interface implemented by the record loaders (CSV
// file, SQLite table). Load opens the underlying source, reads it fully
// and releases the handle before returning.
type TableSource interface {
	Load() (Table, error)
}

// TableRepository defines the contract for SQL-backed record reads.
// ReadAll returns the raw column names and rows with every value rendered
// as a string, so the shared normalization and coercion step treats SQL
// rows exactly like CSV rows.
type TableRepository interface {
	// TableExists reports whether a table with the given name exists.
	TableExists(name string) (bool, error)
	// ReadAll performs a full-table read of the named table.
	ReadAll(table string) (columns []string, rows [][]string, err error)
	// Close terminates the underlying database connection.
	Close() error
}
