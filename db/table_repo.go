package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tfkr-ae/taxstat/domain"
)

var _ domain.TableRepository = (*Repository)(nil)

// TableExists implements the domain.TableRepository interface.
// It reports whether a table with the given name exists in the database.
func (repo *Repository) TableExists(name string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`

	err := repo.dbConn.Get(&count, query, name)
	if err != nil {
		return false, fmt.Errorf("checking table %s : %w", name, err)
	}

	return count > 0, nil
}

// ReadAll implements the domain.TableRepository interface.
// It performs a full-table read and returns the column names plus every
// row with all values rendered as strings. Coercion into the record shape
// happens in the loader, so SQL rows fail exactly like CSV rows.
func (repo *Repository) ReadAll(table string) ([]string, [][]string, error) {
	query := fmt.Sprintf(`SELECT * FROM %s`, quoteIdentifier(table))

	rows, err := repo.dbConn.Queryx(query)
	if err != nil {
		return nil, nil, fmt.Errorf("selecting from %s : %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("getting columns of %s : %w", table, err)
	}

	var result [][]string
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, nil, fmt.Errorf("scanning row from %s : %w", table, err)
		}

		fields := make([]string, len(values))
		for i, value := range values {
			fields[i] = renderValue(value)
		}
		result = append(result, fields)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating rows of %s : %w", table, err)
	}

	return columns, result, nil
}

// quoteIdentifier wraps a table name in double quotes, escaping embedded
// quotes, so names with spaces or mixed case are queryable.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// renderValue converts a scanned SQLite value into its string form.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", v)
	}
}
