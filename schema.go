package taxstat

import (
	"strconv"
	"strings"

	"github.com/tfkr-ae/taxstat/domain"
)

// columnIndex maps each canonical column to its position in the source row.
type columnIndex map[string]int

// normalizeColumn folds a source header or column name onto its canonical
// form: lowercased, trimmed, inner spaces and hyphens as underscores.
// "Tax Rate", "TAX_RATE" and " tax rate " all normalize to "tax_rate".
func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// mapColumns matches source columns against the canonical set. Columns
// outside the set are ignored; on duplicates the first match wins.
func mapColumns(header []string) (columnIndex, error) {
	index := make(columnIndex)
	for i, name := range header {
		canonical := normalizeColumn(name)
		if _, ok := index[canonical]; ok {
			continue
		}
		switch canonical {
		case domain.ColumnState, domain.ColumnCounty, domain.ColumnTaxRate, domain.ColumnTaxAmount:
			index[canonical] = i
		}
	}

	var missing []string
	for _, column := range domain.CanonicalColumns() {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}
	return index, nil
}

// buildTable converts raw source rows into a Table. It is shared by the
// CSV and SQLite loaders so both fail identically on bad data. A single
// invalid value rejects the whole load.
func buildTable(header []string, rows [][]string) (domain.Table, error) {
	index, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	table := make(domain.Table, 0, len(rows))
	for i, fields := range rows {
		record, err := buildRecord(index, fields, i+1)
		if err != nil {
			return nil, err
		}
		table = append(table, record)
	}
	return table, nil
}

// buildRecord coerces one source row into a Record, enforcing the record
// invariants. The row number is 1-based and excludes the header.
func buildRecord(index columnIndex, fields []string, row int) (domain.Record, error) {
	var record domain.Record

	state, err := parseName(index, fields, domain.ColumnState, row)
	if err != nil {
		return record, err
	}
	county, err := parseName(index, fields, domain.ColumnCounty, row)
	if err != nil {
		return record, err
	}
	rate, err := parseMeasure(index, fields, domain.ColumnTaxRate, row)
	if err != nil {
		return record, err
	}
	amount, err := parseMeasure(index, fields, domain.ColumnTaxAmount, row)
	if err != nil {
		return record, err
	}

	record = domain.Record{
		State:     state,
		County:    county,
		TaxRate:   rate,
		TaxAmount: amount,
	}
	return record, nil
}

// parseName extracts a trimmed, non-empty string field.
func parseName(index columnIndex, fields []string, column string, row int) (string, error) {
	raw := fieldAt(index, fields, column)
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", &domain.DataFormatError{Row: row, Column: column, Value: raw}
	}
	return value, nil
}

// parseMeasure extracts a non-negative float field.
func parseMeasure(index columnIndex, fields []string, column string, row int) (float64, error) {
	raw := fieldAt(index, fields, column)
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	// the inverted comparison also rejects NaN, which ParseFloat accepts
	if err != nil || !(value >= 0) {
		return 0, &domain.DataFormatError{Row: row, Column: column, Value: raw}
	}
	return value, nil
}

// fieldAt returns the raw value of a canonical column, tolerating rows
// that are shorter than the header.
func fieldAt(index columnIndex, fields []string, column string) string {
	i := index[column]
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
