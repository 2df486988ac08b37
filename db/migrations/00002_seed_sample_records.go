package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func init() {
	goose.AddMigrationContext(upSeedSampleRecords, downSeedSampleRecords)
}

// Sample dataset: five states with two counties each. Per-state amount
// totals are 120000, 115000, 108000, 32000 and 116000, 491000 country-wide.
var sampleRecords = []struct {
	State     string
	County    string
	TaxRate   float64
	TaxAmount float64
}{
	{"California", "Los Angeles", 9.5, 70000},
	{"California", "San Diego", 7.75, 50000},
	{"Texas", "Harris", 8.25, 60000},
	{"Texas", "Travis", 8.25, 55000},
	{"New York", "Kings", 8.875, 58000},
	{"New York", "Erie", 8.75, 50000},
	{"Wyoming", "Laramie", 6, 20000},
	{"Wyoming", "Teton", 6, 12000},
	{"Florida", "Miami-Dade", 7, 66000},
	{"Florida", "Orange", 6.5, 50000},
}

func upSeedSampleRecords(ctx context.Context, tx *sql.Tx) error {
	insertQuery := `
		INSERT INTO tax_records (id, state, county, tax_rate, tax_amount)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, record := range sampleRecords {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("creating id for %s/%s : %w", record.State, record.County, err)
		}

		_, err = tx.ExecContext(ctx, insertQuery, id.String(), record.State, record.County, record.TaxRate, record.TaxAmount)
		if err != nil {
			return fmt.Errorf("inserting sample record %s/%s : %w", record.State, record.County, err)
		}
	}
	return nil
}

func downSeedSampleRecords(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM tax_records")
	if err != nil {
		return fmt.Errorf("removing sample records : %w", err)
	}
	return nil
}
