package taxstat

import (
	"fmt"
	"os"

	"github.com/tfkr-ae/taxstat/db"
	"github.com/tfkr-ae/taxstat/domain"
)

var _ domain.TableSource = (*SQLiteSource)(nil)

// SQLiteSource loads tax records from a named table in a SQLite database
// file. The table's columns are matched onto the canonical set with the
// same normalization as CSV headers.
type SQLiteSource struct {
	Path  string
	Table string
}

// NewSQLiteSource returns a source reading the named table from the
// database file at path.
func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{Path: path, Table: table}
}

// Load implements domain.TableSource. The database connection is held
// for the duration of the call and closed before the table is returned;
// the user's database is only ever queried, never migrated or written.
func (src *SQLiteSource) Load() (domain.Table, error) {
	// the sqlite driver would create an empty database for a missing path
	if _, err := os.Stat(src.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.SourceNotFoundError{Path: src.Path}
		}
		return nil, fmt.Errorf("checking sqlite source %s : %w", src.Path, err)
	}

	dbConn, err := db.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite source %s : %w", src.Path, err)
	}
	repo := db.NewTaxRepo(dbConn)
	defer repo.Close()

	exists, err := repo.TableExists(src.Table)
	if err != nil {
		return nil, fmt.Errorf("checking table %s : %w", src.Table, err)
	}
	if !exists {
		return nil, &domain.SourceNotFoundError{Path: src.Path, Table: src.Table}
	}

	columns, rows, err := repo.ReadAll(src.Table)
	if err != nil {
		return nil, fmt.Errorf("reading table %s : %w", src.Table, err)
	}

	return buildTable(columns, rows)
}
