package db

import (
	"embed"
	"fmt"

	_ "github.com/tfkr-ae/taxstat/db/migrations"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql migrations/*.go
var embedMigrations embed.FS

// Repository provides a centralized structure for database operations,
// embedding the database connection. It implements domain.TableRepository.
type Repository struct {
	dbConn *sqlx.DB // dbConn is the active database connection pool.
}

// NewTaxRepo initializes a new Repository with the given sqlx.DB database connection.
func NewTaxRepo(db *sqlx.DB) *Repository {
	return &Repository{
		dbConn: db,
	}
}

// Close terminates the database connection.
// It is critical to call this to free up database resources.
func (repo *Repository) Close() error {
	err := repo.dbConn.Close()
	if err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}

// Open establishes a connection to an existing SQLite database file for
// the read path. No migrations are applied.
//
// The `name` parameter should be the file path for the SQLite database.
func Open(name string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", name)
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	db.SetMaxOpenConns(1)
	return db, nil
}

// Init establishes a connection to a SQLite database file and applies all
// pending migrations, creating the tax_records table and its sample
// dataset. It is used by the seed command and the tests, never by the
// read path.
//
// It returns a ready-to-use sqlx.DB connection pool or an error if the
// connection or migrations fail.
func Init(name string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000&_fk=true", name))
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	db.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("applying migration : %w", err)
	}
	return db, nil
}
