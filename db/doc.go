// Package db provides the SQLite layer for the taxstat application.
// It encapsulates all interactions with the underlying database:
//
//   - Establishing connections for the read path (`Open`) and for
//     seeding (`Init`), which applies the embedded goose migrations.
//   - Implementing the domain.TableRepository interface to perform the
//     full-table read the SQLite source is built on.
//   - Managing the sample dataset migrations (`migrations/`).
//
// The read path never applies migrations: the database file belongs to
// the user and is only ever queried.
package db
