// Package domain defines the core data structures of the taxstat application.
// It contains the primary domain models, such as Record, Table and Result,
// as well as the interfaces that define the contracts for loading records
// from external sources.
//
// This package serves as the central point for application-wide types,
// ensuring a clean separation between the aggregation logic and its
// implementation details, such as the CSV parser, the database, or the CLI.
// By defining interfaces for sources and repositories, the domain package
// remains independent of the storage technology.
package domain
