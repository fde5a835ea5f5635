// Package postgres provides PostgreSQL implementations of the store
// interfaces. Each store accepts a database handle and maps driver errors to
// the sentinel errors declared in the store package, so callers never see
// pgconn or database/sql error types.
package postgres
