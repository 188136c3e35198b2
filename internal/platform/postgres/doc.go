// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver. It also owns connection setup,
// PostgreSQL error mapping and the embedded goose migrations.
package postgres
