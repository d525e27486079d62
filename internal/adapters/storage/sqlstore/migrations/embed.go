// Package migrations holds the schema for the SQL repository store. Every
// file must run unchanged on SQLite and Postgres.
package migrations

import "embed"

// FS contains the embedded schema migrations.
//
//go:embed *.sql
var FS embed.FS
