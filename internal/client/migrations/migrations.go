// Package migrations embeds the goose migration files for the client
// key-value store. The SQL is kept portable between SQLite and Postgres.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
