// Package migrations embeds the SQL schema of the travel agency database.
// The API never migrates at runtime; the schema is owned externally. Tests
// apply it through the goose programmatic API so integration tests run
// against the same tables production uses.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem path.
//
//go:embed *.sql
var FS embed.FS
