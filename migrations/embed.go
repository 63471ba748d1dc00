// Package migrations embeds the goose SQL migrations so the server and the
// integration tests apply exactly the schema that ships in the binary.
package migrations

import "embed"

// FS holds all *.sql migration files, for goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
