// Package migrations embeds the goose migration scripts so binaries and the
// test helper apply the same schema without shipping SQL files separately.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
