// Package migrations embeds the journal schema so binaries carry it.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
