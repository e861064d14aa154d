// Package migrations embeds the versioned SQL schema migrations applied by
// the ledger store at open time.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
