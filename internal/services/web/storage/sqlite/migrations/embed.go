// Package migrations contains embedded SQL migrations for the web session store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
