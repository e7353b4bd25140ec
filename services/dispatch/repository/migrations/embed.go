package migrations

import "embed"

// FS contains the dispatch schema for each supported database driver.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
