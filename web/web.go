// Package web embeds the static front-end served under /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// Static returns the file system rooted at the static asset directory.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// The static directory is embedded at build time; a failure here is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	return sub
}
