// Package web embeds the PadNexus UI pages and the configuration hub.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var embeddedFS embed.FS

// StaticFS returns the embedded pages rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(embeddedFS, "static")
}
