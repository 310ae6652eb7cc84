// Package web embeds the browser page served at /.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Assets returns the page files rooted at the static directory.
func Assets() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
