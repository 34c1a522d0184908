// Package assets embeds the stylesheet, script and images served next to
// the page.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// FS returns the static files rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}
