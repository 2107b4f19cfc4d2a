// Package assets holds the stylesheet and images served under /assets/.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed style.css img
var files embed.FS

func FS() fs.FS {
	return files
}
