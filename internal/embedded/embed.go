// Package embedded compiles a starter content directory into the binary
// so the client and CLI work without any files on disk.
package embedded

import (
	"embed"
	"io/fs"
)

//go:embed content/*
var root embed.FS

// FS returns the embedded content directory as a filesystem rooted at the
// content files themselves.
func FS() fs.FS {
	sub, err := fs.Sub(root, "content")
	if err != nil {
		// The subdirectory is compiled in; this cannot fail at runtime.
		panic(err)
	}
	return sub
}
