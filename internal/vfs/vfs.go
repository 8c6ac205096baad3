// Package vfs provides a small virtual file system abstraction.
//
// The settings compiler only reads: it discovers configuration files and
// checks whether referenced sound and vibration files exist. The FS
// interface covers exactly that, so tests can run against an in-memory
// implementation without touching disk.
package vfs

import "io/fs"

// FS is the read-only file system used by the settings compiler.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information.
	Stat(path string) (fs.FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool
}
