package vfs

import (
	"io/fs"
	"path"
	"sync"
	"time"
)

// MemFS implements FS using an in-memory file map. It is used by tests
// to stand in for config files and for the sound and vibration pattern
// files the resource parsers probe for.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// Ensure MemFS implements FS.
var _ FS = (*MemFS)(nil)

// WriteFile stores data under path, creating or replacing the entry.
func (m *MemFS) WriteFile(filePath string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	content := make([]byte, len(data))
	copy(content, data)
	m.files[path.Clean(filePath)] = content
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[path.Clean(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification.
	content := make([]byte, len(f))
	copy(content, f)
	return content, nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleaned := path.Clean(filePath)
	f, ok := m.files[cleaned]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
	}
	return &memFileInfo{name: path.Base(cleaned), size: int64(len(f))}, nil
}

// Exists returns true if the path exists.
func (m *MemFS) Exists(filePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[path.Clean(filePath)]
	return ok
}

// memFileInfo implements fs.FileInfo for in-memory files.
type memFileInfo struct {
	name string
	size int64
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return fi.size }
func (fi *memFileInfo) Mode() fs.FileMode  { return 0o644 }
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return false }
func (fi *memFileInfo) Sys() any           { return nil }
