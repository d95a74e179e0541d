//go:build !linux && !darwin

package filestream

import (
	"fmt"
	"os"

	"github.com/arloliu/bytecursor/cursor"
	"github.com/arloliu/bytecursor/errs"
)

// Mapping is a portable stand-in for a memory-mapped file view on platforms
// without the unix mmap path: the file is read fully into memory and Sync
// writes the buffer back.
type Mapping struct {
	path string
	data []byte
}

// Map reads path fully into memory. The file must be non-empty, matching the
// mmap-backed implementation.
func Map(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot map empty file: %s", path)
	}

	return &Mapping{path: path, data: data}, nil
}

// Bytes returns the in-memory copy of the file. The slice is invalid after Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Cursor returns a fixed-capacity cursor over the in-memory copy.
func (m *Mapping) Cursor() *cursor.Cursor {
	return cursor.New(m.data)
}

// Sync writes the buffer back to the file.
func (m *Mapping) Sync() error {
	if m.data == nil {
		return errs.ErrClosed
	}

	return os.WriteFile(m.path, m.data, 0o644)
}

// Close releases the buffer, writing it back first.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}
	err := m.Sync()
	m.data = nil

	return err
}
