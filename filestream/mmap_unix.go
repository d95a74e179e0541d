//go:build linux || darwin

package filestream

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/arloliu/bytecursor/cursor"
	"github.com/arloliu/bytecursor/errs"
)

// Mapping is a writable memory-mapped view of a file. Cursors created from
// it read and write the mapped bytes directly; Sync flushes dirty pages back
// to the file.
type Mapping struct {
	f    *os.File
	data []byte
}

// Map maps path read-write into memory. The file must be non-empty; a
// mapping has fixed capacity, so cursors over it never grow.
func Map(path string) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.Size() == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("cannot map empty file: %s", path)
	}

	data, err := syscall.Mmap(
		int(f.Fd()),
		0,
		int(st.Size()),
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_SHARED,
	)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return &Mapping{f: f, data: data}, nil
}

// Bytes returns the mapped region. The slice is invalid after Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Cursor returns a fixed-capacity cursor over the mapped region.
func (m *Mapping) Cursor() *cursor.Cursor {
	return cursor.New(m.data)
}

// Sync flushes modified pages of the mapping to the underlying file.
func (m *Mapping) Sync() error {
	if m.data == nil {
		return errs.ErrClosed
	}

	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close unmaps the region and closes the file. Cursors and slices derived
// from the mapping must not be used afterwards.
func (m *Mapping) Close() error {
	var err error
	if m.data != nil {
		err = syscall.Munmap(m.data)
		m.data = nil
	}
	if m.f != nil {
		if cerr := m.f.Close(); err == nil {
			err = cerr
		}
		m.f = nil
	}

	return err
}
