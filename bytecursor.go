// Package bytecursor provides a typed, bounds-checked binary cursor over
// contiguous memory, with explicit endianness control and optional growth.
//
// A cursor borrows memory from the caller and walks it with typed read and
// write operations. It is the in-memory half of a small binary I/O toolkit;
// the filestream package applies the same operation surface to files, and the
// compress package layers checksummed, compressed block frames on top of
// cursors.
//
// # Core Features
//
//   - Typed reads and writes for all fixed-size scalars, plus generic
//     Read[T]/Write[T] for structs, arrays and slices of them
//   - Explicit little/big-endian selection per cursor, with byte swapping
//     restricted to types whose layout survives it
//   - Checked operation by default (errors on any out-of-bounds access) with
//     a per-cursor unchecked escape hatch for externally validated hot paths
//   - Growth callbacks so a cursor can write past the end of a resizable
//     container, including a built-in doubling policy and a pooled variant
//   - Zero-copy typed views into the underlying bytes
//
// # Basic Usage
//
// Reading a fixed layout from a byte slice:
//
//	import (
//	    "github.com/arloliu/bytecursor"
//	    "github.com/arloliu/bytecursor/cursor"
//	)
//
//	c := bytecursor.New(data)
//	magic, _ := c.ReadUint32()
//	count, _ := c.ReadUint16()
//	entries, _ := cursor.ReadSlice[Entry](c, int(count))
//
// Building a buffer that grows as values are appended:
//
//	var backing []byte
//	c := bytecursor.NewGrowable(&backing)
//	_ = c.WriteUint32(0x4D454231)
//	_ = cursor.Write(c, header)
//	payload := c.Data()[:c.Tell()]
//
// # Package Structure
//
// This package re-exports the cursor constructors and provides a pooled
// scratch-buffer cursor for transient encoding work. The cursor package holds
// the full operation surface, filestream the file-backed counterpart, and
// compress the codecs and block framing.
package bytecursor

import (
	"github.com/arloliu/bytecursor/cursor"
	"github.com/arloliu/bytecursor/internal/pool"
)

// Whence re-exports the seek anchor type.
type Whence = cursor.Whence

// Seek anchors.
const (
	Start   = cursor.Start
	Current = cursor.Current
	End     = cursor.End
)

// GrowFunc re-exports the growth callback type.
type GrowFunc = cursor.GrowFunc

// New creates a fixed-capacity cursor over buf.
func New(buf []byte) *cursor.Cursor {
	return cursor.New(buf)
}

// NewWithGrow creates a cursor over buf with a custom growth callback.
func NewWithGrow(buf []byte, grow GrowFunc) *cursor.Cursor {
	return cursor.NewWithGrow(buf, grow)
}

// NewGrowable creates a cursor over *backing that doubles the backing slice
// whenever a write needs more room.
func NewGrowable(backing *[]byte) *cursor.Cursor {
	return cursor.NewGrowable(backing)
}

// NewBuffer returns a growable cursor backed by a pooled scratch buffer,
// along with a release function that returns the buffer to the pool. The
// cursor and any slices derived from it must not be used after release.
//
// Intended for transient encoding work:
//
//	c, release := bytecursor.NewBuffer()
//	defer release()
//	_ = c.WriteUint32(magic)
//	out := append([]byte(nil), c.Data()[:c.Tell()]...)
func NewBuffer() (*cursor.Cursor, func()) {
	bb := pool.GetScratchBuffer()
	c := cursor.NewWithGrow(bb.Bytes(), func(_ *cursor.Cursor, required int) []byte {
		return bb.WindowTo(required)
	})

	return c, func() { pool.PutScratchBuffer(bb) }
}
