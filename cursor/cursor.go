// Package cursor implements a typed, bounds-checked binary cursor over a
// contiguous byte region or a growable backing container.
//
// A Cursor borrows the memory it walks; it never owns it. Callers guarantee
// the referenced bytes outlive the cursor, or supply a growth callback that
// keeps the view valid across reallocations. The position is a zero-based
// offset in the half-open range [0, Size()]: a position equal to Size() is a
// valid end-of-stream state, but any read or write there fails.
//
// # Checked and unchecked operation
//
// By default every operation validates its target against the view bounds and
// reports violations with errs.ErrOutOfBounds. Checking can be disabled per
// cursor with SetChecked(false) as an escape hatch for hot paths where bounds
// are externally guaranteed: violations are then not reported at all, seeks
// clamp into range, and reads or writes that do not fit produce unspecified
// partial results. Memory safety is preserved either way.
//
// # Endianness
//
// SetBigEndian selects the byte order of all subsequent multi-byte reads and
// writes. Values are swapped relative to the host order only when they are
// integral, floating-point, or enumeration types; a mismatched-order access
// to any other multi-byte type fails with errs.ErrUnsupportedEndianSwap
// rather than corrupt the value's internal layout.
//
// # Concurrency
//
// A Cursor is not safe for concurrent use. Callers needing concurrency must
// use independent cursors over disjoint regions or external synchronization.
package cursor

import (
	"fmt"

	"github.com/arloliu/bytecursor/endian"
	"github.com/arloliu/bytecursor/errs"
	"github.com/arloliu/bytecursor/internal/pod"
)

// Whence selects the reference point a seek offset is relative to.
type Whence int

const (
	// Start anchors the offset at the first byte of the view.
	Start Whence = iota
	// Current anchors the offset at the present position; it may be negative.
	Current
	// End counts the offset backwards from the end of the view:
	// Seek(n, End) places the position n bytes before the end.
	End
)

// String returns the anchor name.
func (w Whence) String() string {
	switch w {
	case Start:
		return "start"
	case Current:
		return "current"
	case End:
		return "end"
	default:
		return fmt.Sprintf("whence(%d)", int(w))
	}
}

// GrowFunc enlarges the backing store of a growable cursor. It is invoked
// whenever a write would exceed the current view and receives the total byte
// length the write requires. It must return a view whose first Size() old
// bytes are preserved and whose length is at least required, or nil when
// growth is refused, in which case the write fails with errs.ErrOutOfBounds.
type GrowFunc func(c *Cursor, required int) []byte

// Cursor is a movable read/write position over a borrowed byte view.
// The zero value is an empty, fixed, checked cursor; prefer the constructors.
type Cursor struct {
	buf       []byte
	pos       int
	grow      GrowFunc
	bigEndian bool
	checked   bool
}

// New creates a fixed-capacity cursor over buf. Writes past the end of buf
// fail; the view never grows.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf, checked: true}
}

// Of creates a fixed-capacity cursor over the raw bytes of a typed slice.
// The view length is len(elems) * sizeof(T). The slice's memory is aliased,
// not copied.
func Of[T any](elems []T) *Cursor {
	return New(pod.SliceBytes(elems))
}

// NewWithGrow creates a cursor over buf that calls grow whenever a write
// would exceed the current view.
func NewWithGrow(buf []byte, grow GrowFunc) *Cursor {
	return &Cursor{buf: buf, grow: grow, checked: true}
}

// NewGrowable creates a cursor over *backing with the built-in geometric
// growth policy: when a write needs more room, the backing slice's length is
// doubled (from a low-water mark of 1 when empty) until it covers the
// requested byte length, existing bytes are preserved, and the view is
// re-pointed at the reallocated storage.
func NewGrowable(backing *[]byte) *Cursor {
	c := &Cursor{buf: *backing, checked: true}
	c.grow = func(_ *Cursor, required int) []byte {
		n := len(*backing)
		for n < required {
			if n == 0 {
				n = 1
			} else {
				n *= 2
			}
		}
		if n != len(*backing) {
			grown := make([]byte, n)
			copy(grown, *backing)
			*backing = grown
		}

		return (*backing)[:required]
	}

	return c
}

// SetChecked toggles bounds and byte-order validation and returns the cursor
// for chaining. Checking is on by default. Disabling it is a deliberate
// escape hatch for hot paths where bounds are externally guaranteed: bound
// violations are no longer reported, and out-of-range operations yield
// unspecified (but memory-safe) results.
func (c *Cursor) SetChecked(checked bool) *Cursor {
	c.checked = checked
	return c
}

// Checked reports whether bounds and byte-order validation is enabled.
func (c *Cursor) Checked() bool {
	return c.checked
}

// SetBigEndian selects big-endian byte order for all subsequent multi-byte
// reads and writes and returns the cursor for chaining. The flag is not
// retroactive; bytes already written are untouched.
func (c *Cursor) SetBigEndian(bigEndian bool) *Cursor {
	c.bigEndian = bigEndian
	return c
}

// BigEndian reports whether the cursor reads and writes big-endian values.
func (c *Cursor) BigEndian() bool {
	return c.bigEndian
}

// Growable reports whether the cursor has a growth callback attached.
func (c *Cursor) Growable() bool {
	return c.grow != nil
}

// Tell returns the current position.
func (c *Cursor) Tell() int {
	return c.pos
}

// Size returns the total addressable byte count of the current view.
func (c *Cursor) Size() int {
	return len(c.buf)
}

// Remaining returns the byte count between the position and the end of the view.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Data returns the current view. The slice aliases the backing memory and is
// invalidated by any growth.
func (c *Cursor) Data() []byte {
	return c.buf
}

// Seek relocates the position relative to the given anchor. The final
// resulting position is validated against [0, Size()]; an out-of-range
// target fails with errs.ErrOutOfBounds and leaves the position unchanged.
// With checking disabled the target is clamped into range instead.
func (c *Cursor) Seek(offset int, whence Whence) error {
	target := offset
	switch whence {
	case Current:
		target = c.pos + offset
	case End:
		target = len(c.buf) - offset
	}

	if target < 0 || target > len(c.buf) {
		if c.checked {
			return fmt.Errorf("%w: seek %d from %s lands at %d in view of %d bytes",
				errs.ErrOutOfBounds, offset, whence, target, len(c.buf))
		}
		target = min(max(target, 0), len(c.buf))
	}
	c.pos = target

	return nil
}

// Skip advances the position by n bytes; n may be negative. Skip(0) is a
// no-op that never touches the position, even when it already sits at the
// end of the view.
func (c *Cursor) Skip(n int) error {
	if n == 0 {
		return nil
	}

	return c.Seek(n, Current)
}

// Peek returns the byte offset bytes ahead of the position without moving
// it. Offset 0 addresses the byte at the current position. With checking
// disabled an out-of-range peek returns zero.
func (c *Cursor) Peek(offset int) (byte, error) {
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.buf) {
		if c.checked {
			return 0, fmt.Errorf("%w: peek at offset %d from position %d in view of %d bytes",
				errs.ErrOutOfBounds, offset, c.pos, len(c.buf))
		}

		return 0, nil
	}

	return c.buf[idx], nil
}

// engine returns the byte-order engine matching the cursor's endianness flag.
func (c *Cursor) engine() endian.EndianEngine {
	return endian.Engine(c.bigEndian)
}

// fits reports whether n more bytes are addressable at the position.
func (c *Cursor) fits(n int) bool {
	return c.pos >= 0 && c.pos+n <= len(c.buf)
}

// take returns the window an n-byte read touches and advances past it.
// Under checking a short window is an error and the position stays put; with
// checking disabled the window is clamped to the bytes that exist.
func (c *Cursor) take(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	start, end := c.pos, c.pos+n
	if start < 0 || end > len(c.buf) {
		if c.checked {
			return nil, fmt.Errorf("%w: read of %d bytes at position %d in view of %d bytes",
				errs.ErrOutOfBounds, n, c.pos, len(c.buf))
		}
		start = min(max(start, 0), len(c.buf))
		end = min(max(end, start), len(c.buf))
	}

	w := c.buf[start:end]
	c.pos = end

	return w, nil
}

// writeWindow returns the window an n-byte write touches and advances past
// it, invoking the growth callback first when the write does not fit.
func (c *Cursor) writeWindow(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	end := c.pos + n
	if c.pos >= 0 && end > len(c.buf) && c.grow != nil {
		if grown := c.grow(c, end); grown != nil {
			c.buf = grown
		}
	}

	start := c.pos
	if start < 0 || end > len(c.buf) {
		if c.checked {
			return nil, fmt.Errorf("%w: write of %d bytes at position %d in view of %d bytes",
				errs.ErrOutOfBounds, n, c.pos, len(c.buf))
		}
		start = min(max(start, 0), len(c.buf))
		end = min(max(end, start), len(c.buf))
	}

	w := c.buf[start:end]
	c.pos = end

	return w, nil
}
