package cursor

import (
	"fmt"
	"reflect"

	"github.com/arloliu/bytecursor/endian"
	"github.com/arloliu/bytecursor/errs"
	"github.com/arloliu/bytecursor/internal/pod"
)

// Generic typed entry points. Go's methods cannot carry type parameters, so
// these live at package level and take the cursor as their first argument:
//
//	v, err := cursor.Read[uint32](c)
//	err = cursor.Write(c, header)
//
// T must be plain-old-data: fixed size, no internal pointers. Pointer-carrying
// kinds are rejected with errs.ErrInvalidType; struct and array purity is the
// caller's obligation (see the pod package).

// Read decodes a value of T at the position and advances past it. When the
// cursor's byte order differs from the host's and T is wider than one byte,
// the value is byte-swapped if T is integral, floating-point, or an
// enumeration; for any other T the read fails with
// errs.ErrUnsupportedEndianSwap (or delivers the raw bytes unswapped when
// checking is disabled).
func Read[T any](c *Cursor) (T, error) {
	var out T
	err := ReadInto(c, &out)

	return out, err
}

// ReadInto decodes a value of T at the position into *out and advances past
// it. Semantics match Read; on failure *out is left untouched for bounds
// violations and endian refusals alike.
func ReadInto[T any](c *Cursor, out *T) error {
	t := reflect.TypeFor[T]()
	if !pod.Fixed(t) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidType, t)
	}

	dst := pod.Bytes(out)
	swap := len(dst) > 1 && endian.NeedsSwap(c.bigEndian)
	if swap && !pod.Swappable(t) {
		if c.checked {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedEndianSwap, t)
		}
		swap = false // deliver the raw bytes unswapped
	}

	w, err := c.take(len(dst))
	if err != nil {
		return err
	}
	copy(dst, w)
	if swap {
		endian.Swap(dst)
	}

	return nil
}

// Write encodes v at the position and advances past it, growing the view
// when a growth callback is installed. The endianness rules mirror Read; the
// swap is applied to a staged copy, so a refused swap never touches the
// destination bytes.
func Write[T any](c *Cursor, v T) error {
	t := reflect.TypeFor[T]()
	if !pod.Fixed(t) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidType, t)
	}

	// v is a by-value copy; swapping it in place cannot corrupt the caller's value.
	src := pod.Bytes(&v)
	if len(src) > 1 && endian.NeedsSwap(c.bigEndian) {
		if pod.Swappable(t) {
			endian.Swap(src)
		} else if c.checked {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedEndianSwap, t)
		}
	}

	w, err := c.writeWindow(len(src))
	if err != nil {
		return err
	}
	copy(w, src)

	return nil
}

// ReadSlice reads n values of T and returns them as a freshly allocated
// slice. Reading n == 0 returns an empty result without consuming input.
// Single-byte elements are bulk-copied; wider elements are decoded one at a
// time so each honors the endianness rules.
func ReadSlice[T any](c *Cursor, n int) ([]T, error) {
	t := reflect.TypeFor[T]()
	if !pod.Fixed(t) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidType, t)
	}
	if c.checked && !c.fits(n*pod.SizeOf[T]()) {
		return nil, fmt.Errorf("%w: read of %d values of %s at position %d in view of %d bytes",
			errs.ErrOutOfBounds, n, t, c.pos, len(c.buf))
	}
	if n <= 0 {
		return []T{}, nil
	}

	out := make([]T, n)
	if err := ReadSliceInto(c, out); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadSliceInto fills an already-sized destination with len(dst) values of T
// read from the position. Fixed-size arrays are covered by passing arr[:].
func ReadSliceInto[T any](c *Cursor, dst []T) error {
	size := pod.SizeOf[T]()
	if c.checked && !c.fits(len(dst)*size) {
		return fmt.Errorf("%w: read of %d values at position %d in view of %d bytes",
			errs.ErrOutOfBounds, len(dst), c.pos, len(c.buf))
	}
	if len(dst) == 0 {
		return nil
	}

	if size == 1 {
		w, err := c.take(len(dst))
		if err != nil {
			return err
		}
		copy(pod.SliceBytes(dst), w)

		return nil
	}

	for i := range dst {
		if err := ReadInto(c, &dst[i]); err != nil {
			return err
		}
	}

	return nil
}

// WriteSlice encodes all values of vals at the position. Single-byte
// elements are bulk-copied; wider elements are encoded one at a time so each
// honors the endianness rules.
func WriteSlice[T any](c *Cursor, vals []T) error {
	t := reflect.TypeFor[T]()
	if !pod.Fixed(t) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidType, t)
	}
	if len(vals) == 0 {
		return nil
	}

	if pod.SizeOf[T]() == 1 {
		w, err := c.writeWindow(len(vals))
		if err != nil {
			return err
		}
		copy(w, pod.SliceBytes(vals))

		return nil
	}

	for _, v := range vals {
		if err := Write(c, v); err != nil {
			return err
		}
	}

	return nil
}

// View binds n values of T as a zero-copy sub-view of the backing memory and
// advances past them. The returned slice aliases the view in the host's
// native byte order; no endianness correction is applied, and it is
// invalidated by any subsequent growth. Reads never grow the view.
func View[T any](c *Cursor, n int) ([]T, error) {
	t := reflect.TypeFor[T]()
	if !pod.Fixed(t) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidType, t)
	}
	if n <= 0 {
		return nil, nil
	}

	size := pod.SizeOf[T]()
	w, err := c.take(n * size)
	if err != nil || len(w) < n*size {
		return nil, err
	}

	return pod.CastSlice[T](w, n), nil
}

// Skip advances the position by n values of T; n may be negative. Skip with
// n == 0 never touches the position.
func Skip[T any](c *Cursor, n int) error {
	if n == 0 {
		return nil
	}

	return c.Seek(pod.SizeOf[T]()*n, Current)
}

// Peek decodes a value of T at the current position without moving it.
func Peek[T any](c *Cursor) (T, error) {
	return At[T](c, 0, Current)
}

// At decodes a value of T located offset bytes from the given anchor,
// restoring the original position afterwards regardless of outcome. It
// enables "read the value k bytes from the end" in one call:
//
//	trailer, err := cursor.At[uint32](c, 4, cursor.End)
func At[T any](c *Cursor, offset int, whence Whence) (T, error) {
	var zero T
	saved := c.pos
	if err := c.Seek(offset, whence); err != nil {
		return zero, err
	}
	v, err := Read[T](c)
	c.pos = saved

	return v, err
}
