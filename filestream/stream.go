// Package filestream mirrors the cursor package's typed operation set over an
// open file handle: typed reads and writes of fixed-layout values, slices,
// and strings, with independent input and output cursors, endianness
// toggling, and the same checked/unchecked policy switch.
//
// The package reuses the cursor core's byte-swap primitive (endian.Swap) and
// plain-old-data classification rather than reimplementing them, so a value
// round-trips identically through a memory cursor and a file stream.
//
// Prefer a memory cursor over a mapped or fully-read file when possible; it
// has the richer surface (peek/at, zero-copy views, growth).
package filestream

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arloliu/bytecursor/cursor"
	"github.com/arloliu/bytecursor/endian"
	"github.com/arloliu/bytecursor/errs"
	"github.com/arloliu/bytecursor/internal/pod"
	"github.com/arloliu/bytecursor/internal/pool"
)

// Options is a bitmask controlling how Open accesses the file.
type Options uint8

const (
	// OptRead opens the file for reading.
	OptRead Options = 1 << iota
	// OptWrite opens the file for writing.
	OptWrite
	// OptAppend opens the file for writing with the output cursor starting
	// at the end of existing content.
	OptAppend
	// OptTruncate discards existing content on open.
	OptTruncate
	// OptCreateMissing creates the file, and any missing parent
	// directories, when it does not exist yet.
	OptCreateMissing
)

func (o Options) readable() bool {
	return o&OptRead != 0
}

func (o Options) writable() bool {
	return o&(OptWrite|OptAppend|OptTruncate) != 0
}

// Stream is a typed binary stream over an open file. It keeps independent
// input and output cursors, so interleaved reads and writes do not disturb
// each other. Like cursor.Cursor it is not safe for concurrent use.
type Stream struct {
	f         *os.File
	in        int64
	out       int64
	opts      Options
	bigEndian bool
	checked   bool
}

// Open opens path with the given options. OptCreateMissing creates the file
// and any missing parent directories first. Append positioning is handled
// through the output cursor rather than O_APPEND, which the positional
// writes this stream is built on do not support.
func Open(path string, opts Options) (*Stream, error) {
	if opts&OptCreateMissing != 0 {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if dir := filepath.Dir(path); dir != "." && dir != string(filepath.Separator) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("create parent directories for %s: %w", path, err)
				}
			}
		}
	}

	var flag int
	switch {
	case opts.readable() && opts.writable():
		flag = os.O_RDWR
	case opts.writable():
		flag = os.O_WRONLY
	default:
		flag = os.O_RDONLY
	}
	if opts&OptTruncate != 0 {
		flag |= os.O_TRUNC
	}
	if opts&OptCreateMissing != 0 {
		flag |= os.O_CREATE
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	s := &Stream{f: f, opts: opts, checked: true}
	if opts&OptAppend != 0 {
		st, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		s.out = st.Size()
	}

	return s, nil
}

// Close closes the underlying file. The stream is unusable afterwards.
func (s *Stream) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil

	return err
}

// Sync flushes written content to stable storage.
func (s *Stream) Sync() error {
	if s.f == nil {
		return errs.ErrClosed
	}

	return s.f.Sync()
}

// Size returns the current byte length of the underlying file.
func (s *Stream) Size() (int64, error) {
	if s.f == nil {
		return 0, errs.ErrClosed
	}
	st, err := s.f.Stat()
	if err != nil {
		return 0, err
	}

	return st.Size(), nil
}

// SetChecked toggles error reporting and returns the stream for chaining.
// With checking disabled, I/O failures are swallowed: reads deliver zero
// values and writes are silently dropped. This mirrors the cursor's
// unchecked escape hatch and is meant for callers that validate separately.
func (s *Stream) SetChecked(checked bool) *Stream {
	s.checked = checked
	return s
}

// Checked reports whether error reporting is enabled.
func (s *Stream) Checked() bool {
	return s.checked
}

// SetBigEndian selects big-endian byte order for all subsequent multi-byte
// reads and writes and returns the stream for chaining.
func (s *Stream) SetBigEndian(bigEndian bool) *Stream {
	s.bigEndian = bigEndian
	return s
}

// BigEndian reports whether the stream reads and writes big-endian values.
func (s *Stream) BigEndian() bool {
	return s.bigEndian
}

// resolve computes the absolute position offset/whence describes relative to
// cur. End counts backwards from the file's current size, matching the
// cursor package. Positions beyond the current size are legal for the output
// cursor (the file grows on write) and yield io.EOF on read.
func (s *Stream) resolve(cur int64, offset int64, whence cursor.Whence) (int64, error) {
	target := offset
	switch whence {
	case cursor.Current:
		target = cur + offset
	case cursor.End:
		size, err := s.Size()
		if err != nil {
			return 0, err
		}
		target = size - offset
	}
	if target < 0 {
		if s.checked {
			return 0, fmt.Errorf("%w: seek %d from %s lands at %d", errs.ErrOutOfBounds, offset, whence, target)
		}
		target = 0
	}

	return target, nil
}

// SeekIn relocates the input cursor.
func (s *Stream) SeekIn(offset int64, whence cursor.Whence) error {
	target, err := s.resolve(s.in, offset, whence)
	if err != nil {
		return err
	}
	s.in = target

	return nil
}

// SeekOut relocates the output cursor.
func (s *Stream) SeekOut(offset int64, whence cursor.Whence) error {
	target, err := s.resolve(s.out, offset, whence)
	if err != nil {
		return err
	}
	s.out = target

	return nil
}

// SkipIn advances the input cursor by n bytes; n may be negative and 0 is a no-op.
func (s *Stream) SkipIn(n int64) error {
	if n == 0 {
		return nil
	}

	return s.SeekIn(n, cursor.Current)
}

// SkipOut advances the output cursor by n bytes; n may be negative and 0 is a no-op.
func (s *Stream) SkipOut(n int64) error {
	if n == 0 {
		return nil
	}

	return s.SeekOut(n, cursor.Current)
}

// TellIn returns the input cursor position.
func (s *Stream) TellIn() int64 {
	return s.in
}

// TellOut returns the output cursor position.
func (s *Stream) TellOut() int64 {
	return s.out
}

// readAt fills buf from the input cursor and advances it. Errors are
// swallowed when checking is disabled.
func (s *Stream) readAt(buf []byte) error {
	if s.f == nil {
		return s.report(errs.ErrClosed)
	}
	if !s.opts.readable() {
		return s.report(errs.ErrNotReadable)
	}

	n, err := s.f.ReadAt(buf, s.in)
	s.in += int64(n)
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return s.report(fmt.Errorf("read %d bytes at offset %d: %w", len(buf), s.in, err))
	}

	return nil
}

// writeAt writes buf at the output cursor and advances it. Errors are
// swallowed when checking is disabled.
func (s *Stream) writeAt(buf []byte) error {
	if s.f == nil {
		return s.report(errs.ErrClosed)
	}
	if !s.opts.writable() {
		return s.report(errs.ErrNotWritable)
	}

	n, err := s.f.WriteAt(buf, s.out)
	s.out += int64(n)
	if err != nil {
		return s.report(fmt.Errorf("write %d bytes at offset %d: %w", len(buf), s.out, err))
	}

	return nil
}

func (s *Stream) report(err error) error {
	if s.checked {
		return err
	}

	return nil
}

// Read decodes a value of T at the input cursor and advances past it,
// honoring the stream's endianness the same way cursor.Read does.
func Read[T any](s *Stream) (T, error) {
	var out T
	err := ReadInto(s, &out)

	return out, err
}

// ReadInto decodes a value of T at the input cursor into *out.
func ReadInto[T any](s *Stream, out *T) error {
	t := reflect.TypeFor[T]()
	if !pod.Fixed(t) {
		return s.report(fmt.Errorf("%w: %s", errs.ErrInvalidType, t))
	}

	dst := pod.Bytes(out)
	swap := len(dst) > 1 && endian.NeedsSwap(s.bigEndian)
	if swap && !pod.Swappable(t) {
		if s.checked {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedEndianSwap, t)
		}
		swap = false
	}

	if err := s.readAt(dst); err != nil {
		return err
	}
	if swap {
		endian.Swap(dst)
	}

	return nil
}

// Write encodes v at the output cursor and advances past it. The swap is
// applied to a staged copy before any byte reaches the file.
func Write[T any](s *Stream, v T) error {
	t := reflect.TypeFor[T]()
	if !pod.Fixed(t) {
		return s.report(fmt.Errorf("%w: %s", errs.ErrInvalidType, t))
	}

	src := pod.Bytes(&v)
	if len(src) > 1 && endian.NeedsSwap(s.bigEndian) {
		if pod.Swappable(t) {
			endian.Swap(src)
		} else if s.checked {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedEndianSwap, t)
		}
	}

	return s.writeAt(src)
}

// ReadSlice reads n values of T from the input cursor. Single-byte elements
// are bulk-read; wider elements are decoded one at a time so each honors the
// endianness rules.
func ReadSlice[T any](s *Stream, n int) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}

	out := make([]T, n)
	if pod.SizeOf[T]() == 1 {
		if err := s.readAt(pod.SliceBytes(out)); err != nil {
			return nil, err
		}

		return out, nil
	}

	for i := range out {
		if err := ReadInto(s, &out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// WriteSlice encodes all values of vals at the output cursor.
func WriteSlice[T any](s *Stream, vals []T) error {
	if len(vals) == 0 {
		return nil
	}

	if pod.SizeOf[T]() == 1 {
		return s.writeAt(pod.SliceBytes(vals))
	}

	for _, v := range vals {
		if err := Write(s, v); err != nil {
			return err
		}
	}

	return nil
}

// ReadBytes reads n raw bytes from the input cursor.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if err := s.readAt(out); err != nil {
		return nil, err
	}

	return out, nil
}

// WriteBytes writes all of p at the output cursor.
func (s *Stream) WriteBytes(p []byte) error {
	return s.writeAt(p)
}

// ReadString reads bytes until a NUL terminator, which is consumed but not
// stored.
func (s *Stream) ReadString() (string, error) {
	var sb strings.Builder
	var b [1]byte
	for {
		if err := s.readAt(b[:]); err != nil {
			return "", err
		}
		if b[0] == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(b[0])
	}
}

// ReadStringN reads exactly n bytes' worth of input advancement, with the
// same terminator semantics as cursor.ReadStringN.
func (s *Stream) ReadStringN(n int, stopOnTerminator bool) (string, error) {
	raw, err := s.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if stopOnTerminator {
		for i, b := range raw {
			if b == 0 {
				return string(raw[:i]), nil
			}
		}
	}

	return string(raw), nil
}

// WriteString writes s followed by a single NUL terminator.
func (s *Stream) WriteString(str string) error {
	return s.WriteStringN(str, true, 0)
}

// WriteStringN writes str into exactly budget bytes with the same budget
// derivation and fill rules as cursor.WriteStringN. The staging buffer is
// pooled to keep repeated string writes allocation-free.
func (s *Stream) WriteStringN(str string, addTerminator bool, budget int) error {
	if budget <= 0 {
		budget = len(str)
		switch {
		case addTerminator && !strings.HasSuffix(str, "\x00"):
			budget++
		case !addTerminator && strings.HasSuffix(str, "\x00"):
			budget--
		}
	}
	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	w := bb.WindowTo(budget)
	for i := range w {
		if i < len(str) {
			w[i] = str[i]
		} else {
			w[i] = 0
		}
	}

	return s.writeAt(w)
}
