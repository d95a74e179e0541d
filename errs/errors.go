// Package errs defines the sentinel errors shared across bytecursor packages.
//
// Callers should match them with errors.Is, as operations wrap these
// sentinels with positional context:
//
//	if errors.Is(err, errs.ErrOutOfBounds) {
//	    // seek/read/write target fell outside the buffer
//	}
package errs

import "errors"

var (
	// ErrOutOfBounds indicates a seek, read, or write target outside the
	// cursor's addressable range, with no growth possible to accommodate it.
	ErrOutOfBounds = errors.New("target exceeds buffer bounds")

	// ErrUnsupportedEndianSwap indicates a byte-order swap was requested for
	// a multi-byte type that is not integral, floating-point, or an
	// enumeration. Swapping an aggregate byte-for-byte would corrupt its
	// internal layout, so the operation is refused instead.
	ErrUnsupportedEndianSwap = errors.New("cannot change byte order of non-arithmetic type")

	// ErrInvalidType indicates a type without a fixed, self-contained byte
	// layout (it carries pointers, or has no compile-time size).
	ErrInvalidType = errors.New("type is not fixed-layout plain-old-data")

	// ErrChecksumMismatch indicates a compressed block whose stored digest
	// does not match its payload.
	ErrChecksumMismatch = errors.New("block checksum mismatch")

	// ErrNotReadable indicates a file stream opened without read access.
	ErrNotReadable = errors.New("stream not opened for reading")

	// ErrNotWritable indicates a file stream opened without write access.
	ErrNotWritable = errors.New("stream not opened for writing")

	// ErrClosed indicates an operation on a closed file stream or mapping.
	ErrClosed = errors.New("stream is closed")
)
