package cursor

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/arloliu/bytecursor/errs"
)

// String operations treat the stream as single-byte characters terminated by
// a NUL byte, mirroring the C-string conventions of the file formats this
// cursor is aimed at. UTF-16 variants cover formats that store wide strings;
// their code-unit byte order follows the cursor's endianness flag.

// ReadString reads bytes until a NUL terminator, appending each non-NUL byte
// to the result. The terminator is consumed but not stored.
func (c *Cursor) ReadString() (string, error) {
	var sb strings.Builder
	for {
		b, err := c.ReadUint8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// ReadStringN reads exactly n bytes' worth of cursor advancement. When a NUL
// terminator is seen before n bytes and stopOnTerminator is set, accumulation
// stops but the cursor still skips the remaining distance, so total
// advancement is always exactly n. With stopOnTerminator unset every byte is
// appended and the result may contain embedded NUL bytes.
func (c *Cursor) ReadStringN(n int, stopOnTerminator bool) (string, error) {
	if c.checked && !c.fits(n) {
		return "", fmt.Errorf("%w: read of %d-byte string at position %d in view of %d bytes",
			errs.ErrOutOfBounds, n, c.pos, len(c.buf))
	}

	out := make([]byte, 0, n)
	for i := range n {
		b, err := c.ReadUint8()
		if err != nil {
			return "", err
		}
		if b == 0 && stopOnTerminator {
			// Consume the required number of bytes and stop accumulating.
			if err := c.Skip(n - i - 1); err != nil {
				return "", err
			}
			break
		}
		out = append(out, b)
	}

	return string(out), nil
}

// WriteString writes s followed by a single NUL terminator.
func (c *Cursor) WriteString(s string) error {
	return c.WriteStringN(s, true, 0)
}

// WriteStringN writes s into exactly budget bytes. A budget of 0 derives one
// from the source: len(s), plus one when a terminator should be added and s
// does not already end in one, minus one when no terminator is wanted but s
// already ends in one, so at most one terminator is ever written. Each
// output position is filled from s while within its bounds and with NUL
// beyond it: an explicit budget smaller than s truncates with no terminator,
// and a larger one pads with NUL bytes.
func (c *Cursor) WriteStringN(s string, addTerminator bool, budget int) error {
	if budget <= 0 {
		budget = len(s)
		switch {
		case addTerminator && !strings.HasSuffix(s, "\x00"):
			budget++
		case !addTerminator && strings.HasSuffix(s, "\x00"):
			budget--
		}
	}

	w, err := c.writeWindow(budget)
	if err != nil {
		return err
	}
	for i := range w {
		if i < len(s) {
			w[i] = s[i]
		} else {
			w[i] = 0
		}
	}

	return nil
}

// PeekString reads an n-byte string at the current position without moving it.
func (c *Cursor) PeekString(n int, stopOnTerminator bool) (string, error) {
	saved := c.pos
	out, err := c.ReadStringN(n, stopOnTerminator)
	c.pos = saved

	return out, err
}

// utf16Codec returns the UTF-16 little-endian transformer; cursor-level
// endianness correction happens per code unit, so the transformer side is
// always little-endian.
func utf16Codec() encoding.Encoding {
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

// ReadStringUTF16 reads n UTF-16 code units (2n bytes) and decodes them to
// UTF-8. When stopOnTerminator is set, accumulation stops at the first
// 0x0000 unit but the cursor still advances exactly 2n bytes.
func (c *Cursor) ReadStringUTF16(n int, stopOnTerminator bool) (string, error) {
	if c.checked && !c.fits(2*n) {
		return "", fmt.Errorf("%w: read of %d utf-16 units at position %d in view of %d bytes",
			errs.ErrOutOfBounds, n, c.pos, len(c.buf))
	}

	units := make([]byte, 0, 2*n)
	for i := range n {
		u, err := c.ReadUint16()
		if err != nil {
			return "", err
		}
		if u == 0 && stopOnTerminator {
			if err := c.Skip(2 * (n - i - 1)); err != nil {
				return "", err
			}
			break
		}
		units = binary.LittleEndian.AppendUint16(units, u)
	}

	decoded, err := utf16Codec().NewDecoder().Bytes(units)
	if err != nil {
		return "", fmt.Errorf("decode utf-16 string: %w", err)
	}

	return string(decoded), nil
}

// WriteStringUTF16 encodes s as UTF-16 code units in the cursor's byte
// order, optionally followed by a single 0x0000 terminator unit.
func (c *Cursor) WriteStringUTF16(s string, addTerminator bool) error {
	encoded, err := utf16Codec().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return fmt.Errorf("encode utf-16 string: %w", err)
	}

	for i := 0; i+1 < len(encoded); i += 2 {
		if err := c.WriteUint16(binary.LittleEndian.Uint16(encoded[i : i+2])); err != nil {
			return err
		}
	}
	if addTerminator {
		return c.WriteUint16(0)
	}

	return nil
}
