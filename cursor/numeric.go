package cursor

import "math"

// Concrete fixed-width accessors. These cover the overwhelmingly common
// scalar cases without generic dispatch; the generic Read/Write entry points
// in generic.go handle everything else.

// ReadUint8 reads one unsigned byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	w, err := c.take(1)
	if err != nil || len(w) < 1 {
		return 0, err
	}

	return w[0], nil
}

// ReadUint16 reads a 16-bit unsigned integer in the cursor's byte order.
func (c *Cursor) ReadUint16() (uint16, error) {
	w, err := c.take(2)
	if err != nil || len(w) < 2 {
		return 0, err
	}

	return c.engine().Uint16(w), nil
}

// ReadUint32 reads a 32-bit unsigned integer in the cursor's byte order.
func (c *Cursor) ReadUint32() (uint32, error) {
	w, err := c.take(4)
	if err != nil || len(w) < 4 {
		return 0, err
	}

	return c.engine().Uint32(w), nil
}

// ReadUint64 reads a 64-bit unsigned integer in the cursor's byte order.
func (c *Cursor) ReadUint64() (uint64, error) {
	w, err := c.take(8)
	if err != nil || len(w) < 8 {
		return 0, err
	}

	return c.engine().Uint64(w), nil
}

// ReadInt8 reads one signed byte.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadInt16 reads a 16-bit signed integer in the cursor's byte order.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads a 32-bit signed integer in the cursor's byte order.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a 64-bit signed integer in the cursor's byte order.
func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads an IEEE 754 single-precision float in the cursor's byte order.
func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE 754 double-precision float in the cursor's byte order.
func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBool reads one byte and reports whether it is non-zero.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint8()
	return v != 0, err
}

// WriteUint8 writes one unsigned byte.
func (c *Cursor) WriteUint8(v uint8) error {
	w, err := c.writeWindow(1)
	if err != nil || len(w) < 1 {
		return err
	}
	w[0] = v

	return nil
}

// WriteUint16 writes a 16-bit unsigned integer in the cursor's byte order.
func (c *Cursor) WriteUint16(v uint16) error {
	w, err := c.writeWindow(2)
	if err != nil {
		return err
	}
	if len(w) < 2 {
		var tmp [2]byte
		c.engine().PutUint16(tmp[:], v)
		copy(w, tmp[:])

		return nil
	}
	c.engine().PutUint16(w, v)

	return nil
}

// WriteUint32 writes a 32-bit unsigned integer in the cursor's byte order.
func (c *Cursor) WriteUint32(v uint32) error {
	w, err := c.writeWindow(4)
	if err != nil {
		return err
	}
	if len(w) < 4 {
		var tmp [4]byte
		c.engine().PutUint32(tmp[:], v)
		copy(w, tmp[:])

		return nil
	}
	c.engine().PutUint32(w, v)

	return nil
}

// WriteUint64 writes a 64-bit unsigned integer in the cursor's byte order.
func (c *Cursor) WriteUint64(v uint64) error {
	w, err := c.writeWindow(8)
	if err != nil {
		return err
	}
	if len(w) < 8 {
		var tmp [8]byte
		c.engine().PutUint64(tmp[:], v)
		copy(w, tmp[:])

		return nil
	}
	c.engine().PutUint64(w, v)

	return nil
}

// WriteInt8 writes one signed byte.
func (c *Cursor) WriteInt8(v int8) error {
	return c.WriteUint8(uint8(v))
}

// WriteInt16 writes a 16-bit signed integer in the cursor's byte order.
func (c *Cursor) WriteInt16(v int16) error {
	return c.WriteUint16(uint16(v))
}

// WriteInt32 writes a 32-bit signed integer in the cursor's byte order.
func (c *Cursor) WriteInt32(v int32) error {
	return c.WriteUint32(uint32(v))
}

// WriteInt64 writes a 64-bit signed integer in the cursor's byte order.
func (c *Cursor) WriteInt64(v int64) error {
	return c.WriteUint64(uint64(v))
}

// WriteFloat32 writes an IEEE 754 single-precision float in the cursor's byte order.
func (c *Cursor) WriteFloat32(v float32) error {
	return c.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE 754 double-precision float in the cursor's byte order.
func (c *Cursor) WriteFloat64(v float64) error {
	return c.WriteUint64(math.Float64bits(v))
}

// WriteBool writes one byte: 1 for true, 0 for false.
func (c *Cursor) WriteBool(v bool) error {
	if v {
		return c.WriteUint8(1)
	}

	return c.WriteUint8(0)
}
