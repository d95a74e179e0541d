package cursor

// ReadBytes reads n raw bytes into a freshly allocated slice and advances
// past them.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	w, err := c.take(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(w))
	copy(out, w)

	return out, nil
}

// ViewBytes binds n raw bytes as a zero-copy sub-view of the backing memory
// and advances past them. The returned slice aliases the view and is
// invalidated by any subsequent growth.
func (c *Cursor) ViewBytes(n int) ([]byte, error) {
	return c.take(n)
}

// WriteBytes writes all of p at the position, growing the view when a growth
// callback is installed.
func (c *Cursor) WriteBytes(p []byte) error {
	w, err := c.writeWindow(len(p))
	if err != nil {
		return err
	}
	copy(w, p)

	return nil
}

// Pad writes n zero bytes through the ordinary write path, so a growable
// view grows exactly as it would for n single-byte writes.
func (c *Cursor) Pad(n int) error {
	for range n {
		if err := c.WriteUint8(0); err != nil {
			return err
		}
	}

	return nil
}

// PeekBytes reads n raw bytes at the current position without moving it.
func (c *Cursor) PeekBytes(n int) ([]byte, error) {
	saved := c.pos
	out, err := c.ReadBytes(n)
	c.pos = saved

	return out, err
}
