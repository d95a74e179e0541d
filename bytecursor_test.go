package bytecursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bytecursor/cursor"
)

func TestNew_ReExports(t *testing.T) {
	require := require.New(t)

	c := New([]byte{1, 2, 3, 4})
	require.NoError(c.Seek(1, End))
	require.Equal(3, c.Tell())

	v, err := c.ReadUint8()
	require.NoError(err)
	require.Equal(uint8(4), v)

	var backing []byte
	g := NewGrowable(&backing)
	require.NoError(g.WriteUint32(7))
	require.Equal(4, g.Tell())
}

func TestNewWithGrow(t *testing.T) {
	require := require.New(t)

	store := make([]byte, 2)
	c := NewWithGrow(store, func(_ *cursor.Cursor, required int) []byte {
		grown := make([]byte, required)
		copy(grown, store)
		store = grown

		return store
	})
	require.NoError(c.WriteUint64(0xABCDEF))
	require.Equal(8, c.Tell())
}

func TestNewBuffer_PooledEncoding(t *testing.T) {
	require := require.New(t)

	c, release := NewBuffer()
	defer release()

	require.Equal(0, c.Size())
	require.NoError(c.WriteUint32(0xCAFED00D))
	require.NoError(c.WriteString("pooled"))
	require.Equal(11, c.Tell())

	out := append([]byte(nil), c.Data()[:c.Tell()]...)

	r := New(out)
	v, err := r.ReadUint32()
	require.NoError(err)
	require.Equal(uint32(0xCAFED00D), v)
	s, err := r.ReadString()
	require.NoError(err)
	require.Equal("pooled", s)
}

func TestNewBuffer_IndependentAfterRelease(t *testing.T) {
	require := require.New(t)

	c1, release1 := NewBuffer()
	require.NoError(c1.WriteUint64(1))
	release1()

	// A fresh pooled cursor starts empty regardless of prior use.
	c2, release2 := NewBuffer()
	defer release2()
	require.Equal(0, c2.Tell())
	require.Equal(0, c2.Size())
}
