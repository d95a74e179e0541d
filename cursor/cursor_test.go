package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bytecursor/endian"
	"github.com/arloliu/bytecursor/errs"
)

func TestNew_EmptyView(t *testing.T) {
	require := require.New(t)

	c := New(nil)
	require.Equal(0, c.Tell())
	require.Equal(0, c.Size())
	require.Equal(0, c.Remaining())
	require.True(c.Checked())
	require.False(c.BigEndian())
	require.False(c.Growable())

	_, err := c.ReadUint8()
	require.ErrorIs(err, errs.ErrOutOfBounds)
}

func TestNew_FixedView(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 16)
	c := New(buf)
	require.Equal(16, c.Size())
	require.Equal(16, c.Remaining())
	require.Equal(0, c.Tell())

	// A fixed cursor refuses writes past the end.
	require.NoError(c.Seek(16, Start))
	require.ErrorIs(c.WriteUint8(1), errs.ErrOutOfBounds)
	require.Equal(16, c.Tell())
}

func TestOf_TypedView(t *testing.T) {
	require := require.New(t)

	elems := []uint32{1, 2, 3}
	c := Of(elems).SetBigEndian(endian.IsNativeBigEndian())
	require.Equal(12, c.Size())

	// The view aliases the slice memory.
	v, err := Read[uint32](c)
	require.NoError(err)
	require.Equal(uint32(1), v)

	elems[1] = 42
	v, err = Read[uint32](c)
	require.NoError(err)
	require.Equal(uint32(42), v)
}

func TestSeek_Anchors(t *testing.T) {
	c := New(make([]byte, 10))

	tests := []struct {
		name    string
		offset  int
		whence  Whence
		wantPos int
	}{
		{name: "start absolute", offset: 3, wantPos: 3, whence: Start},
		{name: "start zero", offset: 0, wantPos: 0, whence: Start},
		{name: "start to end", offset: 10, wantPos: 10, whence: Start},
		{name: "current forward", offset: 4, wantPos: 4, whence: Current},
		{name: "current backward", offset: -2, wantPos: 2, whence: Current},
		{name: "end zero is size", offset: 0, wantPos: 10, whence: End},
		{name: "end counts backwards", offset: 3, wantPos: 7, whence: End},
		{name: "end full rewind", offset: 10, wantPos: 0, whence: End},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, c.Seek(tt.offset, tt.whence))
			require.Equal(t, tt.wantPos, c.Tell())
		})
	}
}

func TestSeek_EndOnShortView(t *testing.T) {
	require := require.New(t)

	// Seek(1, End) on a one-byte view lands on position 0.
	c := New(make([]byte, 1))
	require.NoError(c.Seek(1, End))
	require.Equal(0, c.Tell())
}

func TestSeek_OutOfRange(t *testing.T) {
	require := require.New(t)

	c := New(make([]byte, 10))
	require.NoError(c.Seek(5, Start))

	// Each violation reports and leaves the position untouched.
	require.ErrorIs(c.Seek(11, Start), errs.ErrOutOfBounds)
	require.Equal(5, c.Tell())
	require.ErrorIs(c.Seek(-1, Start), errs.ErrOutOfBounds)
	require.Equal(5, c.Tell())
	require.ErrorIs(c.Seek(6, Current), errs.ErrOutOfBounds)
	require.Equal(5, c.Tell())
	require.ErrorIs(c.Seek(-6, Current), errs.ErrOutOfBounds)
	require.Equal(5, c.Tell())
	require.ErrorIs(c.Seek(11, End), errs.ErrOutOfBounds)
	require.Equal(5, c.Tell())
	require.ErrorIs(c.Seek(-1, End), errs.ErrOutOfBounds)
	require.Equal(5, c.Tell())
}

func TestSeek_UncheckedClamps(t *testing.T) {
	require := require.New(t)

	c := New(make([]byte, 10)).SetChecked(false)
	require.NoError(c.Seek(100, Start))
	require.Equal(10, c.Tell())
	require.NoError(c.Seek(-100, Current))
	require.Equal(0, c.Tell())
	require.NoError(c.Seek(25, End))
	require.Equal(0, c.Tell())
}

func TestSkip(t *testing.T) {
	require := require.New(t)

	c := New(make([]byte, 8))
	require.NoError(c.Skip(5))
	require.Equal(5, c.Tell())
	require.NoError(c.Skip(-3))
	require.Equal(2, c.Tell())

	require.ErrorIs(c.Skip(7), errs.ErrOutOfBounds)
	require.Equal(2, c.Tell())
	require.ErrorIs(c.Skip(-3), errs.ErrOutOfBounds)
	require.Equal(2, c.Tell())
}

func TestSkip_ZeroIsAlwaysNoOp(t *testing.T) {
	require := require.New(t)

	c := New(make([]byte, 4))
	require.NoError(c.Seek(0, End))
	require.Equal(4, c.Tell())

	// Even at the very end, where a read would fail, skipping nothing succeeds.
	require.NoError(c.Skip(0))
	require.Equal(4, c.Tell())
}

func TestPeek_Byte(t *testing.T) {
	require := require.New(t)

	c := New([]byte{0xAA, 0xBB, 0xCC})
	require.NoError(c.Skip(1))

	b, err := c.Peek(0)
	require.NoError(err)
	require.Equal(byte(0xBB), b)

	b, err = c.Peek(1)
	require.NoError(err)
	require.Equal(byte(0xCC), b)

	b, err = c.Peek(-1)
	require.NoError(err)
	require.Equal(byte(0xAA), b)

	require.Equal(1, c.Tell())

	_, err = c.Peek(2)
	require.ErrorIs(err, errs.ErrOutOfBounds)
	_, err = c.Peek(-2)
	require.ErrorIs(err, errs.ErrOutOfBounds)

	b, err = c.SetChecked(false).Peek(100)
	require.NoError(err)
	require.Equal(byte(0), b)
}

func TestNewGrowable_DoublingFromEmpty(t *testing.T) {
	require := require.New(t)

	var backing []byte
	c := NewGrowable(&backing)
	require.True(c.Growable())
	require.Equal(0, c.Size())

	wantLens := []int{1, 2, 4, 4, 8, 8, 8, 8}
	for i, want := range wantLens {
		require.NoError(c.WriteUint8(byte(i + 1)))
		require.Equal(want, len(backing), "backing length after byte %d", i+1)
		require.Equal(i+1, c.Tell())
	}

	// Every previously written byte survives the reallocations.
	require.Equal([]byte{1, 2, 3, 4, 5, 6, 7, 8}, backing)
}

func TestNewGrowable_WideWritePreservesData(t *testing.T) {
	require := require.New(t)

	backing := []byte{0xDE, 0xAD}
	c := NewGrowable(&backing)
	require.NoError(c.Skip(2))

	require.NoError(c.WriteUint64(0x1122334455667788))
	require.Equal(10, c.Tell())
	require.GreaterOrEqual(len(backing), 10)
	require.Equal(byte(0xDE), backing[0])
	require.Equal(byte(0xAD), backing[1])

	require.NoError(c.Seek(2, Start))
	v, err := c.ReadUint64()
	require.NoError(err)
	require.Equal(uint64(0x1122334455667788), v)
}

func TestNewWithGrow_RefusedGrowth(t *testing.T) {
	require := require.New(t)

	c := NewWithGrow(make([]byte, 2), func(_ *Cursor, required int) []byte {
		return nil
	})
	require.NoError(c.WriteUint16(7))
	require.ErrorIs(c.WriteUint16(8), errs.ErrOutOfBounds)
	require.Equal(2, c.Tell())
}

func TestNewWithGrow_CallbackReceivesTotalRequirement(t *testing.T) {
	require := require.New(t)

	var got []int
	backing := make([]byte, 4)
	c := NewWithGrow(backing, func(_ *Cursor, required int) []byte {
		got = append(got, required)
		grown := make([]byte, required)
		copy(grown, backing)
		backing = grown

		return backing
	})

	require.NoError(c.Seek(3, Start))
	require.NoError(c.WriteUint32(0xCAFEBABE))
	require.Equal([]int{7}, got)
	require.Equal(7, c.Size())
}

func TestSetChecked_UncheckedReadsClamp(t *testing.T) {
	require := require.New(t)

	c := New([]byte{0x01, 0x02}).SetChecked(false)
	require.NoError(c.Skip(1))

	// A four-byte read against one remaining byte yields an unspecified but
	// memory-safe result and never panics.
	_, err := c.ReadUint32()
	require.NoError(err)
	require.Equal(2, c.Tell())
}

func TestData_AliasesView(t *testing.T) {
	require := require.New(t)

	buf := []byte{1, 2, 3}
	c := New(buf)
	c.Data()[1] = 9
	require.Equal(byte(9), buf[1])
}
