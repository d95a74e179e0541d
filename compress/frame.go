package compress

import (
	"fmt"
	"math"

	"github.com/arloliu/bytecursor/cursor"
	"github.com/arloliu/bytecursor/errs"
	"github.com/arloliu/bytecursor/internal/hash"
)

// Block frame layout, in the cursor's current byte order:
//
//	[uint32 compressed length][uint64 xxHash64 of compressed bytes][compressed bytes]
//
// The digest covers the compressed bytes, so corruption is caught before the
// payload reaches the decompressor.

// blockHeaderSize is the fixed frame overhead per block.
const blockHeaderSize = 4 + 8

// WriteBlock compresses payload with codec and writes a framed block at the
// cursor's current position. The cursor grows through its growth callback if
// one is attached; on a fixed cursor a block that does not fit fails without
// a partial frame being committed.
func WriteBlock(c *cursor.Cursor, codec Codec, payload []byte) error {
	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress block payload: %w", err)
	}
	if uint64(len(compressed)) > math.MaxUint32 {
		return fmt.Errorf("compressed block too large: %d bytes", len(compressed))
	}

	// Stage the whole frame against the remaining space before writing, so a
	// fixed cursor is left untouched on failure.
	if c.Tell()+blockHeaderSize+len(compressed) > c.Size() && !c.Growable() {
		return fmt.Errorf("write block of %d bytes at position %d: %w",
			blockHeaderSize+len(compressed), c.Tell(), errs.ErrOutOfBounds)
	}

	if err := c.WriteUint32(uint32(len(compressed))); err != nil {
		return err
	}
	if err := c.WriteUint64(hash.Sum64(compressed)); err != nil {
		return err
	}

	return c.WriteBytes(compressed)
}

// ReadBlock reads one framed block at the cursor's current position, verifies
// its digest and returns the decompressed payload. The returned slice is
// owned by the caller except with NoOpCompressor, where it aliases the
// cursor's buffer.
//
// A digest mismatch returns errs.ErrChecksumMismatch and leaves the cursor
// positioned after the corrupt block.
func ReadBlock(c *cursor.Cursor, codec Codec) ([]byte, error) {
	length, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	want, err := c.ReadUint64()
	if err != nil {
		return nil, err
	}

	compressed, err := c.ViewBytes(int(length))
	if err != nil {
		return nil, err
	}

	if got := hash.Sum64(compressed); got != want {
		return nil, fmt.Errorf("block digest %016x, expected %016x: %w",
			got, want, errs.ErrChecksumMismatch)
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress block payload: %w", err)
	}

	return payload, nil
}
