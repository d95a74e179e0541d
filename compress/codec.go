// Package compress provides compression codecs and checksummed block framing
// for byte regions read and written through a cursor.
//
// The codecs operate on whole payloads: file-format sections, asset blobs,
// and similar self-contained regions in the kilobyte-to-megabyte range.
// WriteBlock and ReadBlock frame a compressed payload with its length and an
// xxHash64 digest so corruption is detected before decompression.
package compress

import "fmt"

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Implementations validate the input format and return an error when the
// data is corrupted or was produced by an incompatible algorithm.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Type identifies a compression algorithm in block frames and factory calls.
type Type uint8

const (
	// TypeNone passes payloads through uncompressed.
	TypeNone Type = iota
	// TypeZstd selects Zstandard compression.
	TypeZstd
	// TypeS2 selects S2 (Snappy-compatible) compression.
	TypeS2
	// TypeLZ4 selects LZ4 block compression.
	TypeLZ4
)

// String returns the algorithm name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
