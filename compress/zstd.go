package compress

// ZstdCompressor provides Zstandard compression for payloads where ratio
// matters more than speed: archived file sections, cold assets, and data
// shipped over constrained links.
//
// Two implementations exist behind build tags: the default pure-Go encoder
// (klauspost/compress/zstd) and a cgo binding to libzstd (valyala/gozstd)
// selected with the zstdcgo tag. Both produce standard Zstandard frames and
// are wire-compatible with each other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
