package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// samplePayload builds a payload with enough repetition for every codec to
// shrink it.
func samplePayload(size int) []byte {
	rng := rand.New(rand.NewSource(42))
	words := []string{"temp=", "pressure=", "flow=", "state=idle;", "state=run;"}
	var buf bytes.Buffer
	for buf.Len() < size {
		buf.WriteString(words[rng.Intn(len(words))])
		buf.WriteByte(byte('0' + rng.Intn(10)))
	}

	return buf.Bytes()[:size]
}

func allTypes() []Type {
	return []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4}
}

func TestType_String(t *testing.T) {
	require := require.New(t)

	require.Equal("none", TypeNone.String())
	require.Equal("zstd", TypeZstd.String())
	require.Equal("s2", TypeS2.String())
	require.Equal("lz4", TypeLZ4.String())
	require.Equal("type(99)", Type(99).String())
}

func TestGetCodec(t *testing.T) {
	require := require.New(t)

	for _, typ := range allTypes() {
		codec, err := GetCodec(typ)
		require.NoError(err)
		require.NotNil(codec)
	}

	_, err := GetCodec(Type(200))
	require.Error(err)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payload := samplePayload(16 * 1024)

	for _, typ := range allTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			require := require.New(t)

			codec, err := GetCodec(typ)
			require.NoError(err)

			compressed, err := codec.Compress(payload)
			require.NoError(err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(err)
			require.Equal(payload, decompressed)
		})
	}
}

func TestAllCodecs_CompressibleDataShrinks(t *testing.T) {
	payload := samplePayload(64 * 1024)

	for _, typ := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			require := require.New(t)

			codec, err := GetCodec(typ)
			require.NoError(err)

			compressed, err := codec.Compress(payload)
			require.NoError(err)
			require.Less(len(compressed), len(payload))
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for _, typ := range allTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			require := require.New(t)

			codec, err := GetCodec(typ)
			require.NoError(err)

			compressed, err := codec.Compress(nil)
			require.NoError(err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(err)
			require.Empty(decompressed)
		})
	}
}

func TestNoOp_SharesMemory(t *testing.T) {
	require := require.New(t)

	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(err)
	require.Same(&data[0], &out[0])
}

func TestZstd_RejectsGarbage(t *testing.T) {
	require := require.New(t)

	codec := NewZstdCompressor()
	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(err)
}

func TestLZ4_HighExpansionRatio(t *testing.T) {
	require := require.New(t)

	// A tiny compressed input that expands far past the initial 4x buffer
	// exercises the adaptive retry path.
	codec := NewLZ4Compressor()
	payload := bytes.Repeat([]byte{0xAB}, 1024*1024)

	compressed, err := codec.Compress(payload)
	require.NoError(err)
	require.Less(len(compressed)*4, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(err)
	require.Equal(payload, decompressed)
}

func BenchmarkCompress(b *testing.B) {
	payload := samplePayload(64 * 1024)

	for _, typ := range allTypes() {
		codec, err := GetCodec(typ)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := codec.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
