package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in codecs.
// It suits captures that are archived or shipped over constrained links.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
