package compress

// NoOpCompressor stores payloads uncompressed. Captures using it can be read without
// copying: message views alias the container bytes.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns the no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
