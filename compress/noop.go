package compress

// NoOpCompressor bypasses compression entirely, returning the input as-is.
//
// Useful for snapshotting small buffers where compression overhead would
// exceed any space saved, or for benchmarking the uncompressed baseline.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
//
// The returned slice shares memory with the input; callers must not mutate
// data after calling Compress if they still hold the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
