// Package compress provides compression codecs for snapshot frames.
//
// Snapshot frames hold the serialized (date, time, payload) records of a
// Compactor's buffer (see the snapshot package). Compression is optional and
// orthogonal to the structural encoding; this package supplies four
// interchangeable algorithms:
//
//   - None: no compression, fastest, largest
//   - Zstd: best ratio, moderate speed — cold or rarely-read snapshots
//   - S2: balanced ratio and speed — frequent snapshot writes
//   - LZ4: fastest decompression — read-heavy snapshot consumers
//
// # Architecture
//
//	type Compressor interface { Compress(data []byte) ([]byte, error) }
//	type Decompressor interface { Decompress(data []byte) ([]byte, error) }
//	type Codec interface { Compressor; Decompressor }
//
// CreateCodec and GetCodec build a Codec from an Algorithm tag; the tag is
// the value stored in a snapshot frame's header so a reader can pick the
// matching codec without being told in advance.
//
// All implementations are safe for concurrent use.
package compress
