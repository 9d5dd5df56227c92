// Package snapshot serializes a Compactor's buffer to and from a compact
// binary frame: a fixed-size header (magic, policy fingerprint, entry
// count, compression tag) followed by a sequence of (date, time, payload)
// records, optionally compressed as a unit with any compress.Codec.
//
// Payload encoding is left to the caller via a PayloadCodec, since this
// package has no way to serialize an arbitrary T itself.
package snapshot

// PayloadCodec marshals and unmarshals the value type T stored in a
// Compactor, so this package never has to know anything about T beyond
// aggregate.Aggregate.
type PayloadCodec[T any] interface {
	Marshal(v T) ([]byte, error)
	Unmarshal(b []byte) (T, error)
}
