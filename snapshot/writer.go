package snapshot

import (
	"fmt"
	"io"

	"github.com/asayers/compactor"
	"github.com/asayers/compactor/aggregate"
	"github.com/asayers/compactor/compress"
	"github.com/asayers/compactor/errs"
	"github.com/asayers/compactor/internal/options"
)

// Write serializes c's buffer into a single frame and writes it to w.
// payloadCodec encodes each stored value; opts configure compression and
// byte order. Write returns ErrEmptySnapshot if c holds no data, mirroring
// the library's general refusal to represent an empty range as if it were
// meaningful data.
func Write[T aggregate.Aggregate[T]](w io.Writer, c *compactor.Compactor[T], payloadCodec PayloadCodec[T], opts ...Option) error {
	if c.IsEmpty() {
		return errs.ErrEmptySnapshot
	}

	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return fmt.Errorf("snapshot: applying options: %w", err)
	}

	var body []byte
	var entryCount uint32
	for e := range c.All() {
		payload, err := payloadCodec.Marshal(e.Value)
		if err != nil {
			return fmt.Errorf("snapshot: marshaling payload for %s %s: %w", e.Date, e.Time, err)
		}

		rec := make([]byte, recordFixedSize+len(payload))
		cfg.engine.PutUint16(rec[0:2], uint16(e.Date.Year))
		rec[2] = byte(e.Date.Month)
		rec[3] = byte(e.Date.Day)
		cfg.engine.PutUint32(rec[4:8], uint32(e.Time))
		cfg.engine.PutUint32(rec[8:12], uint32(len(payload)))
		copy(rec[12:], payload)

		body = append(body, rec...)
		entryCount++
	}

	codec, err := compress.CreateCodec(cfg.algorithm)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	compressed, err := codec.Compress(body)
	if err != nil {
		return fmt.Errorf("snapshot: compressing frame body: %w", err)
	}

	h := header{
		Magic:             magic,
		Version:           version,
		Algorithm:         cfg.algorithm,
		PolicyFingerprint: c.Policy().Fingerprint(),
		EntryCount:        entryCount,
		UncompressedLen:   uint32(len(body)),
		CompressedLen:     uint32(len(compressed)),
	}

	if _, err := w.Write(h.bytes(cfg.engine)); err != nil {
		return fmt.Errorf("snapshot: writing header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("snapshot: writing body: %w", err)
	}

	return nil
}
