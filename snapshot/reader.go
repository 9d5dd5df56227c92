package snapshot

import (
	"fmt"
	"io"

	"github.com/asayers/compactor"
	"github.com/asayers/compactor/aggregate"
	"github.com/asayers/compactor/compress"
	"github.com/asayers/compactor/datetime"
	"github.com/asayers/compactor/errs"
	"github.com/asayers/compactor/internal/options"
)

// Read parses a frame written by Write and replays its entries into a
// fresh Compactor built from policy. It returns ErrPolicyMismatch if the
// frame's policy fingerprint does not match policy's, since resuming a
// Compactor under a different policy would silently reinterpret data that
// was compacted under different rules.
func Read[T aggregate.Aggregate[T]](r io.Reader, policy compactor.Policy, payloadCodec PayloadCodec[T], opts ...Option) (*compactor.Compactor[T], error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("snapshot: applying options: %w", err)
	}

	rawHeader := make([]byte, headerSize)
	if _, err := io.ReadFull(r, rawHeader); err != nil {
		return nil, fmt.Errorf("snapshot: reading header: %w", err)
	}

	h, err := parseHeader(rawHeader, cfg.engine)
	if err != nil {
		return nil, err
	}

	if h.Version != version {
		return nil, fmt.Errorf("%w: frame version %d, reader supports %d", errs.ErrCorruptFrame, h.Version, version)
	}

	if h.PolicyFingerprint != policy.Fingerprint() {
		return nil, errs.ErrPolicyMismatch
	}

	codec, err := compress.GetCodec(h.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, err)
	}

	compressed := make([]byte, h.CompressedLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("snapshot: reading body: %w", err)
	}

	body, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompressing body: %w", err)
	}

	if uint32(len(body)) != h.UncompressedLen {
		return nil, errs.ErrInvalidFrameSize
	}

	c := compactor.FromPolicy[T](policy)

	off := 0
	for i := uint32(0); i < h.EntryCount; i++ {
		if off+recordFixedSize > len(body) {
			return nil, errs.ErrCorruptFrame
		}

		year := int16(cfg.engine.Uint16(body[off : off+2]))
		month := int8(body[off+2])
		day := int8(body[off+3])
		t := datetime.Time(cfg.engine.Uint32(body[off+4 : off+8]))
		payloadLen := cfg.engine.Uint32(body[off+8 : off+12])
		off += recordFixedSize

		if off+int(payloadLen) > len(body) {
			return nil, errs.ErrCorruptFrame
		}
		payload := body[off : off+int(payloadLen)]
		off += int(payloadLen)

		v, err := payloadCodec.Unmarshal(payload)
		if err != nil {
			return nil, fmt.Errorf("snapshot: unmarshaling payload %d: %w", i, err)
		}

		if err := c.Push(datetime.NewDate(year, month, day), t, v); err != nil {
			return nil, fmt.Errorf("snapshot: replaying entry %d: %w", i, err)
		}
	}

	if off != len(body) {
		return nil, errs.ErrCorruptFrame
	}

	return c, nil
}
