package snapshot

import (
	"github.com/asayers/compactor/compress"
	"github.com/asayers/compactor/endian"
	"github.com/asayers/compactor/errs"
)

// magic identifies a compactor snapshot frame; "CMPZ" read little-endian.
const magic uint32 = 0x5A504D43

// version is the frame layout version. Bump it whenever header or record
// layout changes in a way older readers couldn't tolerate.
const version uint8 = 1

// headerSize is the fixed, on-wire size of a frame header in bytes.
//
//	offset  size  field
//	0       4     Magic
//	4       1     Version
//	5       1     Algorithm
//	6       2     reserved
//	8       8     PolicyFingerprint
//	16      4     EntryCount
//	20      4     UncompressedLen
//	24      4     CompressedLen
//	28      4     reserved
const headerSize = 32

// header is the fixed-size preamble of a snapshot frame.
type header struct {
	Magic             uint32
	Version           uint8
	Algorithm         compress.Algorithm
	PolicyFingerprint uint64
	EntryCount        uint32
	UncompressedLen   uint32
	CompressedLen     uint32
}

func (h header) bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, headerSize)

	engine.PutUint32(b[0:4], h.Magic)
	b[4] = h.Version
	b[5] = byte(h.Algorithm)
	// b[6:8] reserved, left zero
	engine.PutUint64(b[8:16], h.PolicyFingerprint)
	engine.PutUint32(b[16:20], h.EntryCount)
	engine.PutUint32(b[20:24], h.UncompressedLen)
	engine.PutUint32(b[24:28], h.CompressedLen)
	// b[28:32] reserved, left zero

	return b
}

func parseHeader(b []byte, engine endian.EndianEngine) (header, error) {
	if len(b) != headerSize {
		return header{}, errs.ErrInvalidFrameSize
	}

	h := header{
		Magic:             engine.Uint32(b[0:4]),
		Version:           b[4],
		Algorithm:         compress.Algorithm(b[5]),
		PolicyFingerprint: engine.Uint64(b[8:16]),
		EntryCount:        engine.Uint32(b[16:20]),
		UncompressedLen:   engine.Uint32(b[20:24]),
		CompressedLen:     engine.Uint32(b[24:28]),
	}

	if h.Magic != magic {
		return header{}, errs.ErrCorruptFrame
	}

	return h, nil
}

// recordFixedSize is the on-wire size of one entry's fixed portion, before
// its variable-length payload: Year(2) Month(1) Day(1) Time(4) PayloadLen(4).
const recordFixedSize = 12
