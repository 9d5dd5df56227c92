package snapshot

import (
	"github.com/asayers/compactor/compress"
	"github.com/asayers/compactor/endian"
	"github.com/asayers/compactor/internal/options"
)

// config holds the tunables applied by Option values. Both Write and Read
// share it so an Option like WithEndian means the same thing on either
// side of a round trip.
type config struct {
	algorithm compress.Algorithm
	engine    endian.EndianEngine
}

func newConfig() *config {
	return &config{
		algorithm: compress.AlgorithmNone,
		engine:    endian.GetLittleEndianEngine(),
	}
}

// Option configures a snapshot Write or Read call.
type Option = options.Option[*config]

// WithAlgorithm selects the compression codec applied to the record
// stream. The default is compress.AlgorithmNone.
func WithAlgorithm(alg compress.Algorithm) Option {
	return options.NoError(func(c *config) {
		c.algorithm = alg
	})
}

// WithEndian selects the byte order used for the frame header and record
// stream. The default is little-endian. Read must be given the same
// engine the frame was written with, or the magic number check will fail
// with ErrCorruptFrame.
func WithEndian(engine endian.EndianEngine) Option {
	return options.NoError(func(c *config) {
		c.engine = engine
	})
}
