package snapshot

import (
	"bytes"
	"testing"

	"github.com/asayers/compactor"
	"github.com/asayers/compactor/aggregate"
	"github.com/asayers/compactor/compress"
	"github.com/asayers/compactor/datetime"
	"github.com/asayers/compactor/endian"
	"github.com/asayers/compactor/errs"
	"github.com/stretchr/testify/require"
)

// intsCodec marshals an aggregate.Concat[int] as a flat sequence of
// little-endian int64s, for use as a PayloadCodec in tests.
type intsCodec struct{}

func (intsCodec) Marshal(v aggregate.Concat[int]) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, 0, 8*len(v))
	for _, x := range v {
		b = engine.AppendUint64(b, uint64(int64(x)))
	}

	return b, nil
}

func (intsCodec) Unmarshal(b []byte) (aggregate.Concat[int], error) {
	engine := endian.GetLittleEndianEngine()
	out := make(aggregate.Concat[int], 0, len(b)/8)
	for i := 0; i+8 <= len(b); i += 8 {
		out = append(out, int(int64(engine.Uint64(b[i:i+8]))))
	}

	return out, nil
}

func buildCompactor(t *testing.T) *compactor.Compactor[aggregate.Concat[int]] {
	t.Helper()

	c, err := compactor.NewCompactor[aggregate.Concat[int]]().
		KeepForDays(2, datetime.AmPm).
		KeepForDays(4, datetime.Day).
		Build()
	require.NoError(t, err)

	for d := int8(1); d <= 5; d++ {
		date := datetime.NewDate(2023, 6, d)
		require.NoError(t, c.Push(date, datetime.New().WithHour(9), aggregate.Concat[int]{int(d)*10 + 9}))
		require.NoError(t, c.Push(date, datetime.New().WithHour(15), aggregate.Concat[int]{int(d)*10 + 15}))
	}

	return c
}

func collectEntries[T aggregate.Aggregate[T]](c *compactor.Compactor[T]) []compactor.Entry[T] {
	var out []compactor.Entry[T]
	for e := range c.All() {
		out = append(out, e)
	}

	return out
}

func TestWriteRead_RoundTrip(t *testing.T) {
	for _, alg := range []compress.Algorithm{compress.AlgorithmNone, compress.AlgorithmZstd, compress.AlgorithmS2, compress.AlgorithmLZ4} {
		t.Run(alg.String(), func(t *testing.T) {
			c := buildCompactor(t)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, c, intsCodec{}, WithAlgorithm(alg)))

			restored, err := Read(&buf, c.Policy(), intsCodec{})
			require.NoError(t, err)

			require.Equal(t, collectEntries(c), collectEntries(restored))
		})
	}
}

func TestWriteRead_BigEndian(t *testing.T) {
	c := buildCompactor(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, intsCodec{}, WithEndian(endian.GetBigEndianEngine())))

	restored, err := Read(&buf, c.Policy(), intsCodec{}, WithEndian(endian.GetBigEndianEngine()))
	require.NoError(t, err)
	require.Equal(t, collectEntries(c), collectEntries(restored))
}

func TestRead_PolicyMismatch(t *testing.T) {
	c := buildCompactor(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, intsCodec{}))

	otherPolicy, err := compactor.NewPolicyBuilder().KeepForDays(1, datetime.Hour).Build()
	require.NoError(t, err)

	_, err = Read(&buf, otherPolicy, intsCodec{})
	require.ErrorIs(t, err, errs.ErrPolicyMismatch)
}

func TestWrite_EmptyCompactor(t *testing.T) {
	c, err := compactor.NewCompactor[aggregate.Concat[int]]().KeepForDays(1, datetime.Day).Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Write(&buf, c, intsCodec{})
	require.ErrorIs(t, err, errs.ErrEmptySnapshot)
}

func TestRead_TruncatedHeader(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{1, 2, 3}), compactor.Policy{}, intsCodec{})
	require.Error(t, err)
}

func TestRead_BadMagic(t *testing.T) {
	c := buildCompactor(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, intsCodec{}))

	corrupt := buf.Bytes()
	corrupt[0] ^= 0xFF

	_, err := Read(bytes.NewReader(corrupt), c.Policy(), intsCodec{})
	require.ErrorIs(t, err, errs.ErrCorruptFrame)
}
