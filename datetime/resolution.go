package datetime

import "time"

// Resolution is one of 19 discrete time-interval widths a Time value can be
// tagged with, from a whole day down to one millisecond.
//
// The Ord relation follows natural language: x < y means x is coarser
// (lower-resolution) than y. The zero value is Day, the coarsest resolution.
type Resolution uint8

const (
	Day Resolution = iota
	AmPm
	SixHour
	ThreeHour
	Hour
	ThirtyMinute
	FifteenMinute
	FiveMinute
	Minute
	ThirtySecond
	FifteenSecond
	FiveSecond
	Second
	FiveHundredMilli
	HundredMilli
	FiftyMilli
	TenMilli
	FiveMilli
	Millisecond
)

// numResolutions is the size of the dense Resolution index space.
const numResolutions = int(Millisecond) + 1

// resolutions lists every Resolution in coarsest-to-finest order, matching
// the declaration order of the constants above.
var resolutions = [numResolutions]Resolution{
	Day, AmPm, SixHour, ThreeHour, Hour,
	ThirtyMinute, FifteenMinute, FiveMinute, Minute,
	ThirtySecond, FifteenSecond, FiveSecond, Second,
	FiveHundredMilli, HundredMilli, FiftyMilli, TenMilli, FiveMilli, Millisecond,
}

var resolutionNames = [numResolutions]string{
	"Day", "AmPm", "SixHour", "ThreeHour", "Hour",
	"ThirtyMinute", "FifteenMinute", "FiveMinute", "Minute",
	"ThirtySecond", "FifteenSecond", "FiveSecond", "Second",
	"FiveHundredMilli", "HundredMilli", "FiftyMilli", "TenMilli", "FiveMilli", "Millisecond",
}

func (r Resolution) String() string {
	if int(r) >= numResolutions {
		return "Unknown"
	}

	return resolutionNames[r]
}

// widths holds the wall-clock duration of one bucket at each resolution.
var widths = [numResolutions]time.Duration{
	24 * time.Hour,
	12 * time.Hour,
	6 * time.Hour,
	3 * time.Hour,
	time.Hour,
	30 * time.Minute,
	15 * time.Minute,
	5 * time.Minute,
	time.Minute,
	30 * time.Second,
	15 * time.Second,
	5 * time.Second,
	time.Second,
	500 * time.Millisecond,
	100 * time.Millisecond,
	50 * time.Millisecond,
	10 * time.Millisecond,
	5 * time.Millisecond,
	time.Millisecond,
}

// Width returns the wall-clock duration of one bucket at resolution r.
func (r Resolution) Width() time.Duration {
	return widths[r]
}

// subdivisions holds, for each resolution r, how many buckets of r fit
// inside one bucket of the next-coarser resolution. Day has no coarser
// sibling and is 0 by convention.
var subdivisions = [numResolutions]uint8{
	0, // Day
	2, // AmPm
	2, // SixHour
	2, // ThreeHour
	3, // Hour
	2, // ThirtyMinute
	2, // FifteenMinute
	3, // FiveMinute
	5, // Minute
	2, // ThirtySecond
	2, // FifteenSecond
	3, // FiveSecond
	5, // Second
	2, // FiveHundredMilli
	5, // HundredMilli
	2, // FiftyMilli
	5, // TenMilli
	2, // FiveMilli
	5, // Millisecond
}

// Subdivision returns how many buckets of r fit into one bucket of the next
// coarser resolution (0 for Day, which has no coarser sibling).
func (r Resolution) Subdivision() uint8 {
	return subdivisions[r]
}

// nBitsTable holds the number of data bits reserved for each resolution's slot
// in a Time word.
var nBitsTable = [numResolutions]uint8{
	0, // Day
	1, // AmPm
	1, // SixHour
	1, // ThreeHour
	2, // Hour
	1, // ThirtyMinute
	1, // FifteenMinute
	2, // FiveMinute
	3, // Minute
	1, // ThirtySecond
	1, // FifteenSecond
	2, // FiveSecond
	3, // Second
	1, // FiveHundredMilli
	3, // HundredMilli
	1, // FiftyMilli
	3, // TenMilli
	1, // FiveMilli
	3, // Millisecond
}

// NBits returns the number of data bits reserved for resolution r's slot.
func (r Resolution) NBits() uint8 {
	return nBitsTable[r]
}

// trailingZerosTable holds the marker-bit position for each resolution.
var trailingZerosTable = [numResolutions]uint8{
	31, // Day
	30, // AmPm
	29, // SixHour
	28, // ThreeHour
	26, // Hour
	25, // ThirtyMinute
	24, // FifteenMinute
	22, // FiveMinute
	19, // Minute
	18, // ThirtySecond
	17, // FifteenSecond
	15, // FiveSecond
	12, // Second
	11, // FiveHundredMilli
	8,  // HundredMilli
	7,  // FiftyMilli
	4,  // TenMilli
	3,  // FiveMilli
	0,  // Millisecond
}

// TrailingZeros returns the bit position of r's marker bit within a Time word.
func (r Resolution) TrailingZeros() uint8 {
	return trailingZerosTable[r]
}

// FromTrailingZeros returns the resolution whose marker bit lives at
// position z. Panics if z is not one of the 19 valid marker positions; this
// can only happen on a corrupted or foreign Time word.
func FromTrailingZeros(z uint8) Resolution {
	for i, tz := range trailingZerosTable {
		if tz == z {
			return Resolution(i)
		}
	}
	panic("datetime: invalid trailing zero count for Time marker bit")
}

// Coarser returns the next coarser resolution and true, or (Day, false) if r
// is already the coarsest.
func (r Resolution) Coarser() (Resolution, bool) {
	if r == Day {
		return Day, false
	}

	return r - 1, true
}

// Finer returns the next finer resolution and true, or (Millisecond, false)
// if r is already the finest.
func (r Resolution) Finer() (Resolution, bool) {
	if int(r) >= numResolutions-1 {
		return Millisecond, false
	}

	return r + 1, true
}

// Range returns the resolutions strictly between to (exclusive) and from
// (inclusive), ordered finest to coarsest. from must be finer than or equal
// to to; an empty slice is returned otherwise.
func Range(from, to Resolution) []Resolution {
	lo := int(to) + 1
	hi := int(from)
	if hi < lo {
		return nil
	}

	out := make([]Resolution, 0, hi-lo+1)
	for i := hi; i >= lo; i-- {
		out = append(out, Resolution(i))
	}

	return out
}

// Quotient returns a / b: the integer ratio of bucket counts, i.e. the
// number of b-sized buckets in one a-sized bucket. a must be coarser than or
// equal to b.
func Quotient(a, b Resolution) uint32 {
	ret := uint32(1)
	for _, res := range Range(b, a) {
		ret *= uint32(res.Subdivision())
	}

	return ret
}
