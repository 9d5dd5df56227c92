// Package datetime provides a resolution-tagged time-of-day type (Time) and
// a plain civil calendar date type (Date).
//
// Time packs a time-of-day value and the Resolution it was recorded at into
// a single 32-bit word, so reducing resolution never requires touching the
// bits that are kept; see Resolution and Time for details.
package datetime
