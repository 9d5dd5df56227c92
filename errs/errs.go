// Package errs collects the sentinel errors returned across the compactor
// module, so callers can compare with errors.Is regardless of which
// package produced them.
package errs

import "errors"

var (
	// ErrZeroRetention is returned by a PolicyBuilder with no rules at all.
	ErrZeroRetention = errors.New("compactor: policy has no retention rules")

	// ErrPolicyAppliesForZeroDays is returned when a rule is registered
	// with a zero-day retention window.
	ErrPolicyAppliesForZeroDays = errors.New("compactor: policy rule applies for zero days")

	// ErrSomePoliciesDominateOthers is returned when, after sorting rules
	// by retention window, the resolutions are not strictly increasing — i.e.
	// some rule would never apply because another rule already covers its
	// entire range at an equal or finer resolution.
	ErrSomePoliciesDominateOthers = errors.New("compactor: some policy rules dominate others")

	// ErrNonMonotonic is returned by Compactor.Push when the pushed
	// (date, time) pair is earlier than the last pushed value. A push
	// equal to the last one is merged into it, not rejected.
	ErrNonMonotonic = errors.New("compactor: pushed value is not monotonically increasing")

	// ErrEmptySnapshot is returned when encoding a Compactor with no data
	// points into a snapshot frame.
	ErrEmptySnapshot = errors.New("snapshot: compactor has no data to snapshot")

	// ErrInvalidFrameSize is returned when decoding a frame whose header
	// declares a size inconsistent with the bytes available.
	ErrInvalidFrameSize = errors.New("snapshot: frame size does not match header")

	// ErrPolicyMismatch is returned when restoring a snapshot whose policy
	// fingerprint does not match the target Compactor's policy.
	ErrPolicyMismatch = errors.New("snapshot: policy fingerprint does not match")

	// ErrUnsupportedCompression is returned when a frame names a
	// compression algorithm this build does not have a codec for.
	ErrUnsupportedCompression = errors.New("snapshot: unsupported compression algorithm")

	// ErrCorruptFrame is returned when a frame fails a structural
	// consistency check (bad magic, unknown version, truncated or trailing
	// record data).
	ErrCorruptFrame = errors.New("snapshot: corrupt frame")
)
