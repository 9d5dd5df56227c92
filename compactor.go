// Package compactor implements a time-series value container that keeps
// recent samples at full resolution and progressively reduces the
// resolution of older samples according to a retention Policy.
package compactor

import (
	"fmt"
	"iter"

	"github.com/asayers/compactor/aggregate"
	"github.com/asayers/compactor/datetime"
	"github.com/asayers/compactor/errs"
	"github.com/asayers/compactor/internal/options"
)

// Compactor stores values pushed in (date, time) order, folding same-bucket
// values together with T's Aggregate implementation and reducing the
// resolution of older data as dictated by its Policy.
type Compactor[T aggregate.Aggregate[T]] struct {
	policy Policy
	data   compactedData[T]
}

// compactorConfig holds the tunables applied by CompactorOption values.
type compactorConfig struct {
	capacityHint int
}

// CompactorOption configures a CompactorBuilder.
type CompactorOption = options.Option[*compactorConfig]

// WithCapacityHint pre-allocates room for n entries, avoiding the repeated
// slice growth a Compactor would otherwise pay for during its first n
// pushes. Purely a performance hint: a Compactor holding fewer than n
// entries, or more, behaves identically either way.
func WithCapacityHint(n int) CompactorOption {
	return options.NoError(func(c *compactorConfig) {
		c.capacityHint = n
	})
}

// CompactorBuilder accumulates retention rules before building a Compactor.
type CompactorBuilder[T aggregate.Aggregate[T]] struct {
	policy *PolicyBuilder
	cfg    *compactorConfig
}

// NewCompactor starts building a Compactor with no retention rules.
func NewCompactor[T aggregate.Aggregate[T]]() *CompactorBuilder[T] {
	return &CompactorBuilder[T]{policy: NewPolicyBuilder(), cfg: &compactorConfig{}}
}

// KeepForDays registers a rule: allow this Compactor to keep data at
// resolution res for up to numDays days.
func (b *CompactorBuilder[T]) KeepForDays(numDays uint16, res datetime.Resolution) *CompactorBuilder[T] {
	b.policy.KeepForDays(numDays, res)

	return b
}

// With applies CompactorOption tunables, such as WithCapacityHint.
func (b *CompactorBuilder[T]) With(opts ...CompactorOption) *CompactorBuilder[T] {
	_ = options.Apply(b.cfg, opts...)

	return b
}

// Build validates the accumulated rules and returns a ready-to-use
// Compactor.
func (b *CompactorBuilder[T]) Build() (*Compactor[T], error) {
	p, err := b.policy.Build()
	if err != nil {
		return nil, err
	}

	c := &Compactor[T]{policy: p}
	if b.cfg.capacityHint > 0 {
		c.data.entries = make([]entry[T], 0, b.cfg.capacityHint)
	}

	return c, nil
}

// FromPolicy constructs an empty Compactor from an already-validated Policy.
func FromPolicy[T aggregate.Aggregate[T]](p Policy) *Compactor[T] {
	return &Compactor[T]{policy: p}
}

// Policy returns the retention policy this Compactor enforces.
func (c *Compactor[T]) Policy() Policy {
	return c.policy
}

// Len returns the number of (date, time) buckets currently stored.
func (c *Compactor[T]) Len() int {
	return len(c.data.entries)
}

// IsEmpty reports whether the Compactor holds no data.
func (c *Compactor[T]) IsEmpty() bool {
	return len(c.data.entries) == 0
}

// Entry is one (date, time, value) bucket, as yielded by Compactor.All.
type Entry[T any] struct {
	Date  datetime.Date
	Time  datetime.Time
	Value T
}

// All iterates the stored buckets from oldest to newest.
func (c *Compactor[T]) All() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for _, e := range c.data.entries {
			if !yield(Entry[T]{Date: e.date, Time: e.time, Value: e.val}) {
				return
			}
		}
	}
}

// AllWithMaxResolution iterates the stored buckets from oldest to newest,
// reducing every entry's time to (at most) res on the fly and merging
// payloads that become identical under that reduction. The underlying
// buffer is untouched; yielded entries are independent of it.
func (c *Compactor[T]) AllWithMaxResolution(res datetime.Resolution) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		var cur *Entry[T]
		for _, e := range c.data.entries {
			t := e.time
			t.ReduceTo(res)

			if cur != nil && cur.Date == e.date && cur.Time == t {
				cur.Value = cur.Value.Merge(e.val)

				continue
			}

			if cur != nil {
				if !yield(*cur) {
					return
				}
			}
			cur = &Entry[T]{Date: e.date, Time: t, Value: e.val}
		}

		if cur != nil {
			yield(*cur)
		}
	}
}

// Push records x at the given date and time. time is clamped to the
// policy's maximum resolution before storage.
//
// Data must be pushed in non-decreasing (date, time) order; Push returns
// ErrNonMonotonic if date or time would go backwards relative to the last
// pushed value. Two pushes landing in the same bucket are folded together
// with T.Merge, the earlier push passed as the receiver.
func (c *Compactor[T]) Push(date datetime.Date, t datetime.Time, x T) error {
	t.ReduceTo(c.policy.maxRes)

	n := len(c.data.entries)
	if n == 0 {
		c.data.entries = append(c.data.entries, entry[T]{date: date, time: t, val: x})

		return nil
	}

	last := &c.data.entries[n-1]

	switch cmp := last.date.Compare(date); {
	case cmp > 0:
		return errs.ErrNonMonotonic
	case cmp < 0:
		c.data.entries = append(c.data.entries, entry[T]{date: date, time: t, val: x})
		c.data.applyPolicy(c.policy, date)

		return nil
	}

	// Same day: compare times. A missing ordering means the head entry was
	// just compacted to a coarser resolution with no new push since, which
	// should never happen because every push clamps to the policy's
	// maxRes and applyPolicy only ever coarsens entries strictly older
	// than the day being pushed.
	ord, ok := last.time.Compare(t)
	if !ok {
		panic(fmt.Sprintf("compactor: compacted head (last=%s, pushed=%s)", last.time, t))
	}

	switch {
	case ord < 0:
		c.data.entries = append(c.data.entries, entry[T]{date: date, time: t, val: x})
	case ord == 0:
		last.val = last.val.Merge(x)
	case ord > 0:
		return errs.ErrNonMonotonic
	}

	return nil
}

// UpdateDate forces eviction and compaction as if date had just been
// observed, without recording a new sample. It is a no-op unless date is
// strictly later than the last stored entry's date. Calling UpdateDate
// twice in a row with the same date is equivalent to calling it once:
// discarding data already discarded, and compacting data already at the
// target resolution, are themselves no-ops.
func (c *Compactor[T]) UpdateDate(date datetime.Date) {
	n := len(c.data.entries)
	if n == 0 {
		return
	}

	last := c.data.entries[n-1]
	if last.date.Compare(date) < 0 {
		c.data.applyPolicy(c.policy, date)
	}
}
