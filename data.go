package compactor

import (
	"github.com/asayers/compactor/aggregate"
	"github.com/asayers/compactor/datetime"
)

// entry is one (date, time, value) data point. Entries in a compactedData
// are always kept sorted by (date, time).
type entry[T aggregate.Aggregate[T]] struct {
	date datetime.Date
	time datetime.Time
	val  T
}

// compactedData holds a Compactor's data points in push order, oldest
// first.
type compactedData[T aggregate.Aggregate[T]] struct {
	entries []entry[T]
}

// discard removes every entry on a day up to and including upTo.
func (d *compactedData[T]) discard(upTo datetime.Date) {
	remove := len(d.entries)
	for i, e := range d.entries {
		if e.date.After(upTo) {
			remove = i
			break
		}
	}
	d.entries = d.entries[remove:]
}

// compact reduces the resolution of every entry on a day up to and
// including upTo to (at most) res, merging entries that become identical
// in the process. Entries already at res or coarser are left untouched,
// and the scan stops at the first entry past upTo.
func (d *compactedData[T]) compact(upTo datetime.Date, res datetime.Resolution) {
	start, end := -1, -1
	for i, e := range d.entries {
		if e.time.Resolution() <= res {
			continue
		}
		if e.date.After(upTo) {
			break
		}
		if start == -1 {
			start = i
		}
		end = i
	}
	if start == -1 {
		return
	}

	window := d.entries[start : end+1]
	merged := make([]entry[T], 0, len(window))
	for _, e := range window {
		e.time.ReduceTo(res)
		if n := len(merged); n > 0 && merged[n-1].date == e.date && merged[n-1].time == e.time {
			merged[n-1].val = merged[n-1].val.Merge(e.val)

			continue
		}
		merged = append(merged, e)
	}

	tail := append([]entry[T]{}, d.entries[end+1:]...)
	d.entries = append(d.entries[:start], merged...)
	d.entries = append(d.entries, tail...)
}

// applyPolicy discards and compacts entries relative to date, the day that
// was just appended.
func (d *compactedData[T]) applyPolicy(policy Policy, date datetime.Date) {
	upTo := date.SubDays(int(policy.maxRetention))
	d.discard(upTo)

	for _, rule := range policy.compactionRules {
		upTo := date.SubDays(int(rule.days))
		d.compact(upTo, rule.res)
	}
}
