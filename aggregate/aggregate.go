// Package aggregate provides the combinators a Compactor uses to fold two
// data points that land in the same compacted bucket into one.
package aggregate

import "cmp"

// Aggregate combines two values that share a compaction bucket. Merge need
// not be commutative: self is always the earlier-pushed value and other is
// the later one.
type Aggregate[T any] interface {
	Merge(other T) T
}

// Min keeps the smaller of two ordered values.
type Min[T cmp.Ordered] struct {
	Value T
}

func (m Min[T]) Merge(other Min[T]) Min[T] {
	if other.Value < m.Value {
		return other
	}

	return m
}

// Max keeps the larger of two ordered values.
type Max[T cmp.Ordered] struct {
	Value T
}

func (m Max[T]) Merge(other Max[T]) Max[T] {
	if other.Value > m.Value {
		return other
	}

	return m
}

// First keeps whichever value was pushed first and ignores every later one.
type First[T any] struct {
	Value T
}

func (f First[T]) Merge(_ First[T]) First[T] {
	return f
}

// Last keeps whichever value was pushed most recently.
type Last[T any] struct {
	Value T
}

func (l Last[T]) Merge(other Last[T]) Last[T] {
	return other
}

// Candlestick tracks the open, close, low, and high of a series of ordered
// values over a bucket, the way a financial candlestick chart does.
type Candlestick[T cmp.Ordered] struct {
	First First[T]
	Last  Last[T]
	Min   Min[T]
	Max   Max[T]
}

// NewCandlestick seeds a Candlestick with a single observation.
func NewCandlestick[T cmp.Ordered](x T) Candlestick[T] {
	return Candlestick[T]{
		First: First[T]{Value: x},
		Last:  Last[T]{Value: x},
		Min:   Min[T]{Value: x},
		Max:   Max[T]{Value: x},
	}
}

func (c Candlestick[T]) Merge(other Candlestick[T]) Candlestick[T] {
	return Candlestick[T]{
		First: c.First.Merge(other.First),
		Last:  c.Last.Merge(other.Last),
		Min:   c.Min.Merge(other.Min),
		Max:   c.Max.Merge(other.Max),
	}
}

// Concat merges two buckets by appending their elements in push order.
type Concat[T any] []T

func (c Concat[T]) Merge(other Concat[T]) Concat[T] {
	return append(c, other...)
}

// Optional merges two buckets that may or may not carry a value: a present
// value always wins over an absent one, and two present values merge
// through T's own Aggregate implementation.
type Optional[T Aggregate[T]] struct {
	Value   T
	Present bool
}

// Some wraps a present value.
func Some[T Aggregate[T]](x T) Optional[T] {
	return Optional[T]{Value: x, Present: true}
}

func (o Optional[T]) Merge(other Optional[T]) Optional[T] {
	switch {
	case o.Present && other.Present:
		return Optional[T]{Value: o.Value.Merge(other.Value), Present: true}
	case o.Present:
		return o
	default:
		return other
	}
}
