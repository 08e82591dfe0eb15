package scheduling

import "math/rand"

// Real constrains the scalar types an Interval can range over.
type Real interface {
	~float32 | ~float64
}

// An Interval is an immutable closed range [low, high] over a scalar time
// unit. The bounds are always ordered and non-negative: negative bounds are
// clamped to zero and the high bound is raised to the low bound when the
// inputs are out of order. A degenerate interval (low == high) represents a
// deterministic point.
type Interval[T Real] struct {
	low, high T
}

// NewInterval creates an Interval from the given bounds, sanitizing them
// instead of rejecting them.
func NewInterval[T Real](low, high T) Interval[T] {
	if low < 0 {
		low = 0
	}
	if high < low {
		high = low
	}
	return Interval[T]{low: low, high: high}
}

// NewPointInterval creates a degenerate Interval that always yields p.
func NewPointInterval[T Real](p T) Interval[T] {
	return NewInterval(p, p)
}

// Low returns the lower bound.
func (i Interval[T]) Low() T {
	return i.low
}

// High returns the upper bound.
func (i Interval[T]) High() T {
	return i.high
}

// ClampToPositive returns a copy of the interval with both bounds floored at
// zero.
func (i Interval[T]) ClampToPositive() Interval[T] {
	return NewInterval(i.low, i.high)
}

// WithLow returns a copy with the lower bound replaced. The upper bound is
// raised to the new lower bound when it would otherwise fall below it.
func (i Interval[T]) WithLow(low T) Interval[T] {
	if low < 0 {
		low = 0
	}
	high := i.high
	if high < low {
		high = low
	}
	return Interval[T]{low: low, high: high}
}

// WithHigh returns a copy with the upper bound replaced. The lower bound is
// lowered to the new upper bound only when it would otherwise exceed it.
func (i Interval[T]) WithHigh(high T) Interval[T] {
	if high < 0 {
		high = 0
	}
	low := i.low
	if low > high {
		low = high
	}
	return Interval[T]{low: low, high: high}
}

// Sample draws a value uniformly from the interval using r. A degenerate
// interval always yields its single point, regardless of r.
func (i Interval[T]) Sample(r *rand.Rand) T {
	if i.low == i.high {
		return i.low
	}
	return i.low + T(r.Float64())*(i.high-i.low)
}
