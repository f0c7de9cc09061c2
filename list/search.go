// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"context"
	"math"
)

const (
	// ToEnd is an end or stop bound past every element.  As a start bound with a negative
	// step, it selects the last element.
	ToEnd = math.MaxInt

	// FromStart is a bound before every element.  As the stop bound with a negative step,
	// it lets a slice run through the first element.
	FromStart = math.MinInt
)

// clampBound resolves a possibly negative bound against a length:  negative values count
// back from the end, and the result is pinned to [lower, upper].
func clampBound(bound, length, lower, upper int) int {
	if bound < 0 {
		bound += length
		if bound < lower {
			bound = lower
		}
	} else if bound > upper {
		bound = upper
	}

	return bound
}

// Index returns the position of the first element equal to item
func (l *List[T]) Index(ctx context.Context, item T) (int, error) {
	return l.IndexRange(ctx, item, 0, ToEnd)
}

// IndexRange returns the position of the first element equal to item within [start, end).
// Negative bounds count back from the end of the list, and out of range bounds are clamped,
// so IndexRange(ctx, item, -2, ToEnd) searches the last two elements.
func (l *List[T]) IndexRange(ctx context.Context, item T, start, end int) (int, error) {
	if err := l.acquire(ctx, opIndex); err != nil {
		return -1, err
	}

	defer l.release()
	n := len(l.items)
	start = clampBound(start, n, 0, n)
	end = clampBound(end, n, 0, n)
	for i := start; i < end; i++ {
		if l.equal(l.items[i], item) {
			return i, l.done(opIndex, nil)
		}
	}

	return -1, l.done(opIndex, notFound(opIndex, n))
}

// Count returns the number of elements equal to item
func (l *List[T]) Count(ctx context.Context, item T) (int, error) {
	if err := l.acquire(ctx, opCount); err != nil {
		return 0, err
	}

	defer l.release()
	count := 0
	for _, e := range l.items {
		if l.equal(e, item) {
			count++
		}
	}

	return count, l.done(opCount, nil)
}

// Contains tests if any element is equal to item
func (l *List[T]) Contains(ctx context.Context, item T) (bool, error) {
	if err := l.acquire(ctx, opContains); err != nil {
		return false, err
	}

	defer l.release()
	for _, e := range l.items {
		if l.equal(e, item) {
			return true, l.done(opContains, nil)
		}
	}

	return false, l.done(opContains, nil)
}

// Slice returns a new slice holding the selected elements.  Start and stop follow the same rules
// as IndexRange, and every step-th element is selected.  A negative step walks backward from
// start, so Slice(ctx, ToEnd, FromStart, -1) returns the elements in reverse.  A step of zero is
// an ErrInvalidArgument.  The list is not changed.
func (l *List[T]) Slice(ctx context.Context, start, stop, step int) ([]T, error) {
	if step == 0 {
		return nil, l.done(opSlice, invalidArgument(opSlice, "step cannot be zero"))
	}

	if err := l.acquire(ctx, opSlice); err != nil {
		return nil, err
	}

	defer l.release()
	n := len(l.items)

	var count int
	if step > 0 {
		start = clampBound(start, n, 0, n)
		stop = clampBound(stop, n, 0, n)
		if start < stop {
			count = (stop-start-1)/step + 1
		}
	} else {
		start = clampBound(start, n, -1, n-1)
		stop = clampBound(stop, n, -1, n-1)
		if stop < start {
			// the quotient is nonpositive, which avoids negating step
			count = 1 - (start-stop-1)/step
		}
	}

	result := make([]T, count)
	for k := range result {
		result[k] = l.items[start+k*step]
	}

	return result, l.done(opSlice, nil)
}
