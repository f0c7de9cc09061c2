// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"context"
	"fmt"
	"iter"
	"slices"
)

// Snapshot returns a copy of the elements
func (l *List[T]) Snapshot(ctx context.Context) ([]T, error) {
	if err := l.acquire(ctx, opSnapshot); err != nil {
		return nil, err
	}

	defer l.release()
	return slices.Clone(l.items), l.done(opSnapshot, nil)
}

// All returns an iterator over the elements.  Each iteration works from a snapshot taken when
// it starts, so changes made during the iteration, including by the loop body, are not seen.
// If the snapshot cannot be taken because ctx is canceled, the iteration yields nothing.
func (l *List[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		items, err := l.Snapshot(ctx)
		if err != nil {
			return
		}

		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// String returns a representation of the elements, e.g. List[1 2 3].  It never waits for the
// lock: while the lock is held, including by the goroutine calling String from inside Do or
// with a View, it returns List<locked len=N> using StaleLen.
func (l *List[T]) String() string {
	if !l.lock.TryAcquire() {
		return fmt.Sprintf("List<locked len=%d>", l.StaleLen())
	}

	items := slices.Clone(l.items)
	l.release()
	return fmt.Sprintf("List%v", items)
}
