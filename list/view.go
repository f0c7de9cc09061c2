// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"context"
	"sync"
)

// View is exclusive, raw access to a List's elements.  The List's lock is held from the moment
// the View is obtained until Release is called.  View methods perform no bounds checking:  an
// invalid index panics the same way it would for a slice.
//
// A View must not be used after it is released, and must not be shared between goroutines.
type View[T any] struct {
	list *List[T]
	once sync.Once
}

// Lock acquires the list's lock and returns a View of its elements.  The caller must Release
// the View, typically via defer.  Prefer Do, which always releases.
func (l *List[T]) Lock(ctx context.Context) (*View[T], error) {
	if err := l.acquire(ctx, opLock); err != nil {
		return nil, err
	}

	l.done(opLock, nil)
	return &View[T]{list: l}, nil
}

// Do invokes f with a View of this list, releasing the View when f returns or panics.  The error
// from f is returned as is.
func (l *List[T]) Do(ctx context.Context, f func(*View[T]) error) error {
	v, err := l.Lock(ctx)
	if err != nil {
		return err
	}

	defer v.Release()
	return f(v)
}

func (v *View[T]) target() *List[T] {
	if v.list == nil {
		panic(ErrViewReleased)
	}

	return v.list
}

// Items returns the live backing slice.  Changes to its elements are changes to the list, but
// the slice must not be retained past Release.
func (v *View[T]) Items() []T {
	return v.target().items
}

// Replace makes items the list's backing slice
func (v *View[T]) Replace(items []T) {
	v.target().items = items
}

// Append adds items to the end of the list
func (v *View[T]) Append(items ...T) {
	l := v.target()
	l.items = append(l.items, items...)
}

func (v *View[T]) Len() int {
	return len(v.target().items)
}

func (v *View[T]) Get(i int) T {
	return v.target().items[i]
}

func (v *View[T]) Set(i int, item T) {
	v.target().items[i] = item
}

// Release signals a change, whether or not one was made, and then releases the list's lock.
// Only the first call has any effect.
func (v *View[T]) Release() {
	v.once.Do(func() {
		l := v.list
		v.list = nil
		l.signal()
		l.release()
	})
}
