// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/xmidt-org/syncseq/clock"
	"github.com/xmidt-org/syncseq/event"
	"github.com/xmidt-org/syncseq/semaphore"
	"go.uber.org/zap"
)

// operation names, used for the op label and log field
const (
	opIsEmpty        = "is_empty"
	opAppend         = "append"
	opExtend         = "extend"
	opInsert         = "insert"
	opRemove         = "remove"
	opPop            = "pop"
	opClear          = "clear"
	opIndex          = "index"
	opCount          = "count"
	opContains       = "contains"
	opSlice          = "slice"
	opReverse        = "reverse"
	opSort           = "sort"
	opGet            = "get"
	opLen            = "len"
	opDeleteAll      = "delete_all"
	opLock           = "lock"
	opSnapshot       = "snapshot"
	opNewFunc        = "new"
	opFromValue      = "from_value"
	opSortDescending = "sort_descending"
)

// List is a concurrency-safe ordered sequence.  The zero value is not usable; create
// instances with New, NewFunc, or FromValue.
type List[T any] struct {
	name     string
	logger   *zap.Logger
	clock    clock.Interface
	measures *Measures
	equal    func(a, b T) bool

	// lengthGauge is measures.Length labeled with this list's name
	lengthGauge metrics.Gauge

	lock    semaphore.Interface
	changed *event.Event

	// length mirrors len(items) for StaleLen.  It is only written while holding the lock.
	length atomic.Int64
	items  []T
}

// New creates a List whose elements are compared with ==.  The initial items, which may be nil,
// are copied.
func New[T comparable](items []T, o ...Option) *List[T] {
	return newList(func(a, b T) bool { return a == b }, items, newOptions(o...))
}

// NewFunc creates a List whose elements are compared with the given equality function.  The
// initial items, which may be nil, are copied.
func NewFunc[T any](equal func(a, b T) bool, items []T, o ...Option) (*List[T], error) {
	if equal == nil {
		return nil, invalidArgument(opNewFunc, "an equality function is required")
	}

	return newList(equal, items, newOptions(o...)), nil
}

func newList[T any](equal func(a, b T) bool, items []T, opts options) *List[T] {
	l := &List[T]{
		name:        opts.name,
		logger:      opts.logger.With(zap.String("list", opts.name)),
		clock:       opts.clock,
		measures:    opts.measures,
		equal:       equal,
		lengthGauge: opts.measures.Length.With(ListLabel, opts.name),
		lock: semaphore.Instrument(
			semaphore.Mutex(),
			semaphore.WithResources(opts.measures.LockHeld.With(ListLabel, opts.name)),
			semaphore.WithFailures(opts.measures.LockFailures),
		),
		changed: event.New(event.WithClock(opts.clock)),
		items:   slices.Clone(items),
	}

	l.refreshLength()
	return l
}

// acquire obtains the lock on behalf of an operation.  A canceled context is recorded as
// that operation's outcome.
func (l *List[T]) acquire(ctx context.Context, op string) error {
	if err := l.lock.AcquireCtx(ctx); err != nil {
		return l.done(op, err)
	}

	return nil
}

func (l *List[T]) release() {
	l.lock.Release()
}

// refreshLength updates the length mirror and gauge.  The lock must be held, or the list
// must not yet be shared.
func (l *List[T]) refreshLength() {
	n := len(l.items)
	l.length.Store(int64(n))
	l.lengthGauge.Set(float64(n))
}

// signal records a change.  The lock must be held.
func (l *List[T]) signal() {
	l.refreshLength()
	l.changed.Set()
}

// done records the outcome of an operation and returns its error unchanged
func (l *List[T]) done(op string, err error) error {
	l.measures.Operations.With(OpLabel, op, OutcomeLabel, outcomeOf(err)).Add(1.0)
	if err != nil {
		fields := []zap.Field{zap.String("op", op), zap.Error(err)}
		if e, ok := err.(*Error); ok {
			fields = append(fields, zap.Int("index", e.Index), zap.Int("length", e.Length))
		}

		l.logger.Debug("list operation failed", fields...)
	}

	return err
}

// IsEmpty tests if this list has no elements
func (l *List[T]) IsEmpty(ctx context.Context) (bool, error) {
	if err := l.acquire(ctx, opIsEmpty); err != nil {
		return false, err
	}

	defer l.release()
	return len(l.items) == 0, l.done(opIsEmpty, nil)
}

// Append adds an item to the end of this list
func (l *List[T]) Append(ctx context.Context, item T) error {
	if err := l.acquire(ctx, opAppend); err != nil {
		return err
	}

	defer l.release()
	l.items = append(l.items, item)
	l.signal()
	return l.done(opAppend, nil)
}

// Extend adds each item, in order, to the end of this list.  Extending with no items does
// nothing:  the lock is not acquired and no change is signaled.
func (l *List[T]) Extend(ctx context.Context, items ...T) error {
	if len(items) == 0 {
		return nil
	}

	if err := l.acquire(ctx, opExtend); err != nil {
		return err
	}

	defer l.release()
	l.items = append(l.items, items...)
	l.signal()
	return l.done(opExtend, nil)
}

// Insert places item at index, shifting the element at that index and all following elements
// to the right.  Valid indices are 0 through Len inclusive, where Len appends.
func (l *List[T]) Insert(ctx context.Context, index int, item T) error {
	if err := l.acquire(ctx, opInsert); err != nil {
		return err
	}

	defer l.release()
	if index < 0 || index > len(l.items) {
		return l.done(opInsert, outOfBounds(opInsert, index, len(l.items)))
	}

	l.items = slices.Insert(l.items, index, item)
	l.signal()
	return l.done(opInsert, nil)
}

// Remove deletes the first element equal to item
func (l *List[T]) Remove(ctx context.Context, item T) error {
	if err := l.acquire(ctx, opRemove); err != nil {
		return err
	}

	defer l.release()
	i := slices.IndexFunc(l.items, func(e T) bool { return l.equal(e, item) })
	if i < 0 {
		return l.done(opRemove, notFound(opRemove, len(l.items)))
	}

	l.items = slices.Delete(l.items, i, i+1)
	l.signal()
	return l.done(opRemove, nil)
}

// Pop removes and returns the last element
func (l *List[T]) Pop(ctx context.Context) (T, error) {
	if err := l.acquire(ctx, opPop); err != nil {
		var zero T
		return zero, err
	}

	defer l.release()
	return l.popAt(len(l.items) - 1)
}

// PopAt removes and returns the element at index.  A negative index counts back from the end,
// so -1 is the last element.  Valid indices are -Len through Len-1.
func (l *List[T]) PopAt(ctx context.Context, index int) (T, error) {
	if err := l.acquire(ctx, opPop); err != nil {
		var zero T
		return zero, err
	}

	defer l.release()
	return l.popAt(index)
}

func (l *List[T]) popAt(index int) (item T, err error) {
	i := index
	if i < 0 {
		i += len(l.items)
	}

	if i < 0 || i >= len(l.items) {
		err = l.done(opPop, outOfBounds(opPop, index, len(l.items)))
		return
	}

	item = l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.signal()
	err = l.done(opPop, nil)
	return
}

// Clear removes every element
func (l *List[T]) Clear(ctx context.Context) error {
	if err := l.acquire(ctx, opClear); err != nil {
		return err
	}

	defer l.release()
	clear(l.items)
	l.items = l.items[:0]
	l.signal()
	return l.done(opClear, nil)
}

// Reverse reverses the order of the elements in place
func (l *List[T]) Reverse(ctx context.Context) error {
	if err := l.acquire(ctx, opReverse); err != nil {
		return err
	}

	defer l.release()
	slices.Reverse(l.items)
	l.signal()
	return l.done(opReverse, nil)
}

// Sort performs a stable, ascending sort using cmp, which returns a negative number when a < b,
// zero when a and b are equivalent, and a positive number when a > b.  cmp.Compare is suitable
// for ordered element types.
func (l *List[T]) Sort(ctx context.Context, cmp func(a, b T) int) error {
	return l.sort(ctx, opSort, cmp, false)
}

// SortDescending performs a stable, descending sort using cmp.  Equivalent elements keep their
// original relative order.
func (l *List[T]) SortDescending(ctx context.Context, cmp func(a, b T) int) error {
	return l.sort(ctx, opSortDescending, cmp, true)
}

func (l *List[T]) sort(ctx context.Context, op string, cmp func(a, b T) int, descending bool) error {
	if cmp == nil {
		return l.done(op, invalidArgument(op, "a comparison function is required"))
	}

	if err := l.acquire(ctx, op); err != nil {
		return err
	}

	defer l.release()
	if descending {
		slices.SortStableFunc(l.items, func(a, b T) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(l.items, cmp)
	}

	l.signal()
	return l.done(op, nil)
}

// Get returns the element at index
func (l *List[T]) Get(ctx context.Context, index int) (T, error) {
	var zero T
	if err := l.acquire(ctx, opGet); err != nil {
		return zero, err
	}

	defer l.release()
	if index < 0 || index >= len(l.items) {
		return zero, l.done(opGet, outOfBounds(opGet, index, len(l.items)))
	}

	return l.items[index], l.done(opGet, nil)
}

// Len returns the number of elements
func (l *List[T]) Len(ctx context.Context) (int, error) {
	if err := l.acquire(ctx, opLen); err != nil {
		return 0, err
	}

	defer l.release()
	return len(l.items), l.done(opLen, nil)
}

// StaleLen returns the number of elements as of the most recently completed change, without
// acquiring the lock.  The value may already be out of date when it is returned, so Len should
// be preferred whenever the result drives a decision.
func (l *List[T]) StaleLen() int {
	return int(l.length.Load())
}

// DeleteAll removes every element equal to item and returns how many were removed.  A change is
// signaled even when nothing matched.
func (l *List[T]) DeleteAll(ctx context.Context, item T) (int, error) {
	if err := l.acquire(ctx, opDeleteAll); err != nil {
		return 0, err
	}

	defer l.release()
	before := len(l.items)
	l.items = slices.DeleteFunc(l.items, func(e T) bool { return l.equal(e, item) })
	l.signal()
	return before - len(l.items), l.done(opDeleteAll, nil)
}

// WaitForChange blocks until this list changes, the timeout elapses, or the context is canceled.
// A nonpositive timeout means no timeout.  The result is true only if a change was signaled.
//
// Whatever the outcome, the change signal is reset before this method returns.  Changes made while
// nobody was waiting are therefore reported once, by the next call.
func (l *List[T]) WaitForChange(ctx context.Context, timeout time.Duration) bool {
	defer l.changed.Clear()

	start := l.clock.Now()
	changed := l.changed.Wait(ctx, timeout)
	l.measures.WaitDuration.Observe(l.clock.Since(start).Seconds())

	outcome := ChangedOutcome
	switch {
	case changed:
	case ctx.Err() != nil:
		outcome = CanceledOutcome
	default:
		outcome = TimeoutOutcome
	}

	l.measures.ChangeWaits.With(OutcomeLabel, outcome).Add(1.0)
	return changed
}
