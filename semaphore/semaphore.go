// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package semaphore

import (
	"context"
)

// Interface is a binary semaphore.  When an acquire method succeeds, Release *must* be
// called to hand the lock back.
type Interface interface {
	// AcquireCtx waits for the lock until the given context is canceled.  If the lock
	// was acquired, this method returns nil.  Otherwise, this method returns ctx.Err().
	AcquireCtx(context.Context) error

	// TryAcquire attempts to take the lock, returning false immediately if it is held.
	TryAcquire() bool

	// Release relinquishes the lock.  Releasing a lock that is not held panics.
	Release()
}

// Mutex returns an unlocked binary semaphore.  It is not reentrant: a goroutine that
// already holds it and tries to acquire it again waits on itself.
func Mutex() Interface {
	return &binary{
		held: make(chan struct{}, 1),
	}
}

// binary holds the lock while its single buffer slot is occupied.
type binary struct {
	held chan struct{}
}

func (b *binary) AcquireCtx(ctx context.Context) error {
	// a canceled context never acquires, even when the lock happens to be free
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case b.held <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *binary) TryAcquire() bool {
	select {
	case b.held <- struct{}{}:
		return true
	default:
		return false
	}
}

func (b *binary) Release() {
	select {
	case <-b.held:
	default:
		panic("semaphore: release of an unheld lock")
	}
}
