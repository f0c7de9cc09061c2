// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package semaphore provides the channel-based binary lock behind list.List.

Unlike sync.Mutex, acquisition can be abandoned when a context is canceled, which is what
lets every list operation be a cancelable suspension point.  TryAcquire never waits, so
callers that must not block, such as fmt.Stringer implementations, can fall back when the
lock is busy.
*/
package semaphore
