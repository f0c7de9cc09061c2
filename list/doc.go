// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package list provides List, an ordered sequence that any number of goroutines can read and
modify without external synchronization.

Every operation acquires the list's lock for its duration, and the lock acquisition honors
the supplied context.  Operations that change the list set a change signal, which goroutines
can wait on with WaitForChange instead of polling.  The signal is level-triggered and is reset
once per WaitForChange call, so several changes made while nobody was waiting produce a single
wake up.

Callers that need several steps under one critical section obtain a View with Lock or Do.
*/
package list
