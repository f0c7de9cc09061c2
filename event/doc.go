// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package event provides a level-triggered, manually reset event.  An Event stays set until
it is explicitly cleared, so any number of waiters observe a single Set, and several Sets
in a row are indistinguishable from one.
*/
package event
