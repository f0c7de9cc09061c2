// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Timer represents a one-shot event source triggered at a particular time.  It is the analog of time.Timer.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type systemTimer struct {
	*time.Timer
}

func (st systemTimer) C() <-chan time.Time {
	return st.Timer.C
}
