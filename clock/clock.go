// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Interface is the time source consulted by anything in this module that waits.  Injecting an
// Interface lets tests drive timeouts without sleeping.
type Interface interface {
	Now() time.Time
	Since(time.Time) time.Duration
	NewTimer(time.Duration) Timer
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (sc systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}
