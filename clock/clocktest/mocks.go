// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/syncseq/clock"
)

// Mock is a stretchr mock for a clock.  In addition to implementing clock.Interface, the On* methods
// make setting expectations a bit less verbose.
type Mock struct {
	mock.Mock
}

var _ clock.Interface = (*Mock)(nil)

func (m *Mock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *Mock) OnNow(v time.Time) *mock.Call {
	return m.On("Now").Return(v)
}

func (m *Mock) Since(t time.Time) time.Duration {
	return m.Called(t).Get(0).(time.Duration)
}

func (m *Mock) OnSince(t time.Time, d time.Duration) *mock.Call {
	return m.On("Since", t).Return(d)
}

func (m *Mock) NewTimer(d time.Duration) clock.Timer {
	return m.Called(d).Get(0).(clock.Timer)
}

func (m *Mock) OnNewTimer(d time.Duration, t clock.Timer) *mock.Call {
	return m.On("NewTimer", d).Return(t)
}

// MockTimer is a stretchr mock for the clock.Timer interface
type MockTimer struct {
	mock.Mock
}

var _ clock.Timer = (*MockTimer)(nil)

func (m *MockTimer) C() <-chan time.Time {
	return m.Called().Get(0).(<-chan time.Time)
}

func (m *MockTimer) OnC(c <-chan time.Time) *mock.Call {
	return m.On("C").Return(c)
}

func (m *MockTimer) Stop() bool {
	return m.Called().Bool(0)
}

func (m *MockTimer) OnStop(r bool) *mock.Call {
	return m.On("Stop").Return(r)
}

// NewManualTimer produces a MockTimer whose channel is controlled by the caller.  Sending on, or closing,
// the returned channel fires the timer.  Stop is expected, but optional.
func NewManualTimer() (*MockTimer, chan time.Time) {
	var (
		c = make(chan time.Time, 1)
		t = new(MockTimer)
	)

	t.OnC(c)
	t.OnStop(true).Maybe()
	return t, c
}
