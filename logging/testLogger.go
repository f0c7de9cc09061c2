// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// testLogger is implemented by testing.T and testing.B
type testLogger interface {
	Log(...interface{})
}

// testWriter implements io.Writer and delegates to a testLogger
type testWriter struct {
	testLogger
}

func (t testWriter) Write(data []byte) (int, error) {
	t.testLogger.Log(string(data))
	return len(data), nil
}

// NewTestWriter returns an io.Writer which delegates to a testing log.
// The returned io.Writer does not need to be synchronized.
func NewTestWriter(t testLogger) io.Writer {
	return testWriter{t}
}

// NewTestLogger produces a zap Logger which sends every entry, at all levels, to the supplied testing log.
func NewTestLogger(t testLogger) *zap.Logger {
	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(NewTestWriter(t)),
			zap.DebugLevel,
		),
	)
}
