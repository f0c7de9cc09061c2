// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics provides configurability for Prometheus-based metrics.  The more general go-kit interfaces
are used where possible, so that components such as list.List can be instrumented with any go-kit
metrics.Provider and tested with the go-kit generic metrics.
*/
package xmetrics
