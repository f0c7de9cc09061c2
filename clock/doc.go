// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package clock abstracts the parts of the time package that waiting code depends upon.
Production code uses System(); tests substitute the mocks in clocktest.
*/
package clock
