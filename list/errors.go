// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"errors"
	"fmt"
)

var (
	// ErrList is the general kind of every error produced by a List.  Context errors are
	// never wrapped, and so are not ErrList errors.
	ErrList = errors.New("list")

	// ErrNotFound indicates that no element equal to the requested item exists.
	ErrNotFound = fmt.Errorf("%w: item not found", ErrList)

	// ErrIndexOutOfBounds indicates that an index argument is not valid for the list's current length.
	ErrIndexOutOfBounds = fmt.Errorf("%w: index out of bounds", ErrList)

	// ErrInvalidArgument indicates malformed input to a constructor or operation.
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrList)

	// ErrViewReleased is the panic value when a View is used after it was released.
	ErrViewReleased = fmt.Errorf("%w: the view has been released", ErrList)
)

// Error carries the details of a failed List operation.  Err is always one of the sentinel
// errors in this package.
type Error struct {
	// Op is the name of the operation that failed, e.g. "insert"
	Op string

	// Index is the offending index for ErrIndexOutOfBounds errors
	Index int

	// Length is the list's length at the time of the failure
	Length int

	Err error
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrIndexOutOfBounds) {
		return fmt.Sprintf("%s: %s: index %d, length %d", e.Op, e.Err, e.Index, e.Length)
	}

	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func outOfBounds(op string, index, length int) error {
	return &Error{Op: op, Index: index, Length: length, Err: ErrIndexOutOfBounds}
}

func notFound(op string, length int) error {
	return &Error{Op: op, Index: -1, Length: length, Err: ErrNotFound}
}

func invalidArgument(op string, reason string) error {
	return &Error{Op: op, Index: -1, Err: fmt.Errorf("%w: %s", ErrInvalidArgument, reason)}
}
