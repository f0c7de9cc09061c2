// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// FromValue creates a List from an untyped value, such as a slice read from configuration.  The value
// must be nil, a slice, or an array, and each of its elements must decode into T.  Any other value is
// an ErrInvalidArgument.
func FromValue[T comparable](v interface{}, o ...Option) (*List[T], error) {
	if v == nil {
		return New[T](nil, o...), nil
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, invalidArgument(opFromValue, fmt.Sprintf("expected a sequence, got %T", v))
	}

	var items []T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &items,
	})

	if err == nil {
		err = decoder.Decode(v)
	}

	if err != nil {
		return nil, invalidArgument(opFromValue, err.Error())
	}

	return New(items, o...), nil
}
