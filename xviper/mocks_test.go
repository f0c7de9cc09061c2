// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
)

type mockUnmarshaler struct {
	mock.Mock
}

func (m *mockUnmarshaler) Unmarshal(v interface{}, _ ...viper.DecoderConfigOption) error {
	return m.Called(v).Error(0)
}

type mockKeyUnmarshaler struct {
	mock.Mock
}

func (m *mockKeyUnmarshaler) UnmarshalKey(k string, v interface{}, _ ...viper.DecoderConfigOption) error {
	return m.Called(k, v).Error(0)
}

type mockDefaulter struct {
	mock.Mock
}

func (m *mockDefaulter) SetDefault(k string, v interface{}) {
	m.Called(k, v)
}
