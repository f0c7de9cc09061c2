// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRange(t *testing.T) {
	var (
		ctx = context.Background()
		l   = New([]int{5, 1, 5, 5})
	)

	testData := []struct {
		item       int
		start, end int
		expected   int
	}{
		{item: 5, start: 1, end: 3, expected: 2},
		{item: 5, start: 0, end: ToEnd, expected: 0},
		{item: 1, start: 0, end: ToEnd, expected: 1},
		{item: 5, start: -1, end: ToEnd, expected: 3},
		{item: 5, start: -2, end: -1, expected: 2},
		{item: 5, start: FromStart, end: 1, expected: 0},
		{item: 1, start: -100, end: 100, expected: 1},
	}

	for _, record := range testData {
		t.Run(strconv.Itoa(record.start)+"_"+strconv.Itoa(record.end), func(t *testing.T) {
			i, err := l.IndexRange(ctx, record.item, record.start, record.end)
			require.NoError(t, err)
			assert.Equal(t, record.expected, i)
		})
	}

	notFound := []struct {
		item       int
		start, end int
	}{
		{item: 9, start: 0, end: ToEnd},
		{item: 1, start: 2, end: ToEnd},
		{item: 5, start: 1, end: 2},
		{item: 5, start: 3, end: 1},
		{item: 5, start: 4, end: ToEnd},
		{item: 5, start: 100, end: 200},
	}

	for _, record := range notFound {
		i, err := l.IndexRange(ctx, record.item, record.start, record.end)
		assert.Equal(t, -1, i)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	i, err := l.Index(ctx, 9)
	assert.Equal(t, -1, i)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlice(t *testing.T) {
	var (
		ctx = context.Background()
		l   = newTestList(t, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	)

	testData := []struct {
		start, stop, step int
		expected          []int
	}{
		{0, ToEnd, 1, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{2, 5, 1, []int{2, 3, 4}},
		{0, ToEnd, 3, []int{0, 3, 6, 9}},
		{1, 8, 3, []int{1, 4, 7}},
		{-3, ToEnd, 1, []int{7, 8, 9}},
		{-3, -1, 1, []int{7, 8}},
		{-100, 2, 1, []int{0, 1}},
		{8, 100, 1, []int{8, 9}},
		{5, 2, 1, []int{}},
		{ToEnd, FromStart, -1, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{ToEnd, FromStart, -4, []int{9, 5, 1}},
		{5, 2, -1, []int{5, 4, 3}},
		{-1, -4, -1, []int{9, 8, 7}},
		{2, 5, -1, []int{}},
		{3, -100, -1, []int{3, 2, 1, 0}},
		{0, ToEnd, ToEnd, []int{0}},
		{ToEnd, FromStart, FromStart, []int{9}},
	}

	for _, record := range testData {
		t.Run(strconv.Itoa(record.start)+"_"+strconv.Itoa(record.stop)+"_"+strconv.Itoa(record.step), func(t *testing.T) {
			actual, err := l.Slice(ctx, record.start, record.stop, record.step)
			require.NoError(t, err)
			assert.Equal(t, record.expected, actual)
		})
	}

	t.Run("ZeroStep", func(t *testing.T) {
		actual, err := l.Slice(ctx, 0, ToEnd, 0)
		assert.Nil(t, actual)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Empty", func(t *testing.T) {
		actual, err := New[int](nil).Slice(ctx, ToEnd, FromStart, -1)
		require.NoError(t, err)
		assert.Empty(t, actual)
	})

	t.Run("NoSideEffects", func(t *testing.T) {
		actual, err := l.Slice(ctx, 0, 3, 1)
		require.NoError(t, err)
		actual[0] = 100

		assertItems(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
		assertSignaled(t, l, false)
	})
}

func TestSliceMatchesFilteredRead(t *testing.T) {
	var (
		ctx   = context.Background()
		l     = New([]int{10, 11, 12, 13, 14, 15, 16})
		bound = []int{FromStart, -9, -7, -3, -1, 0, 1, 3, 6, 7, 9, ToEnd}
		steps = []int{-8, -3, -2, -1, 1, 2, 3, 8}
	)

	full, err := l.Snapshot(ctx)
	require.NoError(t, err)

	for _, start := range bound {
		for _, stop := range bound {
			for _, step := range steps {
				actual, err := l.Slice(ctx, start, stop, step)
				require.NoError(t, err)
				assert.Equal(t, filterRead(full, start, stop, step), actual, "start=%d stop=%d step=%d", start, stop, step)
			}
		}
	}

	assertSignaled(t, l, false)
}

// filterRead selects elements by testing every position of a full read against the bounds
func filterRead(full []int, start, stop, step int) []int {
	n := len(full)
	resolve := func(b int) int {
		if b < 0 {
			b += n
		}

		return b
	}

	s, e := resolve(start), resolve(stop)
	result := []int{}
	if step > 0 {
		if s < 0 {
			s = 0
		}

		for i := 0; i < n; i++ {
			if i >= s && i < e && (i-s)%step == 0 {
				result = append(result, full[i])
			}
		}
	} else {
		if s >= n {
			s = n - 1
		}

		for i := n - 1; i >= 0; i-- {
			if i <= s && i > e && (s-i)%(-step) == 0 {
				result = append(result, full[i])
			}
		}
	}

	return result
}
