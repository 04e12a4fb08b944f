package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "academico_backend/internals/features/academic/shifts/model"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"08:00", 480, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{" 12:30 ", 750, true},
		{"", 0, false},
		{"   ", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"1230", 0, false},
		{"ab:cd", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseClock(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00", FormatClock(480))
	assert.Equal(t, "12:30", FormatClock(750))
	assert.Equal(t, "00:05", FormatClock(5))
}

func TestBlockWindowCoversShiftContiguously(t *testing.T) {
	shift := m.ShiftModel{
		ShiftStartTime:       "08:00",
		ShiftBlocks:          6,
		ShiftMinutesPerBlock: 45,
	}

	prevEnd := 480 // 08:00
	for b := 1; b <= shift.ShiftBlocks; b++ {
		start, end, err := BlockWindow(shift, b)
		require.NoError(t, err)
		assert.Equal(t, prevEnd, start, "block %d must start where the previous ended", b)
		assert.Equal(t, start+45, end)
		prevEnd = end
	}
	// cobertura total: [08:00, 12:30)
	assert.Equal(t, 750, prevEnd)
}

func TestBlockWindowOutOfRange(t *testing.T) {
	shift := m.ShiftModel{ShiftStartTime: "08:00", ShiftBlocks: 4, ShiftMinutesPerBlock: 45}

	_, _, err := BlockWindow(shift, 0)
	assert.Error(t, err)
	_, _, err = BlockWindow(shift, 5)
	assert.Error(t, err)
}
