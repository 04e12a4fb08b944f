package service

import (
	"fmt"
	"strconv"
	"strings"

	m "academico_backend/internals/features/academic/shifts/model"
)

/* =======================================================
   Time grid — aritmética entera, sin redondeo
   ======================================================= */

// ParseClock mengubah "HH:MM" menjadi menit sejak tengah malam.
// String kosong atau format salah mengembalikan ok=false.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, false
	}
	return h*60 + min, true
}

// FormatClock — kebalikan ParseClock ("HH:MM", zero-padded).
func FormatClock(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// BlockWindow menghitung jendela [start, end) blok ke-block (1-based)
// dalam menit sejak tengah malam.
func BlockWindow(shift m.ShiftModel, block int) (int, int, error) {
	if block < 1 || block > shift.ShiftBlocks {
		return 0, 0, fmt.Errorf("block %d out of range [1, %d]", block, shift.ShiftBlocks)
	}
	start, ok := ParseClock(shift.ShiftStartTime)
	if !ok {
		return 0, 0, fmt.Errorf("shift start time %q is not a clock time", shift.ShiftStartTime)
	}
	blockStart := start + (block-1)*shift.ShiftMinutesPerBlock
	return blockStart, blockStart + shift.ShiftMinutesPerBlock, nil
}

// isAligned: mark jatuh persis di batas blok dihitung dari shiftStart.
func isAligned(mark, shiftStart, blockMinutes int) bool {
	return (mark-shiftStart)%blockMinutes == 0
}
