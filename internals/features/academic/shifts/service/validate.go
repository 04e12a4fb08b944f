package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"academico_backend/internals/constants"
	m "academico_backend/internals/features/academic/shifts/model"
)

/* =======================================================
   ShiftInput — payload semántico (ya pasó el validator DTO)
   ======================================================= */

type ShiftInput struct {
	Name            string
	Days            []string
	Priorities      map[string]int
	Blocks          int
	MinutesPerBlock int
	CreditsPerBlock int
	StartTime       string
	RecessStart     string
	RecessEnd       string
	LunchStart      string
	LunchEnd        string
}

type breakWindow struct {
	start, end int
	present    bool
}

// validateBreak memvalidasi satu ventana (receso/almuerzo) terhadap
// geometri turno. label dipakai untuk scope pesan error.
func validateBreak(label, startClock, endClock string, shiftStart, shiftEnd, blockMinutes int) (breakWindow, error) {
	if startClock == "" && endClock == "" {
		return breakWindow{}, nil
	}

	start, okStart := ParseClock(startClock)
	end, okEnd := ParseClock(endClock)
	if !okStart || !okEnd {
		return breakWindow{}, fmt.Errorf("%s: both endpoints required", label)
	}
	if start >= end {
		return breakWindow{}, fmt.Errorf("%s: end must exceed start", label)
	}
	if start < shiftStart || end > shiftEnd {
		return breakWindow{}, fmt.Errorf("%s: must lie within shift range", label)
	}
	if !isAligned(start, shiftStart, blockMinutes) || !isAligned(end, shiftStart, blockMinutes) {
		return breakWindow{}, fmt.Errorf("%s: must align to block boundaries", label)
	}
	return breakWindow{start: start, end: end, present: true}, nil
}

// ValidateShift memeriksa seluruh geometri turno dan mengembalikan model
// siap-simpan dengan EndTime turunan. Prioritas per hari divalidasi
// (minimal satu > 0) tapi TIDAK dipakai allocator untuk urutan hari.
func ValidateShift(in ShiftInput) (m.ShiftModel, error) {
	var zero m.ShiftModel

	if in.Name == "" {
		return zero, errors.New("shift name required")
	}
	if len(in.Days) == 0 {
		return zero, errors.New("at least one day required")
	}
	for _, d := range in.Days {
		if !constants.IsWeekDay(d) {
			return zero, fmt.Errorf("day %q is not a week day", d)
		}
	}
	hasPriority := false
	for _, d := range in.Days {
		if in.Priorities[d] > 0 {
			hasPriority = true
			break
		}
	}
	if !hasPriority {
		return zero, errors.New("at least one selected day needs priority above zero")
	}
	if in.Blocks < 1 {
		return zero, errors.New("blocks must be at least 1")
	}
	if in.MinutesPerBlock < 15 {
		return zero, errors.New("minutes per block must be at least 15")
	}
	if in.CreditsPerBlock < 1 {
		return zero, errors.New("credits per block must be at least 1")
	}

	shiftStart, ok := ParseClock(in.StartTime)
	if !ok {
		return zero, errors.New("start time required")
	}
	shiftEnd := shiftStart + in.Blocks*in.MinutesPerBlock

	recess, err := validateBreak("Receso", in.RecessStart, in.RecessEnd, shiftStart, shiftEnd, in.MinutesPerBlock)
	if err != nil {
		return zero, err
	}
	lunch, err := validateBreak("Almuerzo", in.LunchStart, in.LunchEnd, shiftStart, shiftEnd, in.MinutesPerBlock)
	if err != nil {
		return zero, err
	}
	if recess.present && lunch.present {
		if recess.start < lunch.end && lunch.start < recess.end {
			return zero, errors.New("recess and lunch may not overlap")
		}
	}

	priorities := make(map[string]int, len(in.Days))
	for _, d := range in.Days {
		priorities[d] = in.Priorities[d]
	}

	return m.ShiftModel{
		ShiftID:              uuid.NewString(),
		ShiftName:            in.Name,
		ShiftDays:            append([]string(nil), in.Days...),
		ShiftPriorities:      priorities,
		ShiftBlocks:          in.Blocks,
		ShiftMinutesPerBlock: in.MinutesPerBlock,
		ShiftCreditsPerBlock: in.CreditsPerBlock,
		ShiftStartTime:       FormatClock(shiftStart),
		ShiftEndTime:         FormatClock(shiftEnd),
		ShiftRecessStart:     in.RecessStart,
		ShiftRecessEnd:       in.RecessEnd,
		ShiftLunchStart:      in.LunchStart,
		ShiftLunchEnd:        in.LunchEnd,
		ShiftCreatedAt:       time.Now(),
	}, nil
}
