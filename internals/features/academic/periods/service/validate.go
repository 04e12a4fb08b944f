package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	m "academico_backend/internals/features/academic/periods/model"
	shiftModel "academico_backend/internals/features/academic/shifts/model"
	shiftService "academico_backend/internals/features/academic/shifts/service"
)

const layoutDate = "2006-01-02"

type PeriodInput struct {
	Name      string
	DateStart string
	DateEnd   string
	TimeStart string
	TimeEnd   string
}

// ValidatePeriod membangun period milik shift. Tepat satu varian harus
// terisi: rango de fechas (start < end) atau rango de horas di dalam span
// total del turno.
func ValidatePeriod(shift shiftModel.ShiftModel, in PeriodInput) (m.PeriodModel, error) {
	var zero m.PeriodModel

	byDate := in.DateStart != "" || in.DateEnd != ""
	byTime := in.TimeStart != "" || in.TimeEnd != ""
	if byDate == byTime {
		return zero, errors.New("exactly one of date range or time range required")
	}

	period := m.PeriodModel{
		PeriodID:        uuid.NewString(),
		PeriodShiftID:   shift.ShiftID,
		PeriodName:      in.Name,
		PeriodCreatedAt: time.Now(),
	}

	if byDate {
		start, err := time.Parse(layoutDate, in.DateStart)
		if err != nil {
			return zero, errors.New("date start invalid (YYYY-MM-DD)")
		}
		end, err := time.Parse(layoutDate, in.DateEnd)
		if err != nil {
			return zero, errors.New("date end invalid (YYYY-MM-DD)")
		}
		if !start.Before(end) {
			return zero, errors.New("date start must precede date end")
		}
		period.PeriodKind = m.PeriodByDate
		period.PeriodDateStart = in.DateStart
		period.PeriodDateEnd = in.DateEnd
		return period, nil
	}

	start, okStart := shiftService.ParseClock(in.TimeStart)
	end, okEnd := shiftService.ParseClock(in.TimeEnd)
	if !okStart || !okEnd {
		return zero, errors.New("time range invalid (HH:MM)")
	}
	if start >= end {
		return zero, errors.New("time start must precede time end")
	}
	shiftStart, _ := shiftService.ParseClock(shift.ShiftStartTime)
	shiftEnd, _ := shiftService.ParseClock(shift.ShiftEndTime)
	if start < shiftStart || end > shiftEnd {
		return zero, errors.New("time range must lie within the shift span")
	}
	period.PeriodKind = m.PeriodByTime
	period.PeriodTimeStart = in.TimeStart
	period.PeriodTimeEnd = in.TimeEnd
	return period, nil
}
