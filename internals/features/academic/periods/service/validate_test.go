package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "academico_backend/internals/features/academic/periods/model"
	shiftModel "academico_backend/internals/features/academic/shifts/model"
)

func parentShift() shiftModel.ShiftModel {
	return shiftModel.ShiftModel{
		ShiftID:              "shift-1",
		ShiftBlocks:          6,
		ShiftMinutesPerBlock: 45,
		ShiftStartTime:       "08:00",
		ShiftEndTime:         "12:30",
	}
}

func TestValidatePeriodByDate(t *testing.T) {
	p, err := ValidatePeriod(parentShift(), PeriodInput{
		Name: "Primer parcial", DateStart: "2026-02-01", DateEnd: "2026-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, m.PeriodByDate, p.PeriodKind)
	assert.Equal(t, "shift-1", p.PeriodShiftID)

	_, err = ValidatePeriod(parentShift(), PeriodInput{DateStart: "2026-03-15", DateEnd: "2026-02-01"})
	assert.ErrorContains(t, err, "precede")

	_, err = ValidatePeriod(parentShift(), PeriodInput{DateStart: "2026-02-01", DateEnd: "2026-02-01"})
	assert.ErrorContains(t, err, "precede")
}

func TestValidatePeriodByTime(t *testing.T) {
	p, err := ValidatePeriod(parentShift(), PeriodInput{
		Name: "Bloques tempranos", TimeStart: "08:00", TimeEnd: "10:15",
	})
	require.NoError(t, err)
	assert.Equal(t, m.PeriodByTime, p.PeriodKind)

	// fuera del span del turno
	_, err = ValidatePeriod(parentShift(), PeriodInput{TimeStart: "07:00", TimeEnd: "10:15"})
	assert.ErrorContains(t, err, "within the shift span")

	_, err = ValidatePeriod(parentShift(), PeriodInput{TimeStart: "10:15", TimeEnd: "13:00"})
	assert.ErrorContains(t, err, "within the shift span")
}

func TestValidatePeriodExactlyOneVariant(t *testing.T) {
	_, err := ValidatePeriod(parentShift(), PeriodInput{})
	assert.ErrorContains(t, err, "exactly one")

	_, err = ValidatePeriod(parentShift(), PeriodInput{
		DateStart: "2026-02-01", DateEnd: "2026-03-01",
		TimeStart: "08:00", TimeEnd: "09:30",
	})
	assert.ErrorContains(t, err, "exactly one")
}
