package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// turno base: 08:00, 6 bloques de 45 (fin 12:30)
func baseShiftInput() ShiftInput {
	return ShiftInput{
		Name:            "Matutino",
		Days:            []string{"lunes", "martes"},
		Priorities:      map[string]int{"lunes": 2, "martes": 1},
		Blocks:          6,
		MinutesPerBlock: 45,
		CreditsPerBlock: 2,
		StartTime:       "08:00",
	}
}

func TestValidateShiftDerivesEndTime(t *testing.T) {
	shift, err := ValidateShift(baseShiftInput())
	require.NoError(t, err)

	assert.Equal(t, "12:30", shift.ShiftEndTime)
	assert.NotEmpty(t, shift.ShiftID)
	assert.Equal(t, []string{"lunes", "martes"}, shift.ShiftDays)
}

func TestValidateShiftGeometry(t *testing.T) {
	in := baseShiftInput()
	in.Blocks = 0
	_, err := ValidateShift(in)
	assert.ErrorContains(t, err, "blocks")

	in = baseShiftInput()
	in.MinutesPerBlock = 10
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "minutes per block")

	in = baseShiftInput()
	in.Days = nil
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "at least one day")

	in = baseShiftInput()
	in.Days = []string{"domingo"}
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "not a week day")

	in = baseShiftInput()
	in.Priorities = map[string]int{"lunes": 0, "martes": 0}
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "priority")
}

func TestValidateShiftBreakWindows(t *testing.T) {
	// alineado: 10:15 (offset 135 = 3×45) y 11:00 (offset 180 = 4×45)
	in := baseShiftInput()
	in.RecessStart, in.RecessEnd = "10:15", "11:00"
	_, err := ValidateShift(in)
	assert.NoError(t, err)

	// 10:30 (offset 150) no cae en límite de bloque
	in = baseShiftInput()
	in.RecessStart, in.RecessEnd = "10:15", "10:30"
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "must align to block boundaries")

	// 10:10 (offset 70) tampoco
	in = baseShiftInput()
	in.RecessStart, in.RecessEnd = "10:10", "10:25"
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "must align to block boundaries")

	// un solo extremo
	in = baseShiftInput()
	in.LunchStart = "10:15"
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "Almuerzo: both endpoints required")

	// fin antes del inicio
	in = baseShiftInput()
	in.RecessStart, in.RecessEnd = "11:00", "10:15"
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "end must exceed start")

	// fuera del rango del turno
	in = baseShiftInput()
	in.RecessStart, in.RecessEnd = "07:15", "08:00"
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "must lie within shift range")

	in = baseShiftInput()
	in.LunchStart, in.LunchEnd = "12:30", "13:15"
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "must lie within shift range")
}

func TestValidateShiftBreakOverlap(t *testing.T) {
	// receso 08:45-09:30 y almuerzo 09:30-10:15 se tocan pero no se pisan
	in := baseShiftInput()
	in.RecessStart, in.RecessEnd = "08:45", "09:30"
	in.LunchStart, in.LunchEnd = "09:30", "10:15"
	_, err := ValidateShift(in)
	assert.NoError(t, err)

	// mismo rango: choque
	in = baseShiftInput()
	in.RecessStart, in.RecessEnd = "08:45", "10:15"
	in.LunchStart, in.LunchEnd = "09:30", "10:15"
	_, err = ValidateShift(in)
	assert.ErrorContains(t, err, "recess and lunch may not overlap")
}
