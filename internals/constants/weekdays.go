package constants

/* =======================
   Semana académica (6 días)
   ======================= */

// WeekDays adalah urutan tetap lunes..sábado yang dipakai turno & horario.
var WeekDays = []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// IsWeekDay memeriksa apakah sebuah hari termasuk dalam minggu 6 hari.
func IsWeekDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}
