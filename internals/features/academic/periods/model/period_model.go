package model

import "time"

/* =======================================================
   PeriodModel — sub-ventana de un turno
   ======================================================= */

type PeriodKind string

const (
	PeriodByDate PeriodKind = "date" // rango de fechas (YYYY-MM-DD)
	PeriodByTime PeriodKind = "time" // rango de horas dentro del turno (HH:MM)
)

// PeriodModel milik tepat satu shift; hanya satu varian yang terisi
// sesuai PeriodKind.
type PeriodModel struct {
	PeriodID      string     `json:"period_id"`
	PeriodShiftID string     `json:"period_shift_id"`
	PeriodName    string     `json:"period_name"`
	PeriodKind    PeriodKind `json:"period_kind"`

	PeriodDateStart string `json:"period_date_start,omitempty"`
	PeriodDateEnd   string `json:"period_date_end,omitempty"`
	PeriodTimeStart string `json:"period_time_start,omitempty"`
	PeriodTimeEnd   string `json:"period_time_end,omitempty"`

	PeriodCreatedAt time.Time `json:"period_created_at"`
}
