package dto

import (
	"strings"

	m "academico_backend/internals/features/academic/schedule/model"
)

/* =======================================================
   Request DTOs del horario
   ======================================================= */

type ManualEntryRequest struct {
	CoordinationID string `json:"coordination_id" validate:"required"`
	CareerID       string `json:"career_id" validate:"required"`
	ShiftID        string `json:"shift_id" validate:"required"`
	Year           int    `json:"year" validate:"required,min=1,max=5"`
	Day            string `json:"day" validate:"required"`
	Block          int    `json:"block" validate:"required,min=1"`
	ClassName      string `json:"class_name" validate:"required,min=1"`
	ClassroomID    string `json:"classroom_id"`
}

func (r ManualEntryRequest) ToModel() m.ScheduleEntryModel {
	return m.ScheduleEntryModel{
		ScheduleEntryCoordinationID: r.CoordinationID,
		ScheduleEntryCareerID:       r.CareerID,
		ScheduleEntryShiftID:        r.ShiftID,
		ScheduleEntryYear:           r.Year,
		ScheduleEntryDay:            strings.ToLower(strings.TrimSpace(r.Day)),
		ScheduleEntryBlock:          r.Block,
		ScheduleEntryClassName:      strings.TrimSpace(r.ClassName),
		ScheduleEntryClassroomID:    r.ClassroomID,
		ScheduleEntrySource:         m.SourceManual,
	}
}

type GenerateRequest struct {
	CoordinationID string `json:"coordination_id" validate:"required"`
	CareerID       string `json:"career_id" validate:"required"`
	ShiftID        string `json:"shift_id" validate:"required"`
	PeriodID       string `json:"period_id"`
}

type ImportTextRequest struct {
	Text string `json:"text" validate:"required"`

	// Solo los usa la política lenient.
	CoordinationID string `json:"coordination_id"`
	CareerID       string `json:"career_id"`
	Source         string `json:"source"`
}

type ResetRequest struct {
	// Vacío: reset total. Con los tres campos: reset del contexto.
	CoordinationID string `json:"coordination_id"`
	CareerID       string `json:"career_id"`
	ShiftID        string `json:"shift_id"`
}
