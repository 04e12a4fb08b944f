package dto

import (
	"strings"

	service "academico_backend/internals/features/academic/periods/service"
)

type CreatePeriodRequest struct {
	ShiftID   string `json:"shift_id" validate:"required"`
	Name      string `json:"name" validate:"max=120"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

func (r CreatePeriodRequest) ToInput() service.PeriodInput {
	return service.PeriodInput{
		Name:      strings.TrimSpace(r.Name),
		DateStart: strings.TrimSpace(r.DateStart),
		DateEnd:   strings.TrimSpace(r.DateEnd),
		TimeStart: strings.TrimSpace(r.TimeStart),
		TimeEnd:   strings.TrimSpace(r.TimeEnd),
	}
}
