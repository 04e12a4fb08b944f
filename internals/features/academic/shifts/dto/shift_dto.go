package dto

import (
	"strings"

	service "academico_backend/internals/features/academic/shifts/service"
)

/* =======================================================
   Request DTO — validación sintáctica; la geometría la
   revisa ValidateShift
   ======================================================= */

type CreateShiftRequest struct {
	Name            string         `json:"name" validate:"required,min=1,max=120"`
	Days            []string       `json:"days" validate:"required,min=1"`
	Priorities      map[string]int `json:"priorities"`
	Blocks          int            `json:"blocks" validate:"required,min=1"`
	MinutesPerBlock int            `json:"minutes_per_block" validate:"required,min=1"`
	CreditsPerBlock int            `json:"credits_per_block" validate:"required,min=1"`
	StartTime       string         `json:"start_time" validate:"required"`
	RecessStart     string         `json:"recess_start"`
	RecessEnd       string         `json:"recess_end"`
	LunchStart      string         `json:"lunch_start"`
	LunchEnd        string         `json:"lunch_end"`
}

func (r CreateShiftRequest) ToInput() service.ShiftInput {
	days := make([]string, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, strings.ToLower(strings.TrimSpace(d)))
	}
	return service.ShiftInput{
		Name:            strings.TrimSpace(r.Name),
		Days:            days,
		Priorities:      r.Priorities,
		Blocks:          r.Blocks,
		MinutesPerBlock: r.MinutesPerBlock,
		CreditsPerBlock: r.CreditsPerBlock,
		StartTime:       strings.TrimSpace(r.StartTime),
		RecessStart:     strings.TrimSpace(r.RecessStart),
		RecessEnd:       strings.TrimSpace(r.RecessEnd),
		LunchStart:      strings.TrimSpace(r.LunchStart),
		LunchEnd:        strings.TrimSpace(r.LunchEnd),
	}
}
