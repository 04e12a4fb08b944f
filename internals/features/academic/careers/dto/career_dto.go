package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "academico_backend/internals/features/academic/careers/model"
)

type CreateCareerRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=120"`
	CoordinationID string `json:"coordination_id" validate:"required"`
}

func (r CreateCareerRequest) ToModel() m.CareerModel {
	return m.CareerModel{
		CareerID:             uuid.NewString(),
		CareerName:           strings.TrimSpace(r.Name),
		CareerCoordinationID: r.CoordinationID,
		CareerCreatedAt:      time.Now(),
	}
}
