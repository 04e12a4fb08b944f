package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "academico_backend/internals/features/academic/coordinations/model"
)

type CreateCoordinationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

func (r CreateCoordinationRequest) ToModel() m.CoordinationModel {
	return m.CoordinationModel{
		CoordinationID:        uuid.NewString(),
		CoordinationName:      strings.TrimSpace(r.Name),
		CoordinationCreatedAt: time.Now(),
	}
}
