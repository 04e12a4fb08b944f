package model

import "time"

// CoordinationModel — unit administratif teratas yang menaungi careers.
type CoordinationModel struct {
	CoordinationID        string    `json:"coordination_id"`
	CoordinationName      string    `json:"coordination_name"`
	CoordinationCreatedAt time.Time `json:"coordination_created_at"`
}
