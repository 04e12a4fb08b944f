package model

import "time"

// CareerModel — program studi milik tepat satu coordination.
type CareerModel struct {
	CareerID             string    `json:"career_id"`
	CareerName           string    `json:"career_name"`
	CareerCoordinationID string    `json:"career_coordination_id"`
	CareerCreatedAt      time.Time `json:"career_created_at"`
}
