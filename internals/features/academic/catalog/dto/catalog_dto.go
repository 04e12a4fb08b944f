package dto

type ImportCatalogRequest struct {
	Text           string `json:"text" validate:"required"`
	CoordinationID string `json:"coordination_id" validate:"required"`
	CareerID       string `json:"career_id" validate:"required"`
	Source         string `json:"source"`
}
