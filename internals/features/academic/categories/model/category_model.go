package model

import "time"

type CategoryModel struct {
	CategoryID        string    `json:"category_id"`
	CategoryName      string    `json:"category_name"`
	CategoryCreatedAt time.Time `json:"category_created_at"`
}
