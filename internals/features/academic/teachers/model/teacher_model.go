package model

import "time"

type TeacherModel struct {
	TeacherID        string    `json:"teacher_id"`
	TeacherName      string    `json:"teacher_name"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
}
