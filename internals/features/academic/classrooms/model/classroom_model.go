package model

import "time"

// ClassroomModel — aula fisik. Type selalu salah satu label kanonik
// (Laboratorios / Talleres / Aula normal). Seq menjaga urutan pendaftaran
// karena koleksi snapshot berbentuk map.
type ClassroomModel struct {
	ClassroomID        string    `json:"classroom_id"`
	ClassroomName      string    `json:"classroom_name"`
	ClassroomType      string    `json:"classroom_type"`
	ClassroomSeq       int       `json:"classroom_seq"`
	ClassroomCreatedAt time.Time `json:"classroom_created_at"`
}
