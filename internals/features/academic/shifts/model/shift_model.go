package model

import "time"

/* =======================================================
   ShiftModel — template jadwal harian (turno)
   ======================================================= */

// ShiftModel menyimpan geometri turno: hari aktif (urutan deklarasi),
// jumlah blok, menit per blok, kredit per blok dan jam mulai.
// ShiftEndTime diturunkan saat validasi (start + blocks×minutes).
//
// ShiftPriorities dicatat per hari tetapi TIDAK dipakai allocator untuk
// mengurutkan hari; dicadangkan untuk pass ranking di masa depan.
type ShiftModel struct {
	ShiftID              string         `json:"shift_id"`
	ShiftName            string         `json:"shift_name"`
	ShiftDays            []string       `json:"shift_days"`
	ShiftPriorities      map[string]int `json:"shift_priorities"`
	ShiftBlocks          int            `json:"shift_blocks"`
	ShiftMinutesPerBlock int            `json:"shift_minutes_per_block"`
	ShiftCreditsPerBlock int            `json:"shift_credits_per_block"`
	ShiftStartTime       string         `json:"shift_start_time"`
	ShiftEndTime         string         `json:"shift_end_time"`

	// Ventana opsional; keempatnya "HH:MM" atau kosong.
	ShiftRecessStart string `json:"shift_recess_start,omitempty"`
	ShiftRecessEnd   string `json:"shift_recess_end,omitempty"`
	ShiftLunchStart  string `json:"shift_lunch_start,omitempty"`
	ShiftLunchEnd    string `json:"shift_lunch_end,omitempty"`

	ShiftCreatedAt time.Time `json:"shift_created_at"`
}
