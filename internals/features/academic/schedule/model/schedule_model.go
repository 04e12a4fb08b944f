package model

import "time"

/* =======================================================
   Origen de una entrada
   ======================================================= */

const (
	SourceManual = "manual"
	SourceAuto   = "auto"
)

/* =======================================================
   SlotKey — kunci de unicidad del horario
   ======================================================= */

// SlotKey adalah 6-tuple yang WAJIB unik di seluruh entri jadwal.
type SlotKey struct {
	CoordinationID string
	CareerID       string
	ShiftID        string
	Year           int
	Day            string
	Block          int
}

/* =======================================================
   ScheduleEntryModel — una clase colocada en un slot
   ======================================================= */

type ScheduleEntryModel struct {
	ScheduleEntryID             string    `json:"schedule_entry_id"`
	ScheduleEntryCoordinationID string    `json:"schedule_entry_coordination_id"`
	ScheduleEntryCareerID       string    `json:"schedule_entry_career_id"`
	ScheduleEntryShiftID        string    `json:"schedule_entry_shift_id"`
	ScheduleEntryYear           int       `json:"schedule_entry_year"` // 1..5
	ScheduleEntryDay            string    `json:"schedule_entry_day"`
	ScheduleEntryBlock          int       `json:"schedule_entry_block"` // 1-based
	ScheduleEntryClassName      string    `json:"schedule_entry_class_name"`
	ScheduleEntryClassroomID    string    `json:"schedule_entry_classroom_id,omitempty"`
	ScheduleEntrySource         string    `json:"schedule_entry_source"` // manual | auto
	ScheduleEntryCreatedAt      time.Time `json:"schedule_entry_created_at"`
}

// Key mengembalikan kunci slot milik entri.
func (e ScheduleEntryModel) Key() SlotKey {
	return SlotKey{
		CoordinationID: e.ScheduleEntryCoordinationID,
		CareerID:       e.ScheduleEntryCareerID,
		ShiftID:        e.ScheduleEntryShiftID,
		Year:           e.ScheduleEntryYear,
		Day:            e.ScheduleEntryDay,
		Block:          e.ScheduleEntryBlock,
	}
}

/* =======================================================
   ClassRecordModel — variante plana (importer estricto)
   ======================================================= */

// ClassRecordModel adalah tuple datar (carrera, materia, codigo, dia,
// inicio, fin, aula) yang dipakai kebijakan import strict.
type ClassRecordModel struct {
	ClassRecordID        string    `json:"class_record_id"`
	ClassRecordCareer    string    `json:"class_record_career"`
	ClassRecordSubject   string    `json:"class_record_subject"`
	ClassRecordCode      string    `json:"class_record_code"`
	ClassRecordDay       string    `json:"class_record_day"`
	ClassRecordStart     string    `json:"class_record_start"` // HH:MM
	ClassRecordEnd       string    `json:"class_record_end"`   // HH:MM
	ClassRecordRoom      string    `json:"class_record_room"`
	ClassRecordCreatedAt time.Time `json:"class_record_created_at"`
}
