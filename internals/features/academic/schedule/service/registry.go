package service

import (
	"time"

	"github.com/google/uuid"

	m "academico_backend/internals/features/academic/schedule/model"
	"academico_backend/internals/state"
)

/* =======================================================
   Slot registry — invariante: un slot, una clase
   ======================================================= */

// FindOccupant mencari entri yang menempati kunci slot.
func FindOccupant(snap *state.Snapshot, key m.SlotKey) (m.ScheduleEntryModel, bool) {
	for _, e := range snap.ScheduleEntries {
		if e.Key() == key {
			return e, true
		}
	}
	return m.ScheduleEntryModel{}, false
}

func IsOccupied(snap *state.Snapshot, key m.SlotKey) bool {
	_, ok := FindOccupant(snap, key)
	return ok
}

// Upsert menyisipkan entry; penghuni lama di slot yang sama dicabut dulu
// (last-write-wins, tanpa penolakan). Caller yang menampilkan previous
// sebagai warning. Payload identik di slot yang sama = no-op (tidak
// dilaporkan sebagai replacement kedua). Entry tersimpan — dengan ID dan
// CreatedAt final — dikembalikan untuk di-echo.
func Upsert(snap *state.Snapshot, entry m.ScheduleEntryModel) (m.ScheduleEntryModel, bool, *m.ScheduleEntryModel) {
	if entry.ScheduleEntryID == "" {
		entry.ScheduleEntryID = uuid.NewString()
	}
	if entry.ScheduleEntryCreatedAt.IsZero() {
		entry.ScheduleEntryCreatedAt = time.Now()
	}

	prev, found := FindOccupant(snap, entry.Key())
	if found {
		if samePayload(prev, entry) {
			return prev, false, nil
		}
		delete(snap.ScheduleEntries, prev.ScheduleEntryID)
	}
	snap.ScheduleEntries[entry.ScheduleEntryID] = entry
	if found {
		return entry, true, &prev
	}
	return entry, false, nil
}

func samePayload(a, b m.ScheduleEntryModel) bool {
	return a.ScheduleEntryClassName == b.ScheduleEntryClassName &&
		a.ScheduleEntryClassroomID == b.ScheduleEntryClassroomID &&
		a.ScheduleEntrySource == b.ScheduleEntrySource
}

// Reset membuang seluruh entri jadwal.
func Reset(snap *state.Snapshot) int {
	n := len(snap.ScheduleEntries)
	snap.ScheduleEntries = map[string]m.ScheduleEntryModel{}
	return n
}

// ResetContext membuang entri milik satu konteks (coordination, career,
// shift) saja.
func ResetContext(snap *state.Snapshot, coordinationID, careerID, shiftID string) int {
	n := 0
	for id, e := range snap.ScheduleEntries {
		if e.ScheduleEntryCoordinationID == coordinationID &&
			e.ScheduleEntryCareerID == careerID &&
			e.ScheduleEntryShiftID == shiftID {
			delete(snap.ScheduleEntries, id)
			n++
		}
	}
	return n
}
