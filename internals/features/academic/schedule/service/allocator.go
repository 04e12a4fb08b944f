package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	periodModel "academico_backend/internals/features/academic/periods/model"
	m "academico_backend/internals/features/academic/schedule/model"
	shiftModel "academico_backend/internals/features/academic/shifts/model"
	shiftService "academico_backend/internals/features/academic/shifts/service"
	"academico_backend/internals/state"
)

/* =======================================================
   Auto-allocator — first fit codicioso, una pasada
   =======================================================
   Los días se recorren en el orden declarado del turno, NO por
   prioridad (las prioridades quedan reservadas para un pase futuro).
   La demanda sin colocar no es error: solo se reporta cuánto entró.
*/

// AutoGenerate coloca el catálogo de (coordination, career) en los slots
// libres del shift, opcionalmente acotado por un period. Devuelve el total
// de entradas insertadas.
func AutoGenerate(snap *state.Snapshot, coordinationID, careerID, shiftID, periodID string) (int, error) {
	shift, ok := snap.Shifts[shiftID]
	if !ok {
		return 0, errors.New("invalid shift")
	}

	var period *periodModel.PeriodModel
	if periodID != "" {
		p, ok := snap.Periods[periodID]
		if !ok || p.PeriodShiftID != shiftID {
			return 0, errors.New("period does not match shift")
		}
		period = &p
	}

	items := snap.CatalogItemsOrdered(coordinationID, careerID)
	if len(items) == 0 {
		return 0, errors.New("no catalog data")
	}

	blocks := blockRange(shift, period)
	rooms := snap.ClassroomsOrdered()

	total := 0
	for _, item := range items {
		needed := (item.CatalogItemCredits + shift.ShiftCreditsPerBlock - 1) / shift.ShiftCreditsPerBlock
		if needed < 1 {
			needed = 1
		}
		pending := needed

		for _, day := range shift.ShiftDays {
			for _, block := range blocks {
				if pending == 0 {
					break
				}
				key := m.SlotKey{
					CoordinationID: coordinationID,
					CareerID:       careerID,
					ShiftID:        shiftID,
					Year:           item.CatalogItemYear,
					Day:            day,
					Block:          block,
				}
				if IsOccupied(snap, key) {
					continue
				}

				roomID := ""
				for _, r := range rooms {
					if r.ClassroomType == item.CatalogItemClassroomType {
						roomID = r.ClassroomID
						break
					}
				}
				if roomID == "" && len(rooms) > 0 {
					roomID = rooms[0].ClassroomID
				}

				entry := m.ScheduleEntryModel{
					ScheduleEntryID:             uuid.NewString(),
					ScheduleEntryCoordinationID: coordinationID,
					ScheduleEntryCareerID:       careerID,
					ScheduleEntryShiftID:        shiftID,
					ScheduleEntryYear:           item.CatalogItemYear,
					ScheduleEntryDay:            day,
					ScheduleEntryBlock:          block,
					ScheduleEntryClassName:      item.CatalogItemName,
					ScheduleEntryClassroomID:    roomID,
					ScheduleEntrySource:         m.SourceAuto,
					ScheduleEntryCreatedAt:      time.Now(),
				}
				snap.ScheduleEntries[entry.ScheduleEntryID] = entry
				pending--
				total++
			}
			if pending == 0 {
				break
			}
		}
		// pending > 0 aquí: demanda sin cubrir, se deja en silencio
	}

	return total, nil
}

// blockRange: rango completo [1, blocks]; un period por horas lo acota a
// los bloques cuya ventana cae dentro del rango. Un period por fechas no
// acota bloques.
func blockRange(shift shiftModel.ShiftModel, period *periodModel.PeriodModel) []int {
	all := make([]int, 0, shift.ShiftBlocks)
	for b := 1; b <= shift.ShiftBlocks; b++ {
		all = append(all, b)
	}
	if period == nil || period.PeriodKind != periodModel.PeriodByTime {
		return all
	}

	pStart, okStart := shiftService.ParseClock(period.PeriodTimeStart)
	pEnd, okEnd := shiftService.ParseClock(period.PeriodTimeEnd)
	if !okStart || !okEnd {
		return all
	}

	var bounded []int
	for _, b := range all {
		wStart, wEnd, err := shiftService.BlockWindow(shift, b)
		if err != nil {
			continue
		}
		if wStart >= pStart && wEnd <= pEnd {
			bounded = append(bounded, b)
		}
	}
	return bounded
}
