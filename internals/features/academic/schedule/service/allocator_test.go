package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academico_backend/internals/constants"
	catalogModel "academico_backend/internals/features/academic/catalog/model"
	classroomModel "academico_backend/internals/features/academic/classrooms/model"
	periodModel "academico_backend/internals/features/academic/periods/model"
	m "academico_backend/internals/features/academic/schedule/model"
	shiftModel "academico_backend/internals/features/academic/shifts/model"
	"academico_backend/internals/state"
)

// turno de prueba: [lunes, martes], 2 bloques de 45, 2 créditos por bloque
func allocSnapshot() *state.Snapshot {
	snap := state.DefaultSnapshot()
	snap.Shifts["shift-1"] = shiftModel.ShiftModel{
		ShiftID:              "shift-1",
		ShiftName:            "Matutino",
		ShiftDays:            []string{"lunes", "martes"},
		ShiftPriorities:      map[string]int{"lunes": 1, "martes": 5},
		ShiftBlocks:          2,
		ShiftMinutesPerBlock: 45,
		ShiftCreditsPerBlock: 2,
		ShiftStartTime:       "08:00",
		ShiftEndTime:         "09:30",
	}
	return snap
}

func addCatalogItem(snap *state.Snapshot, name string, year, credits int, roomType string) {
	snap.CatalogSeq++
	id := name
	snap.CatalogItems[id] = catalogModel.CatalogItemModel{
		CatalogItemID:             id,
		CatalogItemCoordinationID: "coord-1",
		CatalogItemCareerID:       "career-1",
		CatalogItemName:           name,
		CatalogItemYear:           year,
		CatalogItemCredits:        credits,
		CatalogItemClassroomType:  roomType,
		CatalogItemSeq:            snap.CatalogSeq,
	}
}

func TestAutoGeneratePreconditions(t *testing.T) {
	snap := allocSnapshot()

	_, err := AutoGenerate(snap, "coord-1", "career-1", "no-such-shift", "")
	assert.EqualError(t, err, "invalid shift")

	_, err = AutoGenerate(snap, "coord-1", "career-1", "shift-1", "")
	assert.EqualError(t, err, "no catalog data")

	// period de otro shift
	snap.Periods["p-ajeno"] = periodModel.PeriodModel{
		PeriodID: "p-ajeno", PeriodShiftID: "shift-2", PeriodKind: periodModel.PeriodByTime,
		PeriodTimeStart: "08:00", PeriodTimeEnd: "08:45",
	}
	addCatalogItem(snap, "Programación I", 1, 4, constants.ClassroomDefault)
	_, err = AutoGenerate(snap, "coord-1", "career-1", "shift-1", "p-ajeno")
	assert.EqualError(t, err, "period does not match shift")

	_, err = AutoGenerate(snap, "coord-1", "career-1", "shift-1", "no-such-period")
	assert.EqualError(t, err, "period does not match shift")
}

// escenario concreto: credits=4, creditsPerBlock=2 ⇒ 2 bloques, ambos en
// lunes antes de tocar martes
func TestAutoGenerateFillsDayBeforeAdvancing(t *testing.T) {
	snap := allocSnapshot()
	addCatalogItem(snap, "Programación I", 1, 4, constants.ClassroomDefault)

	n, err := AutoGenerate(snap, "coord-1", "career-1", "shift-1", "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.True(t, IsOccupied(snap, m.SlotKey{
		CoordinationID: "coord-1", CareerID: "career-1", ShiftID: "shift-1",
		Year: 1, Day: "lunes", Block: 1,
	}))
	assert.True(t, IsOccupied(snap, m.SlotKey{
		CoordinationID: "coord-1", CareerID: "career-1", ShiftID: "shift-1",
		Year: 1, Day: "lunes", Block: 2,
	}))
	assert.False(t, IsOccupied(snap, m.SlotKey{
		CoordinationID: "coord-1", CareerID: "career-1", ShiftID: "shift-1",
		Year: 1, Day: "martes", Block: 1,
	}), "martes no debe usarse mientras lunes tenga espacio")

	for _, e := range snap.ScheduleEntries {
		assert.Equal(t, m.SourceAuto, e.ScheduleEntrySource)
	}
}

func TestAutoGenerateNeverDoubleBooksAndIsIdempotentWhenFull(t *testing.T) {
	snap := allocSnapshot()
	// demanda = capacidad total (2 días × 2 bloques)
	addCatalogItem(snap, "Programación I", 1, 8, constants.ClassroomDefault)

	n, err := AutoGenerate(snap, "coord-1", "career-1", "shift-1", "")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// segunda pasada: todos los slots compatibles ocupados ⇒ 0
	n, err = AutoGenerate(snap, "coord-1", "career-1", "shift-1", "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	seen := map[m.SlotKey]int{}
	for _, e := range snap.ScheduleEntries {
		seen[e.Key()]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "slot %+v duplicado", key)
	}
}

// la demanda que no cabe no es error: solo se reporta lo colocado
func TestAutoGenerateUnmetDemandIsSilent(t *testing.T) {
	snap := allocSnapshot()
	addCatalogItem(snap, "Programación I", 1, 20, constants.ClassroomDefault)

	n, err := AutoGenerate(snap, "coord-1", "career-1", "shift-1", "")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "solo caben 4 bloques")
}

func TestAutoGenerateTimeBoundedPeriodRestrictsBlocks(t *testing.T) {
	snap := allocSnapshot()
	addCatalogItem(snap, "Programación I", 1, 4, constants.ClassroomDefault)
	snap.Periods["p-1"] = periodModel.PeriodModel{
		PeriodID: "p-1", PeriodShiftID: "shift-1", PeriodKind: periodModel.PeriodByTime,
		PeriodTimeStart: "08:00", PeriodTimeEnd: "08:45", // solo el bloque 1
	}

	n, err := AutoGenerate(snap, "coord-1", "career-1", "shift-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, e := range snap.ScheduleEntries {
		assert.Equal(t, 1, e.ScheduleEntryBlock, "solo el bloque 1 está dentro del period")
	}
}

func TestAutoGenerateDateBoundedPeriodDoesNotRestrictBlocks(t *testing.T) {
	snap := allocSnapshot()
	addCatalogItem(snap, "Programación I", 1, 4, constants.ClassroomDefault)
	snap.Periods["p-2"] = periodModel.PeriodModel{
		PeriodID: "p-2", PeriodShiftID: "shift-1", PeriodKind: periodModel.PeriodByDate,
		PeriodDateStart: "2026-02-01", PeriodDateEnd: "2026-03-01",
	}

	n, err := AutoGenerate(snap, "coord-1", "career-1", "shift-1", "p-2")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAutoGenerateClassroomFallback(t *testing.T) {
	snap := allocSnapshot()
	snap.ClassroomSeq = 2
	snap.Classrooms["aula-1"] = classroomModel.ClassroomModel{
		ClassroomID: "aula-1", ClassroomName: "A-101", ClassroomType: constants.ClassroomDefault, ClassroomSeq: 1,
	}
	snap.Classrooms["lab-1"] = classroomModel.ClassroomModel{
		ClassroomID: "lab-1", ClassroomName: "Lab de cómputo", ClassroomType: constants.ClassroomLab, ClassroomSeq: 2,
	}

	addCatalogItem(snap, "Programación I", 1, 2, constants.ClassroomLab)
	addCatalogItem(snap, "Dibujo técnico", 2, 2, constants.ClassroomTaller) // sin taller registrado

	_, err := AutoGenerate(snap, "coord-1", "career-1", "shift-1", "")
	require.NoError(t, err)

	for _, e := range snap.ScheduleEntries {
		switch e.ScheduleEntryClassName {
		case "Programación I":
			assert.Equal(t, "lab-1", e.ScheduleEntryClassroomID, "debe preferir el tipo que coincide")
		case "Dibujo técnico":
			assert.Equal(t, "aula-1", e.ScheduleEntryClassroomID, "sin tipo coincidente: primera aula del sistema")
		}
	}
}

func TestAutoGenerateKeepsCatalogInsertionOrder(t *testing.T) {
	snap := allocSnapshot()
	addCatalogItem(snap, "Primera", 1, 2, constants.ClassroomDefault)
	addCatalogItem(snap, "Segunda", 1, 2, constants.ClassroomDefault)

	n, err := AutoGenerate(snap, "coord-1", "career-1", "shift-1", "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	first, ok := FindOccupant(snap, m.SlotKey{
		CoordinationID: "coord-1", CareerID: "career-1", ShiftID: "shift-1",
		Year: 1, Day: "lunes", Block: 1,
	})
	require.True(t, ok)
	assert.Equal(t, "Primera", first.ScheduleEntryClassName)
}
