package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "academico_backend/internals/features/academic/schedule/model"
	"academico_backend/internals/state"
)

func strictBatch(rows ...string) string {
	return strings.Join(append([]string{"carrera,materia,codigo,dia,inicio,fin,aula"}, rows...), "\n")
}

func TestImportStrictCleanBatch(t *testing.T) {
	snap := state.DefaultSnapshot()
	text := strictBatch(
		"Sistemas,Programación I,PRG101,lunes,08:00,09:30,A-101",
		"Sistemas,Matemática I,MAT101,lunes,09:30,11:00,A-102",
		"Civil,Estática,EST201,lunes,08:00,09:30,B-201",
	)

	n, errs := ImportStrict(snap, text)
	assert.Nil(t, errs)
	assert.Equal(t, 3, n)
	assert.Len(t, snap.ClassRecords, 3)
}

func TestImportStrictHeaderIsExact(t *testing.T) {
	snap := state.DefaultSnapshot()

	// mayúscula en una columna: rechazado con un solo error de header
	text := "Carrera,materia,codigo,dia,inicio,fin,aula\nSistemas,X,C1,lunes,08:00,09:00,A"
	n, errs := ImportStrict(snap, text)
	assert.Equal(t, 0, n)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "header")
	assert.Empty(t, snap.ClassRecords)
}

func TestImportStrictRowValidation(t *testing.T) {
	snap := state.DefaultSnapshot()
	text := strictBatch(
		"Sistemas,Programación I,PRG101,lunes,08:00,09:30",        // 6 columnas
		"Sistemas,,MAT101,lunes,09:30,11:00,A-102",                // campo vacío
		"Sistemas,Física,FIS101,domingo,08:00,09:30,A-103",        // día inválido
		"Sistemas,Química,QUI101,martes,8am,09:30,A-104",          // hora inválida
		"Sistemas,Biología,BIO101,martes,10:00,09:00,A-105",       // fin antes de inicio
	)

	n, errs := ImportStrict(snap, text)
	assert.Equal(t, 0, n)
	require.Len(t, errs, 5)
	assert.Contains(t, errs[0], "row 1")
	assert.Contains(t, errs[0], "columns")
	assert.Contains(t, errs[1], "row 2")
	assert.Contains(t, errs[1], "materia")
	assert.Contains(t, errs[2], "row 3")
	assert.Contains(t, errs[2], "week day")
	assert.Contains(t, errs[3], "row 4")
	assert.Contains(t, errs[4], "row 5")
	assert.Contains(t, errs[4], "exceed")
	assert.Empty(t, snap.ClassRecords)
}

// todo-o-nada: la fila 3 de 5 choca con un registro ya almacenado ⇒ cero
// inserciones y la lista nombra la fila 3
func TestImportStrictAllOrNothingAgainstStored(t *testing.T) {
	snap := state.DefaultSnapshot()
	snap.ClassRecords["rec-1"] = m.ClassRecordModel{
		ClassRecordID:     "rec-1",
		ClassRecordCareer: "Sistemas",
		ClassRecordSubject: "Arquitectura",
		ClassRecordCode:   "ARQ301",
		ClassRecordDay:    "miércoles",
		ClassRecordStart:  "08:00",
		ClassRecordEnd:    "10:00",
	}

	text := strictBatch(
		"Sistemas,Programación I,PRG101,lunes,08:00,09:30,A-101",
		"Sistemas,Matemática I,MAT101,martes,08:00,09:30,A-102",
		"Sistemas,Redes,RED301,miércoles,09:00,11:00,A-103", // pisa 08:00-10:00
		"Sistemas,Física,FIS101,jueves,08:00,09:30,A-104",
		"Sistemas,Química,QUI101,viernes,08:00,09:30,A-105",
	)

	n, errs := ImportStrict(snap, text)
	assert.Equal(t, 0, n)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "row 3")
	assert.Contains(t, errs[0], "Arquitectura")
	assert.Len(t, snap.ClassRecords, 1, "solo el registro previo")
}

func TestImportStrictOverlapWithinBatch(t *testing.T) {
	snap := state.DefaultSnapshot()
	text := strictBatch(
		"Sistemas,Programación I,PRG101,lunes,08:00,10:00,A-101",
		"Sistemas,Matemática I,MAT101,lunes,09:00,11:00,A-102", // pisa la fila 1
		"Civil,Estática,EST201,lunes,09:00,11:00,B-201",        // otra carrera: libre
	)

	n, errs := ImportStrict(snap, text)
	assert.Equal(t, 0, n)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "row 2")
	assert.Contains(t, errs[0], "row 1")
}

// intervalos semiabiertos: tocarse no es chocar
func TestImportStrictTouchingIntervalsDoNotConflict(t *testing.T) {
	snap := state.DefaultSnapshot()
	text := strictBatch(
		"Sistemas,Programación I,PRG101,lunes,08:00,09:30,A-101",
		"Sistemas,Matemática I,MAT101,lunes,09:30,11:00,A-101",
	)

	n, errs := ImportStrict(snap, text)
	assert.Nil(t, errs)
	assert.Equal(t, 2, n)
}

func TestImportStrictNoData(t *testing.T) {
	snap := state.DefaultSnapshot()
	n, errs := ImportStrict(snap, "carrera,materia,codigo,dia,inicio,fin,aula\n")
	assert.Equal(t, 0, n)
	require.Len(t, errs, 1)
	assert.Equal(t, "no data", errs[0])
}
