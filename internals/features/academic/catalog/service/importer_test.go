package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academico_backend/internals/constants"
	"academico_backend/internals/state"
)

const sampleCSV = `Clase,Año,Créditos,Categoría,Compartida,Tipo de aula
Programación I,1,4,Obligatoria,no,Laboratorios
Matemática II,II,3,Obligatoria,sí,Aula normal
Electiva,Tercero,,Electiva,,talleres
`

func TestImportCatalogResolvesAliasesAndDefaults(t *testing.T) {
	snap := state.DefaultSnapshot()

	n, err := ImportCatalog(snap, sampleCSV, "coord-1", "career-1", "carga.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	items := snap.CatalogItemsOrdered("coord-1", "career-1")
	require.Len(t, items, 3)

	assert.Equal(t, "Programación I", items[0].CatalogItemName)
	assert.Equal(t, 1, items[0].CatalogItemYear)
	assert.Equal(t, 4, items[0].CatalogItemCredits)
	assert.Equal(t, constants.ClassroomLab, items[0].CatalogItemClassroomType)
	assert.False(t, items[0].CatalogItemShared)

	// año romano, compartida truthy
	assert.Equal(t, 2, items[1].CatalogItemYear)
	assert.True(t, items[1].CatalogItemShared)
	assert.Equal(t, constants.ClassroomDefault, items[1].CatalogItemClassroomType)

	// ordinal español, créditos por defecto, plural/minúscula de taller
	assert.Equal(t, 3, items[2].CatalogItemYear)
	assert.Equal(t, 1, items[2].CatalogItemCredits)
	assert.Equal(t, constants.ClassroomTaller, items[2].CatalogItemClassroomType)
}

func TestImportCatalogUnaccentedHeaders(t *testing.T) {
	snap := state.DefaultSnapshot()
	csv := "nombre,anio,creditos,categoria,compartido,tipo aula\nFísica,1,3,Obligatoria,no,lab\n"

	n, err := ImportCatalog(snap, csv, "c", "k", "f.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestImportCatalogIsTotalPerRow(t *testing.T) {
	snap := state.DefaultSnapshot()
	csv := strings.Join([]string{
		"clase,año,créditos,categoría,compartida,tipo de aula",
		"Rara,99,abc,Cat,?,sala de conferencias", // todo degrada a defaults
	}, "\n")

	n, err := ImportCatalog(snap, csv, "c", "k", "f.csv")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	item := snap.CatalogItemsOrdered("c", "k")[0]
	assert.Equal(t, 1, item.CatalogItemYear)
	assert.Equal(t, 1, item.CatalogItemCredits)
	assert.Equal(t, constants.ClassroomDefault, item.CatalogItemClassroomType)
}

func TestImportCatalogDropsRowsWithoutName(t *testing.T) {
	snap := state.DefaultSnapshot()
	csv := strings.Join([]string{
		"clase,año,créditos,categoría,compartida,tipo de aula",
		"  ,1,3,Cat,no,lab",
		"Química,1,3,Cat,no,lab",
	}, "\n")

	n, err := ImportCatalog(snap, csv, "c", "k", "f.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, snap.CatalogItems, 1)
}

func TestImportCatalogStructuralFailures(t *testing.T) {
	snap := state.DefaultSnapshot()

	_, err := ImportCatalog(snap, "", "c", "k", "f.csv")
	assert.EqualError(t, err, "no data")

	_, err = ImportCatalog(snap, "clase,año,créditos,categoría,compartida,tipo de aula\n", "c", "k", "f.csv")
	assert.EqualError(t, err, "no data")

	// header sin resolver: nombra TODOS los campos faltantes
	_, err = ImportCatalog(snap, "clase,año\nAlgo,1\n", "c", "k", "f.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credits")
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "shared")
	assert.Contains(t, err.Error(), "classroom_type")
	assert.NotContains(t, err.Error(), "year")
	assert.Empty(t, snap.CatalogItems, "no debe haber inserción parcial")
}

func TestImportCatalogRecordsBatch(t *testing.T) {
	snap := state.DefaultSnapshot()

	n, err := ImportCatalog(snap, sampleCSV, "c", "k", "primer-semestre.csv")
	require.NoError(t, err)

	require.Len(t, snap.ImportBatches, 1)
	for _, b := range snap.ImportBatches {
		assert.Equal(t, "primer-semestre.csv", b.ImportBatchFileName)
		assert.Equal(t, n, b.ImportBatchRowCount)
		assert.False(t, b.ImportBatchUploadedAt.IsZero())
	}
}

func TestNormalizeClassroomType(t *testing.T) {
	assert.Equal(t, constants.ClassroomLab, NormalizeClassroomType("LABORATORIO"))
	assert.Equal(t, constants.ClassroomLab, NormalizeClassroomType("laboratorios"))
	assert.Equal(t, constants.ClassroomLab, NormalizeClassroomType("lab"))
	assert.Equal(t, constants.ClassroomTaller, NormalizeClassroomType("Taller"))
	assert.Equal(t, constants.ClassroomTaller, NormalizeClassroomType("TALLERES"))
	assert.Equal(t, constants.ClassroomDefault, NormalizeClassroomType("Aula normal"))
	assert.Equal(t, constants.ClassroomDefault, NormalizeClassroomType(""))
	assert.Equal(t, constants.ClassroomDefault, NormalizeClassroomType("auditorio"))
}
