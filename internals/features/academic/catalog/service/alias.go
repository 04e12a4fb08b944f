package service

/* =======================================================
   Tabla de alias — configuración, no lógica
   ======================================================= */

// Field adalah nama logis kolom katalog.
type Field string

const (
	FieldName          Field = "name"
	FieldYear          Field = "year"
	FieldCredits       Field = "credits"
	FieldCategory      Field = "category"
	FieldShared        Field = "shared"
	FieldClassroomType Field = "classroom_type"
)

// requiredFields dalam urutan pelaporan error header.
var requiredFields = []Field{
	FieldName,
	FieldYear,
	FieldCredits,
	FieldCategory,
	FieldShared,
	FieldClassroomType,
}

// HeaderAliases memetakan field logis ke ejaan header yang diterima
// (semua dibandingkan lowercase + trim). Ejaan dengan dan tanpa tilde
// dua-duanya diterima.
var HeaderAliases = map[Field][]string{
	FieldName:          {"clase", "nombre", "materia", "asignatura"},
	FieldYear:          {"año", "anio", "ano", "nivel", "curso"},
	FieldCredits:       {"créditos", "creditos", "carga"},
	FieldCategory:      {"categoría", "categoria", "tipo"},
	FieldShared:        {"compartida", "compartido", "compartida con otra carrera"},
	FieldClassroomType: {"tipo de aula", "tipo aula", "aula requerida", "aula"},
}
