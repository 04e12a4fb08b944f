package constants

/* =======================
   Tipe aula kanonik
   ======================= */

const (
	ClassroomLab     = "Laboratorios"
	ClassroomTaller  = "Talleres"
	ClassroomDefault = "Aula normal"
)

// ClassroomTypes adalah satu-satunya label tipe aula yang boleh tersimpan.
var ClassroomTypes = []string{ClassroomLab, ClassroomTaller, ClassroomDefault}

func IsClassroomType(t string) bool {
	for _, ct := range ClassroomTypes {
		if ct == t {
			return true
		}
	}
	return false
}
