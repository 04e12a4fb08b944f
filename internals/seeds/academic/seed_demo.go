package academic

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"academico_backend/internals/constants"
	careerModel "academico_backend/internals/features/academic/careers/model"
	categoryModel "academico_backend/internals/features/academic/categories/model"
	classroomModel "academico_backend/internals/features/academic/classrooms/model"
	coordModel "academico_backend/internals/features/academic/coordinations/model"
	shiftService "academico_backend/internals/features/academic/shifts/service"
	teacherModel "academico_backend/internals/features/academic/teachers/model"
	"academico_backend/internals/state"
)

// SeedDemo mengisi snapshot kosong dengan data contoh: satu coordination,
// satu career, kategorías, aulas dan un turno matutino. Idempotent: kalau
// snapshot sudah punya coordination, seed dilewati.
func SeedDemo(mgr *state.Manager) {
	err := mgr.Update(context.Background(), func(snap *state.Snapshot) error {
		if len(snap.Coordinations) > 0 {
			log.Println("ℹ️ Snapshot sudah berisi data, seed dilewati")
			return nil
		}

		now := time.Now()

		coordID := uuid.NewString()
		snap.Coordinations[coordID] = coordModel.CoordinationModel{
			CoordinationID:        coordID,
			CoordinationName:      "Coordinación de Ingeniería",
			CoordinationCreatedAt: now,
		}

		careerID := uuid.NewString()
		snap.Careers[careerID] = careerModel.CareerModel{
			CareerID:             careerID,
			CareerName:           "Ingeniería en Sistemas",
			CareerCoordinationID: coordID,
			CareerCreatedAt:      now,
		}

		for _, name := range []string{"Ciencias Básicas", "Formación Profesional"} {
			id := uuid.NewString()
			snap.Categories[id] = categoryModel.CategoryModel{
				CategoryID:        id,
				CategoryName:      name,
				CategoryCreatedAt: now,
			}
		}

		teacherID := uuid.NewString()
		snap.Teachers[teacherID] = teacherModel.TeacherModel{
			TeacherID:        teacherID,
			TeacherName:      "María González",
			TeacherCreatedAt: now,
		}

		rooms := []struct{ name, kind string }{
			{"Aula 101", constants.ClassroomDefault},
			{"Laboratorio de Cómputo", constants.ClassroomLab},
			{"Taller de Electrónica", constants.ClassroomTaller},
		}
		for _, r := range rooms {
			id := uuid.NewString()
			snap.ClassroomSeq++
			snap.Classrooms[id] = classroomModel.ClassroomModel{
				ClassroomID:        id,
				ClassroomName:      r.name,
				ClassroomType:      r.kind,
				ClassroomSeq:       snap.ClassroomSeq,
				ClassroomCreatedAt: now,
			}
		}

		shift, err := shiftService.ValidateShift(shiftService.ShiftInput{
			Name:            "Matutino",
			Days:            []string{"lunes", "martes", "miércoles", "jueves", "viernes"},
			Priorities:      map[string]int{"lunes": 1},
			Blocks:          6,
			MinutesPerBlock: 45,
			CreditsPerBlock: 1,
			StartTime:       "08:00",
			RecessStart:     "10:15",
			RecessEnd:       "11:00",
		})
		if err != nil {
			return err
		}
		snap.Shifts[shift.ShiftID] = shift

		log.Println("✅ Seed demo selesai")
		return nil
	})
	if err != nil {
		log.Printf("❌ Seed demo gagal: %v", err)
	}
}
