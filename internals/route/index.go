package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	careerCtl "academico_backend/internals/features/academic/careers/controller"
	catalogCtl "academico_backend/internals/features/academic/catalog/controller"
	categoryCtl "academico_backend/internals/features/academic/categories/controller"
	classroomCtl "academico_backend/internals/features/academic/classrooms/controller"
	contextCtl "academico_backend/internals/features/academic/context/controller"
	coordCtl "academico_backend/internals/features/academic/coordinations/controller"
	periodCtl "academico_backend/internals/features/academic/periods/controller"
	scheduleCtl "academico_backend/internals/features/academic/schedule/controller"
	shiftCtl "academico_backend/internals/features/academic/shifts/controller"
	teacherCtl "academico_backend/internals/features/academic/teachers/controller"
	"academico_backend/internals/middlewares"
	"academico_backend/internals/state"
)

// SetupRoutes registra toda la superficie HTTP sobre un único Manager.
func SetupRoutes(app *fiber.App, mgr *state.Manager, importPolicy string) {
	log.Println("[INFO] Setting up routes...")

	admin := app.Group("/api/a")

	// ===================== CATÁLOGOS BASE =====================
	coordinations := coordCtl.NewCoordinationController(mgr)
	admin.Post("/coordinations", coordinations.Create)
	admin.Get("/coordinations", coordinations.List)
	admin.Delete("/coordinations/:id", coordinations.Delete)

	careers := careerCtl.NewCareerController(mgr)
	admin.Post("/careers", careers.Create)
	admin.Get("/careers", careers.List)
	admin.Delete("/careers/:id", careers.Delete)

	categories := categoryCtl.NewCategoryController(mgr)
	admin.Post("/categories", categories.Create)
	admin.Get("/categories", categories.List)
	admin.Delete("/categories/:id", categories.Delete)

	teachers := teacherCtl.NewTeacherController(mgr)
	admin.Post("/teachers", teachers.Create)
	admin.Get("/teachers", teachers.List)
	admin.Delete("/teachers/:id", teachers.Delete)

	classrooms := classroomCtl.NewClassroomController(mgr)
	admin.Post("/classrooms", classrooms.Create)
	admin.Get("/classrooms", classrooms.List)
	admin.Delete("/classrooms/:id", classrooms.Delete)

	// ===================== TURNOS Y PERIODOS =====================
	shifts := shiftCtl.NewShiftController(mgr)
	admin.Post("/shifts", shifts.Create)
	admin.Get("/shifts", shifts.List)
	admin.Get("/shifts/:id/blocks", shifts.Blocks)
	admin.Delete("/shifts/:id", shifts.Delete)

	periods := periodCtl.NewPeriodController(mgr)
	admin.Post("/periods", periods.Create)
	admin.Get("/periods", periods.List)
	admin.Delete("/periods/:id", periods.Delete)

	// ===================== CATÁLOGO DE CLASES =====================
	catalog := catalogCtl.NewCatalogController(mgr)
	admin.Post("/catalog/import", middlewares.ImportRateLimiter(), catalog.Import)
	admin.Get("/catalog", catalog.List)
	admin.Get("/catalog/batches", catalog.Batches)

	// ===================== HORARIO =====================
	schedule := scheduleCtl.NewScheduleController(mgr, importPolicy)
	admin.Post("/schedule/entries", schedule.UpsertEntry)
	admin.Get("/schedule/entries", schedule.List)
	admin.Delete("/schedule/entries/:id", schedule.DeleteEntry)
	admin.Post("/schedule/reset", schedule.Reset)
	admin.Post("/schedule/generate", schedule.Generate)
	admin.Post("/schedule/import-strict", middlewares.ImportRateLimiter(), schedule.ImportStrict)
	admin.Post("/import", middlewares.ImportRateLimiter(), schedule.Import)
	admin.Get("/schedule/records", schedule.Records)

	// ===================== CONTEXTO =====================
	contexts := contextCtl.NewContextController(mgr)
	admin.Get("/context", contexts.Get)
	admin.Put("/context/active", contexts.PutActive)
	admin.Put("/context/view", contexts.PutView)

	log.Println("[INFO] Routes ready.")
}
