package state

import (
	"sort"

	"academico_backend/internals/constants"
	careerModel "academico_backend/internals/features/academic/careers/model"
	catalogModel "academico_backend/internals/features/academic/catalog/model"
	categoryModel "academico_backend/internals/features/academic/categories/model"
	classroomModel "academico_backend/internals/features/academic/classrooms/model"
	coordModel "academico_backend/internals/features/academic/coordinations/model"
	periodModel "academico_backend/internals/features/academic/periods/model"
	scheduleModel "academico_backend/internals/features/academic/schedule/model"
	shiftModel "academico_backend/internals/features/academic/shifts/model"
	teacherModel "academico_backend/internals/features/academic/teachers/model"
)

/* =======================================================
   ContextRecord — selección activa / de vista
   ======================================================= */

type ContextRecord struct {
	CoordinationID string `json:"coordination_id,omitempty"`
	CareerID       string `json:"career_id,omitempty"`
	ShiftID        string `json:"shift_id,omitempty"`
}

/* =======================================================
   Snapshot — todo el estado de la aplicación
   ======================================================= */

// Snapshot adalah seluruh state aplikasi dalam satu nilai. Semua operasi
// engine membaca/memutasi nilai ini di dalam satu Manager.Update; tidak ada
// persistensi parsial.
type Snapshot struct {
	Role string `json:"role"`

	Coordinations   map[string]coordModel.CoordinationModel      `json:"coordinations"`
	Careers         map[string]careerModel.CareerModel           `json:"careers"`
	Categories      map[string]categoryModel.CategoryModel       `json:"categories"`
	Teachers        map[string]teacherModel.TeacherModel         `json:"teachers"`
	Classrooms      map[string]classroomModel.ClassroomModel     `json:"classrooms"`
	Shifts          map[string]shiftModel.ShiftModel             `json:"shifts"`
	Periods         map[string]periodModel.PeriodModel           `json:"periods"`
	CatalogItems    map[string]catalogModel.CatalogItemModel     `json:"catalog_items"`
	ImportBatches   map[string]catalogModel.ImportBatchModel     `json:"import_batches"`
	ScheduleEntries map[string]scheduleModel.ScheduleEntryModel  `json:"schedule_entries"`
	ClassRecords    map[string]scheduleModel.ClassRecordModel    `json:"class_records"`

	Active ContextRecord `json:"active"`
	View   ContextRecord `json:"view"`

	// Counter monotónico (las colecciones son maps, el orden vive aquí).
	CatalogSeq   int `json:"catalog_seq"`
	ClassroomSeq int `json:"classroom_seq"`
}

// DefaultSnapshot — seed awal (padanan defaultDB di versi browser).
func DefaultSnapshot() *Snapshot {
	s := &Snapshot{Role: constants.RoleCoordinator}
	s.EnsureMaps()
	return s
}

// EnsureMaps menginisialisasi map yang nil (payload lama bisa tidak punya
// sebagian koleksi; perilaku merge-with-seed dari penyimpanan asli).
func (s *Snapshot) EnsureMaps() {
	if s.Role == "" {
		s.Role = constants.RoleCoordinator
	}
	if s.Coordinations == nil {
		s.Coordinations = map[string]coordModel.CoordinationModel{}
	}
	if s.Careers == nil {
		s.Careers = map[string]careerModel.CareerModel{}
	}
	if s.Categories == nil {
		s.Categories = map[string]categoryModel.CategoryModel{}
	}
	if s.Teachers == nil {
		s.Teachers = map[string]teacherModel.TeacherModel{}
	}
	if s.Classrooms == nil {
		s.Classrooms = map[string]classroomModel.ClassroomModel{}
	}
	if s.Shifts == nil {
		s.Shifts = map[string]shiftModel.ShiftModel{}
	}
	if s.Periods == nil {
		s.Periods = map[string]periodModel.PeriodModel{}
	}
	if s.CatalogItems == nil {
		s.CatalogItems = map[string]catalogModel.CatalogItemModel{}
	}
	if s.ImportBatches == nil {
		s.ImportBatches = map[string]catalogModel.ImportBatchModel{}
	}
	if s.ScheduleEntries == nil {
		s.ScheduleEntries = map[string]scheduleModel.ScheduleEntryModel{}
	}
	if s.ClassRecords == nil {
		s.ClassRecords = map[string]scheduleModel.ClassRecordModel{}
	}
}

/* =======================================================
   Accessor berurut (map tidak punya urutan)
   ======================================================= */

// CatalogItemsOrdered mengembalikan item katalog milik (coordination,
// career) terurut Seq — urutan insert yang dipakai allocator.
func (s *Snapshot) CatalogItemsOrdered(coordinationID, careerID string) []catalogModel.CatalogItemModel {
	var items []catalogModel.CatalogItemModel
	for _, it := range s.CatalogItems {
		if it.CatalogItemCoordinationID == coordinationID && it.CatalogItemCareerID == careerID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CatalogItemSeq < items[j].CatalogItemSeq
	})
	return items
}

// ClassroomsOrdered — semua aula terurut pendaftaran.
func (s *Snapshot) ClassroomsOrdered() []classroomModel.ClassroomModel {
	var rooms []classroomModel.ClassroomModel
	for _, r := range s.Classrooms {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].ClassroomSeq < rooms[j].ClassroomSeq
	})
	return rooms
}
