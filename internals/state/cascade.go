package state

/* =======================================================
   Cascade deletes — aturan eksplisit, dijalankan dalam
   satu Manager.Update
   ======================================================= */

// DeleteCoordination menghapus coordination beserta seluruh turunannya:
// careers → catalog items + schedule entries + class records. Referensi
// konteks ikut dibersihkan.
func (s *Snapshot) DeleteCoordination(id string) bool {
	if _, ok := s.Coordinations[id]; !ok {
		return false
	}
	for careerID, c := range s.Careers {
		if c.CareerCoordinationID == id {
			s.deleteCareerCascade(careerID)
		}
	}
	delete(s.Coordinations, id)
	s.clearContextRefs()
	return true
}

// DeleteCareer menghapus career beserta catalog items, schedule entries
// dan class records miliknya.
func (s *Snapshot) DeleteCareer(id string) bool {
	if _, ok := s.Careers[id]; !ok {
		return false
	}
	s.deleteCareerCascade(id)
	s.clearContextRefs()
	return true
}

func (s *Snapshot) deleteCareerCascade(careerID string) {
	careerName := s.Careers[careerID].CareerName
	for itemID, it := range s.CatalogItems {
		if it.CatalogItemCareerID == careerID {
			delete(s.CatalogItems, itemID)
		}
	}
	for entryID, e := range s.ScheduleEntries {
		if e.ScheduleEntryCareerID == careerID {
			delete(s.ScheduleEntries, entryID)
		}
	}
	// Los registros planos del importer estricto no llevan career ID;
	// se barren por nombre de carrera.
	for recID, r := range s.ClassRecords {
		if r.ClassRecordCareer == careerName {
			delete(s.ClassRecords, recID)
		}
	}
	delete(s.Careers, careerID)
}

// DeleteShift menghapus shift beserta periods dan schedule entries miliknya.
func (s *Snapshot) DeleteShift(id string) bool {
	if _, ok := s.Shifts[id]; !ok {
		return false
	}
	for periodID, p := range s.Periods {
		if p.PeriodShiftID == id {
			delete(s.Periods, periodID)
		}
	}
	for entryID, e := range s.ScheduleEntries {
		if e.ScheduleEntryShiftID == id {
			delete(s.ScheduleEntries, entryID)
		}
	}
	delete(s.Shifts, id)
	s.clearContextRefs()
	return true
}

// DeleteClassroom melepas aula dari entri yang memakainya (entri bertahan,
// hanya kehilangan aula).
func (s *Snapshot) DeleteClassroom(id string) bool {
	if _, ok := s.Classrooms[id]; !ok {
		return false
	}
	for entryID, e := range s.ScheduleEntries {
		if e.ScheduleEntryClassroomID == id {
			e.ScheduleEntryClassroomID = ""
			s.ScheduleEntries[entryID] = e
		}
	}
	delete(s.Classrooms, id)
	return true
}

// clearContextRefs membersihkan Active/View yang menunjuk entitas terhapus.
func (s *Snapshot) clearContextRefs() {
	clean := func(c ContextRecord) ContextRecord {
		if c.CoordinationID != "" {
			if _, ok := s.Coordinations[c.CoordinationID]; !ok {
				c.CoordinationID = ""
			}
		}
		if c.CareerID != "" {
			if _, ok := s.Careers[c.CareerID]; !ok {
				c.CareerID = ""
			}
		}
		if c.ShiftID != "" {
			if _, ok := s.Shifts[c.ShiftID]; !ok {
				c.ShiftID = ""
			}
		}
		return c
	}
	s.Active = clean(s.Active)
	s.View = clean(s.View)
}
