package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"academico_backend/internals/constants"
	m "academico_backend/internals/features/academic/schedule/model"
	shiftService "academico_backend/internals/features/academic/shifts/service"
	"academico_backend/internals/state"
)

/* =======================================================
   Importer estricto — todo-o-nada
   =======================================================
   Header exacto y sensible a mayúsculas; cada violación de fila suma un
   error numerado; cualquier error (formato o choque) anula el lote entero.
*/

// StrictHeader — columnas exactas, en orden, sensibles a mayúsculas.
var StrictHeader = []string{"carrera", "materia", "codigo", "dia", "inicio", "fin", "aula"}

type strictRow struct {
	line   int // número de fila de datos (1-based)
	career string
	start  int
	end    int
	rec    m.ClassRecordModel
}

// ImportStrict mem-parse lote tuple datar dan menyisipkannya HANYA bila
// seluruh lot bersih. errors non-nil berarti nol baris masuk.
func ImportStrict(snap *state.Snapshot, text string) (int, []string) {
	lines := nonEmptyLines(text)
	if len(lines) < 2 {
		return 0, []string{"no data"}
	}

	if lines[0] != strings.Join(StrictHeader, ",") {
		return 0, []string{fmt.Sprintf("header must be exactly: %s", strings.Join(StrictHeader, ","))}
	}

	var errs []string
	var accepted []strictRow

	for i, line := range lines[1:] {
		rowNum := i + 1
		fields := strings.Split(line, ",")
		if len(fields) != len(StrictHeader) {
			errs = append(errs, fmt.Sprintf("row %d: expected %d columns, got %d", rowNum, len(StrictHeader), len(fields)))
			continue
		}

		empty := false
		for col, f := range fields {
			if strings.TrimSpace(f) == "" {
				errs = append(errs, fmt.Sprintf("row %d: column %q is empty", rowNum, StrictHeader[col]))
				empty = true
			}
		}
		if empty {
			continue
		}

		career := strings.TrimSpace(fields[0])
		day := strings.TrimSpace(fields[3])
		if !constants.IsWeekDay(day) {
			errs = append(errs, fmt.Sprintf("row %d: day %q is not a week day", rowNum, day))
			continue
		}

		start, okStart := shiftService.ParseClock(fields[4])
		end, okEnd := shiftService.ParseClock(fields[5])
		if !okStart || !okEnd {
			errs = append(errs, fmt.Sprintf("row %d: start/end must be clock times (HH:MM)", rowNum))
			continue
		}
		if start >= end {
			errs = append(errs, fmt.Sprintf("row %d: end must exceed start", rowNum))
			continue
		}

		row := strictRow{
			line:   rowNum,
			career: career,
			start:  start,
			end:    end,
			rec: m.ClassRecordModel{
				ClassRecordID:        uuid.NewString(),
				ClassRecordCareer:    career,
				ClassRecordSubject:   strings.TrimSpace(fields[1]),
				ClassRecordCode:      strings.TrimSpace(fields[2]),
				ClassRecordDay:       day,
				ClassRecordStart:     strings.TrimSpace(fields[4]),
				ClassRecordEnd:       strings.TrimSpace(fields[5]),
				ClassRecordRoom:      strings.TrimSpace(fields[6]),
				ClassRecordCreatedAt: time.Now(),
			},
		}

		// choque contra registros ya almacenados (misma carrera + día)
		for _, stored := range snap.ClassRecords {
			if stored.ClassRecordCareer != career || stored.ClassRecordDay != day {
				continue
			}
			bStart, _ := shiftService.ParseClock(stored.ClassRecordStart)
			bEnd, _ := shiftService.ParseClock(stored.ClassRecordEnd)
			if start < bEnd && bStart < end {
				errs = append(errs, fmt.Sprintf("row %d: overlaps stored record %s (%s %s-%s)",
					rowNum, stored.ClassRecordSubject, day, stored.ClassRecordStart, stored.ClassRecordEnd))
			}
		}

		// choque dentro del mismo lote
		for _, prev := range accepted {
			if prev.career != career || prev.rec.ClassRecordDay != day {
				continue
			}
			if start < prev.end && prev.start < end {
				errs = append(errs, fmt.Sprintf("row %d: overlaps row %d in this batch", rowNum, prev.line))
			}
		}

		accepted = append(accepted, row)
	}

	if len(errs) > 0 {
		return 0, errs
	}

	for _, row := range accepted {
		snap.ClassRecords[row.rec.ClassRecordID] = row.rec
	}
	return len(accepted), nil
}
