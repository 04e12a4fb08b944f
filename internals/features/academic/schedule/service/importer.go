package service

import (
	"strings"

	catalogService "academico_backend/internals/features/academic/catalog/service"
	"academico_backend/internals/state"
)

/* =======================================================
   Estrategias de import — una capacidad, dos políticas
   ======================================================= */

const (
	PolicyLenient = "lenient"
	PolicyStrict  = "strict"
)

// ImportScope membawa konteks yang hanya dibutuhkan kebijakan lenient.
type ImportScope struct {
	CoordinationID string
	CareerID       string
	Source         string
}

// Importer adalah satu kapabilitas dengan dua kebijakan bernama: toleran
// (default per fila) dan estricto (todo-o-nada). Dipilih lewat konfigurasi
// IMPORT_POLICY, bukan duplikasi pipeline.
type Importer interface {
	Name() string
	Import(snap *state.Snapshot, text string, scope ImportScope) (int, []string)
}

type lenientImporter struct{}

func (lenientImporter) Name() string { return PolicyLenient }

func (lenientImporter) Import(snap *state.Snapshot, text string, scope ImportScope) (int, []string) {
	n, err := catalogService.ImportCatalog(snap, text, scope.CoordinationID, scope.CareerID, scope.Source)
	if err != nil {
		return 0, []string{err.Error()}
	}
	return n, nil
}

type strictImporter struct{}

func (strictImporter) Name() string { return PolicyStrict }

func (strictImporter) Import(snap *state.Snapshot, text string, _ ImportScope) (int, []string) {
	return ImportStrict(snap, text)
}

// ImporterFor mengembalikan strategi untuk nama kebijakan; nama tak dikenal
// jatuh ke lenient.
func ImporterFor(policy string) Importer {
	if policy == PolicyStrict {
		return strictImporter{}
	}
	return lenientImporter{}
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
