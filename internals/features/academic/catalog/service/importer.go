package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"academico_backend/internals/constants"
	m "academico_backend/internals/features/academic/catalog/model"
	"academico_backend/internals/state"
)

/* =======================================================
   Importer toleran-alias (kebijakan lenient)
   =======================================================
   Hanya dua kegagalan struktural: "no data" dan header yang tidak
   terpetakan. Nilai baris yang rusak jatuh ke default, tidak pernah
   menolak barisnya.
*/

const delimiter = ","

// ImportCatalog mem-parse teks tabular dan menambahkan hasilnya ke katalog
// (coordination, career). Mengembalikan jumlah baris yang benar-benar masuk.
func ImportCatalog(snap *state.Snapshot, text, coordinationID, careerID, source string) (int, error) {
	lines := nonEmptyLines(text)
	if len(lines) < 2 {
		return 0, errors.New("no data")
	}

	index, err := resolveHeader(lines[0])
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, line := range lines[1:] {
		fields := strings.Split(line, delimiter)

		name := strings.TrimSpace(fieldAt(fields, index[FieldName]))
		if name == "" {
			continue // fila sin nombre: se descarta en silencio
		}

		snap.CatalogSeq++
		item := m.CatalogItemModel{
			CatalogItemID:             uuid.NewString(),
			CatalogItemCoordinationID: coordinationID,
			CatalogItemCareerID:       careerID,
			CatalogItemName:           name,
			CatalogItemYear:           resolveYear(fieldAt(fields, index[FieldYear])),
			CatalogItemCredits:        resolveCredits(fieldAt(fields, index[FieldCredits])),
			CatalogItemCategory:       strings.TrimSpace(fieldAt(fields, index[FieldCategory])),
			CatalogItemShared:         resolveShared(fieldAt(fields, index[FieldShared])),
			CatalogItemClassroomType:  NormalizeClassroomType(fieldAt(fields, index[FieldClassroomType])),
			CatalogItemSeq:            snap.CatalogSeq,
			CatalogItemCreatedAt:      time.Now(),
		}
		snap.CatalogItems[item.CatalogItemID] = item
		inserted++
	}

	batch := m.ImportBatchModel{
		ImportBatchID:         uuid.NewString(),
		ImportBatchFileName:   source,
		ImportBatchRowCount:   inserted,
		ImportBatchUploadedAt: time.Now(),
	}
	snap.ImportBatches[batch.ImportBatchID] = batch

	return inserted, nil
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

// resolveHeader memetakan setiap field logis ke indeks kolomnya lewat tabel
// alias. Gagal dengan menyebut SEMUA field yang tidak ketemu.
func resolveHeader(headerLine string) (map[Field]int, error) {
	headers := strings.Split(headerLine, delimiter)
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	index := make(map[Field]int, len(requiredFields))
	var missing []string
	for _, f := range requiredFields {
		idx := -1
		for _, alias := range HeaderAliases[f] {
			for col, h := range headers {
				if h == alias {
					idx = col
					break
				}
			}
			if idx >= 0 {
				break
			}
		}
		if idx < 0 {
			missing = append(missing, string(f))
			continue
		}
		index[f] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("unresolved header fields: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func fieldAt(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

var romanYears = map[string]int{"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5}

// ordinales españoles, por contención de substring
var ordinalYears = []struct {
	word string
	year int
}{
	{"primer", 1}, // cubre primer/primero
	{"segundo", 2},
	{"tercer", 3}, // cubre tercer/tercero
	{"cuarto", 4},
	{"quinto", 5},
}

// resolveYear — resolusi total, tidak pernah gagal: numerik 1..5, lalu
// romawi I–V, lalu ordinal español, lalu default 1.
func resolveYear(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 5 {
		return n
	}
	if n, ok := romanYears[s]; ok {
		return n
	}
	for _, o := range ordinalYears {
		if strings.Contains(s, o.word) {
			return o.year
		}
	}
	return 1
}

// resolveCredits — default 1 cuando falta o no es numérico (nunca 0).
func resolveCredits(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

var truthyShared = map[string]bool{
	"sí": true, "si": true, "x": true, "1": true, "true": true,
	"compartida": true, "compartido": true,
}

func resolveShared(raw string) bool {
	return truthyShared[strings.ToLower(strings.TrimSpace(raw))]
}

// NormalizeClassroomType melipat variasi huruf/plural ke salah satu dari
// tiga label kanonik; apa pun yang tidak dikenal jatuh ke "Aula normal".
func NormalizeClassroomType(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "lab" || strings.HasPrefix(s, "laborator"):
		return constants.ClassroomLab
	case strings.HasPrefix(s, "taller"):
		return constants.ClassroomTaller
	default:
		return constants.ClassroomDefault
	}
}
