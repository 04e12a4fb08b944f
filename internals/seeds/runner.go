package seeds

import (
	"os"

	academic "academico_backend/internals/seeds/academic"
	"academico_backend/internals/state"
)

// RunAllSeeds menjalankan seluruh seeder. Hanya aktif kalau SEED_DEMO=1.
func RunAllSeeds(mgr *state.Manager) {
	if os.Getenv("SEED_DEMO") != "1" {
		return
	}
	academic.SeedDemo(mgr)
}
