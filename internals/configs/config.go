package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// ImportPolicy memilih strategi importer untuk endpoint generik /api/a/import
	// (lenient | strict). Lihat internals/features/academic/schedule/service.
	ImportPolicy string

	// StateKey adalah key baris snapshot di tabel app_states.
	StateKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	ImportPolicy = GetEnv("IMPORT_POLICY", "lenient")
	StateKey = GetEnv("STATE_KEY", "academic-management-db")

	if ImportPolicy != "lenient" && ImportPolicy != "strict" {
		log.Printf("⚠️ IMPORT_POLICY tidak dikenal (%s), fallback ke lenient", ImportPolicy)
		ImportPolicy = "lenient"
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
