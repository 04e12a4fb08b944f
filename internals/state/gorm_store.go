package state

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* =======================================================
   AppStateModel — satu baris JSON per aplikasi
   ======================================================= */

type AppStateModel struct {
	AppStateKey       string         `gorm:"column:app_state_key;primaryKey;type:text" json:"app_state_key"`
	AppStatePayload   datatypes.JSON `gorm:"column:app_state_payload;type:jsonb;not null" json:"app_state_payload"`
	AppStateUpdatedAt time.Time      `gorm:"column:app_state_updated_at;autoUpdateTime" json:"app_state_updated_at"`
}

func (AppStateModel) TableName() string {
	return "app_states"
}

/* =======================================================
   GormStore — snapshot utuh di satu baris Postgres
   ======================================================= */

type GormStore struct {
	DB  *gorm.DB
	Key string
}

func NewGormStore(db *gorm.DB, key string) (*GormStore, error) {
	if err := db.AutoMigrate(&AppStateModel{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db, Key: key}, nil
}

// Load membaca baris snapshot. Baris hilang atau payload korup jatuh ke
// DefaultSnapshot (perilaku merge-with-seed penyimpanan asal).
func (g *GormStore) Load(ctx context.Context) (*Snapshot, error) {
	var row AppStateModel
	err := g.DB.WithContext(ctx).First(&row, "app_state_key = ?", g.Key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultSnapshot(), nil
	}
	if err != nil {
		return nil, err
	}

	snap := DefaultSnapshot()
	if uerr := sonic.Unmarshal(row.AppStatePayload, snap); uerr != nil {
		log.Printf("⚠️ payload snapshot korup (key=%s), pakai seed: %v", g.Key, uerr)
		return DefaultSnapshot(), nil
	}
	snap.EnsureMaps()
	return snap, nil
}

func (g *GormStore) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := sonic.Marshal(snap)
	if err != nil {
		return err
	}
	row := AppStateModel{AppStateKey: g.Key, AppStatePayload: payload}
	return g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "app_state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"app_state_payload", "app_state_updated_at"}),
	}).Create(&row).Error
}
