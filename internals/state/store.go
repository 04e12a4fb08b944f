package state

import (
	"context"
	"sync"
)

/* =======================================================
   Store — backend persistensi snapshot utuh
   ======================================================= */

// Store memuat dan menyimpan seluruh snapshot. Backend bebas (Postgres,
// memori); engine tidak pernah melihat setengah-update.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

/* =======================================================
   Manager — batas serialisasi tunggal (read-modify-write)
   ======================================================= */

// Manager membungkus Store dengan satu mutex: padanan "satu event UI pada
// satu waktu" dari aplikasi asal. Semua operasi mutasi lewat Update.
type Manager struct {
	mu    sync.Mutex
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Update menjalankan fn pada snapshot penuh lalu menyimpannya. fn yang
// mengembalikan error membatalkan Save (tidak ada perubahan parsial).
func (m *Manager) Update(ctx context.Context, fn func(snap *Snapshot) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	snap.EnsureMaps()
	if err := fn(snap); err != nil {
		return err
	}
	return m.store.Save(ctx, snap)
}

// View menjalankan fn baca-saja pada snapshot penuh.
func (m *Manager) View(ctx context.Context, fn func(snap *Snapshot) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	snap.EnsureMaps()
	return fn(snap)
}
