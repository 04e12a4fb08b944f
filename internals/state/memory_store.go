package state

import (
	"context"

	"github.com/bytedance/sonic"
)

/* =======================================================
   MemoryStore — backend untuk test / mode tanpa DB
   ======================================================= */

// MemoryStore menyimpan payload JSON di memori. Round-trip JSON memberi
// isolasi deep-copy yang sama dengan backend sungguhan.
type MemoryStore struct {
	payload []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*Snapshot, error) {
	if m.payload == nil {
		return DefaultSnapshot(), nil
	}
	snap := DefaultSnapshot()
	if err := sonic.Unmarshal(m.payload, snap); err != nil {
		return DefaultSnapshot(), nil
	}
	snap.EnsureMaps()
	return snap, nil
}

func (m *MemoryStore) Save(_ context.Context, snap *Snapshot) error {
	payload, err := sonic.Marshal(snap)
	if err != nil {
		return err
	}
	m.payload = payload
	return nil
}
