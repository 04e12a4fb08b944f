package model

import "time"

/* =======================================================
   CatalogItemModel — satu baris carga académica hasil import
   ======================================================= */

// CatalogItemModel dibuat massal oleh importer toleran-alias, tidak pernah
// dimutasi, dan hanya terhapus lewat cascade career/coordination.
// CatalogItemSeq menjaga urutan insert (urutan yang dipakai allocator).
type CatalogItemModel struct {
	CatalogItemID             string    `json:"catalog_item_id"`
	CatalogItemCoordinationID string    `json:"catalog_item_coordination_id"`
	CatalogItemCareerID       string    `json:"catalog_item_career_id"`
	CatalogItemName           string    `json:"catalog_item_name"`
	CatalogItemYear           int       `json:"catalog_item_year"` // 1..5
	CatalogItemCredits        int       `json:"catalog_item_credits"`
	CatalogItemCategory       string    `json:"catalog_item_category"`
	CatalogItemShared         bool      `json:"catalog_item_shared"`
	CatalogItemClassroomType  string    `json:"catalog_item_classroom_type"`
	CatalogItemSeq            int       `json:"catalog_item_seq"`
	CatalogItemCreatedAt      time.Time `json:"catalog_item_created_at"`
}

// ImportBatchModel — bitácora de cargas (nombre de archivo, fecha, filas).
type ImportBatchModel struct {
	ImportBatchID         string    `json:"import_batch_id"`
	ImportBatchFileName   string    `json:"import_batch_file_name"`
	ImportBatchRowCount   int       `json:"import_batch_row_count"`
	ImportBatchUploadedAt time.Time `json:"import_batch_uploaded_at"`
}
