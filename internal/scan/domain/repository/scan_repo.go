package repository

import (
	"context"

	"ecoshopper-backend/internal/scan/domain/model"
)

// ScanRepository defines persistence operations for scan records.
type ScanRepository interface {
	// Insert persists a record and returns it with the store-assigned
	// identifier set.
	Insert(ctx context.Context, record *model.ScanRecord) (*model.ScanRecord, error)

	// FindRecent returns up to limit records, most recently created first.
	FindRecent(ctx context.Context, limit int) ([]*model.ScanRecord, error)
}
