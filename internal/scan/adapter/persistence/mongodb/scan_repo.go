package mongodb

import (
	"context"

	"ecoshopper-backend/internal/scan/domain/model"
	"ecoshopper-backend/internal/shared/database"

	"go.mongodb.org/mongo-driver/bson"
)

// ScanRepository persists scan records through the shared store handle.
type ScanRepository struct {
	store      *database.Store
	collection string
}

// NewScanRepository creates a MongoDB-backed scan repository.
func NewScanRepository(store *database.Store, collection string) *ScanRepository {
	return &ScanRepository{
		store:      store,
		collection: collection,
	}
}

// Insert persists the record and returns it with the assigned identifier.
func (r *ScanRepository) Insert(ctx context.Context, record *model.ScanRecord) (*model.ScanRecord, error) {
	doc, err := r.store.Insert(ctx, r.collection, toDocument(record))
	if err != nil {
		return nil, err
	}
	return fromDocument(doc), nil
}

// FindRecent returns up to limit records, most recently created first.
func (r *ScanRepository) FindRecent(ctx context.Context, limit int) ([]*model.ScanRecord, error) {
	docs, err := r.store.FindRecent(ctx, r.collection, bson.M{}, int64(limit))
	if err != nil {
		return nil, err
	}

	records := make([]*model.ScanRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, fromDocument(doc))
	}
	return records, nil
}

// toDocument shapes a record into the persisted document layout. The
// identifier is assigned by the store and the creation timestamp is stamped
// by the store adapter, so neither appears here.
func toDocument(record *model.ScanRecord) bson.M {
	return bson.M{
		"code":            record.Code,
		"name":            record.Name,
		"manufacturer":    record.Manufacturer,
		"category":        record.Category,
		"mfgDate":         record.MfgDate,
		"expDate":         record.ExpDate,
		"rating":          record.Rating,
		"footprintKgCO2e": record.FootprintKgCO2e,
		"scannedAt":       record.ScannedAt,
	}
}

// fromDocument shapes a persisted document back into a record, ignoring any
// fields outside the record contract (including the ordering timestamp).
func fromDocument(doc bson.M) *model.ScanRecord {
	return &model.ScanRecord{
		ID:              asString(doc["_id"]),
		Code:            asString(doc["code"]),
		Name:            asString(doc["name"]),
		Manufacturer:    asString(doc["manufacturer"]),
		Category:        asString(doc["category"]),
		MfgDate:         asString(doc["mfgDate"]),
		ExpDate:         asString(doc["expDate"]),
		Rating:          asInt(doc["rating"]),
		FootprintKgCO2e: asFloat(doc["footprintKgCO2e"]),
		ScannedAt:       asInt64(doc["scannedAt"]),
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
