package mongodb

import (
	"testing"

	"ecoshopper-backend/internal/scan/domain/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToDocument_ExcludesStoreManagedFields(t *testing.T) {
	record := &model.ScanRecord{
		ID:              "should-not-persist",
		Code:            "012345678905",
		Name:            "Sparkle Soda 330ml",
		Manufacturer:    "FizzCraft Beverages",
		Category:        "Beverages",
		MfgDate:         "2025-02-01T12:00:00Z",
		ExpDate:         "2026-05-01T12:00:00Z",
		Rating:          61,
		FootprintKgCO2e: 1.07,
		ScannedAt:       1756400000000,
	}

	doc := toDocument(record)

	assert.NotContains(t, doc, "_id")
	assert.NotContains(t, doc, "_created_at")
	assert.Equal(t, "012345678905", doc["code"])
	assert.Equal(t, 61, doc["rating"])
	assert.Equal(t, 1.07, doc["footprintKgCO2e"])
	assert.Equal(t, int64(1756400000000), doc["scannedAt"])
}

func TestFromDocument_RoundTrip(t *testing.T) {
	record := &model.ScanRecord{
		Code:            "9780306406157",
		Name:            "Sustainable Living Guide",
		Manufacturer:    "EcoPrint Publishers",
		Category:        "Books & Media",
		MfgDate:         "2025-03-10T08:30:00Z",
		ExpDate:         "2026-09-10T08:30:00Z",
		Rating:          88,
		FootprintKgCO2e: 3.5,
		ScannedAt:       1756400000001,
	}

	doc := toDocument(record)
	doc["_id"] = "65f0c0ffee0ddf00dabc1234"

	got := fromDocument(doc)
	want := *record
	want.ID = "65f0c0ffee0ddf00dabc1234"
	assert.Equal(t, &want, got)
}

func TestFromDocument_BSONNumericWidths(t *testing.T) {
	// Numbers decoded from the store arrive as int32/int64/float64.
	doc := bson.M{
		"_id":             "abc",
		"code":            "0000000000000",
		"rating":          int32(72),
		"footprintKgCO2e": float64(2.41),
		"scannedAt":       int64(1756400000002),
	}

	got := fromDocument(doc)
	assert.Equal(t, 72, got.Rating)
	assert.Equal(t, 2.41, got.FootprintKgCO2e)
	assert.Equal(t, int64(1756400000002), got.ScannedAt)
}

func TestFromDocument_IgnoresUnknownFields(t *testing.T) {
	doc := bson.M{
		"_id":         "abc",
		"code":        "0000000000000",
		"_created_at": "2025-08-29T00:00:00Z",
		"extraneous":  true,
	}

	got := fromDocument(doc)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "0000000000000", got.Code)
}
