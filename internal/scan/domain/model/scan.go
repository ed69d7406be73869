package model

// ScanRecord is the persisted unit of data produced by one scan. Records are
// created once and never updated or deleted.
type ScanRecord struct {
	ID              string  `bson:"_id,omitempty" json:"id"`
	Code            string  `bson:"code" json:"code"`
	Name            string  `bson:"name" json:"name"`
	Manufacturer    string  `bson:"manufacturer" json:"manufacturer"`
	Category        string  `bson:"category" json:"category"`
	MfgDate         string  `bson:"mfgDate" json:"mfgDate"`
	ExpDate         string  `bson:"expDate" json:"expDate"`
	Rating          int     `bson:"rating" json:"rating"`
	FootprintKgCO2e float64 `bson:"footprintKgCO2e" json:"footprintKgCO2e"`
	ScannedAt       int64   `bson:"scannedAt" json:"scannedAt"`
}

// BaseProduct holds the static enrichment fields looked up by barcode.
type BaseProduct struct {
	Name         string
	Manufacturer string
	Category     string
}
