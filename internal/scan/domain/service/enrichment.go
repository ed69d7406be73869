package service

import "ecoshopper-backend/internal/scan/domain/model"

// enrichmentTable is a fixed barcode -> base product mapping for the demo.
// Real data would come from a registry such as GS1 or OpenFoodFacts.
var enrichmentTable = map[string]model.BaseProduct{
	"8901063010805": {Name: "Whole Wheat Bread", Manufacturer: "Healthy Bakes Co.", Category: "Food & Beverages"},
	"012345678905":  {Name: "Sparkle Soda 330ml", Manufacturer: "FizzCraft Beverages", Category: "Beverages"},
	"9780306406157": {Name: "Sustainable Living Guide", Manufacturer: "EcoPrint Publishers", Category: "Books & Media"},
	"4901234567894": {Name: "Bamboo Toothbrush 2-Pack", Manufacturer: "GreenSmile", Category: "Personal Care"},
	"0012345678905": {Name: "Oak Side Table", Manufacturer: "HomeCraft Furnishings", Category: "Furniture"},
}

// fallbackProduct is returned for barcodes not present in the table.
var fallbackProduct = model.BaseProduct{
	Name:         "Product",
	Manufacturer: "Unknown Manufacturer",
	Category:     "General Merchandise",
}

// Lookup resolves a barcode to its base product fields. Unknown codes resolve
// to generic placeholder fields. The code is matched exactly; callers are
// responsible for trimming.
func Lookup(code string) model.BaseProduct {
	if base, ok := enrichmentTable[code]; ok {
		return base
	}
	return fallbackProduct
}
