package fooddata

const (
	SourceUSDA          = "usda"
	SourceOpenFoodFacts = "off"
)

// FoodResult is the merged search/barcode result shape. Nutrients are always
// per 100 g regardless of which upstream supplied them.
type FoodResult struct {
	FdcID           int64   `json:"fdc_id,omitempty"`
	Name            string  `json:"name"`
	Source          string  `json:"source"`
	Barcode         string  `json:"barcode,omitempty"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
}
