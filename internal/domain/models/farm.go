package models

// FarmType describes the ownership kind of a property.
type FarmType string

const (
	FarmOwned  FarmType = "owned"
	FarmLeased FarmType = "leased"
)

// Farm is a property and cost center. Revenue and Expenses are cumulative
// lifetime totals: ledger events only ever add to them.
type Farm struct {
	ID                 string   `bson:"_id" json:"id"`
	Name               string   `bson:"name" json:"name"`
	Type               FarmType `bson:"type" json:"type"`
	TotalArea          float64  `bson:"total_area" json:"total_area"`
	ProductiveArea     float64  `bson:"productive_area" json:"productive_area"`
	PaddockCount       int      `bson:"paddock_count" json:"paddock_count"`
	LivestockHeadCount int      `bson:"livestock_head_count" json:"livestock_head_count"`
	Revenue            float64  `bson:"revenue" json:"revenue"`
	Expenses           float64  `bson:"expenses" json:"expenses"`
	Location           string   `bson:"location" json:"location"`
	MainCrops          []string `bson:"main_crops" json:"main_crops"`
	LivestockActive    bool     `bson:"livestock_active" json:"livestock_active"`
}

// Balance is the farm's lifetime result.
func (f Farm) Balance() float64 {
	return f.Revenue - f.Expenses
}
