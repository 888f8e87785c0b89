package models

// ItemCategory enumerates warehouse item categories.
type ItemCategory string

const (
	CategorySupply   ItemCategory = "supply"
	CategoryMedicine ItemCategory = "medicine"
	CategoryVaccine  ItemCategory = "vaccine"
	CategoryFuel     ItemCategory = "fuel"
	CategoryInput    ItemCategory = "input"
	CategoryGrain    ItemCategory = "grain"
	CategorySeed     ItemCategory = "seed"
)

// ItemStatus is derived from quantity vs. the minimum threshold; it is never
// stored.
type ItemStatus string

const (
	ItemNormal   ItemStatus = "normal"
	ItemCritical ItemStatus = "critical"
)

// InventoryItem is a stocked product. Quantity never goes below zero: every
// decrement is floored at zero.
type InventoryItem struct {
	ID       string       `bson:"_id" json:"id"`
	Name     string       `bson:"name" json:"name"`
	Category ItemCategory `bson:"category" json:"category"`
	Quantity float64      `bson:"quantity" json:"quantity"`
	Unit     string       `bson:"unit" json:"unit"`
	MinLevel float64      `bson:"min_level" json:"min_level"`
}

// Status reports whether the stock level is at or under the minimum.
func (i InventoryItem) Status() ItemStatus {
	if i.Quantity <= i.MinLevel {
		return ItemCritical
	}
	return ItemNormal
}
