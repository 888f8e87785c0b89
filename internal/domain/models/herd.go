package models

// HerdCategory enumerates herd lot production stages.
type HerdCategory string

const (
	HerdBreedingRearing HerdCategory = "breeding_rearing"
	HerdGrowing         HerdCategory = "growing"
	HerdFattening       HerdCategory = "fattening"
	HerdBulls           HerdCategory = "bulls"
	HerdDams            HerdCategory = "dams"
)

// HerdLot groups animals managed together on one farm. Read-mostly: no
// ledger event mutates a lot.
type HerdLot struct {
	ID                string       `bson:"_id" json:"id"`
	Name              string       `bson:"name" json:"name"`
	Category          HerdCategory `bson:"category" json:"category"`
	Breed             string       `bson:"breed" json:"breed"`
	HeadCount         int          `bson:"head_count" json:"head_count"`
	AverageWeight     float64      `bson:"average_weight" json:"average_weight"`
	ExpectedDailyGain float64      `bson:"expected_daily_gain" json:"expected_daily_gain"`
	FarmID            string       `bson:"farm_id" json:"farm_id"`
	LastWeighing      string       `bson:"last_weighing" json:"last_weighing"`
}
