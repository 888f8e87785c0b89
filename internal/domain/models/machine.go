package models

// MachineStatus enumerates fleet operating states.
type MachineStatus string

const (
	MachineOperational MachineStatus = "operational"
	MachineMaintenance MachineStatus = "maintenance"
	MachineStopped     MachineStatus = "stopped"
)

// Machine is a fleet asset. HoursWorked is cumulative; FuelLevel is a
// percentage. Expenses on a machine are always posted to a farm, never to
// the machine itself.
type Machine struct {
	ID          string        `bson:"_id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Type        string        `bson:"type" json:"type"`
	Status      MachineStatus `bson:"status" json:"status"`
	HoursWorked float64       `bson:"hours_worked" json:"hours_worked"`
	FuelLevel   float64       `bson:"fuel_level" json:"fuel_level"`
}

// UsageChecklist is the fixed inspection list recorded with every machine
// usage report.
type UsageChecklist struct {
	Tires       bool `json:"tires"`
	Oil         bool `json:"oil"`
	Water       bool `json:"water"`
	Cleanliness bool `json:"cleanliness"`
	Electrical  bool `json:"electrical"`
	Implement   bool `json:"implement"`
}
