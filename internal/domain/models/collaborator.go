package models

// CollaboratorStatus enumerates staff availability states.
type CollaboratorStatus string

const (
	CollaboratorActive   CollaboratorStatus = "active"
	CollaboratorOnLeave  CollaboratorStatus = "on_leave"
	CollaboratorVacation CollaboratorStatus = "vacation"
)

// Collaborator is a field worker. FarmName references the assigned farm by
// name, not id; payment postings resolve it against the farm list and report
// an unresolved reference when no farm matches.
type Collaborator struct {
	ID       string             `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Role     string             `bson:"role" json:"role"`
	FarmName string             `bson:"farm_name" json:"farm_name"`
	Salary   float64            `bson:"salary" json:"salary"`
	Status   CollaboratorStatus `bson:"status" json:"status"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

// PaymentKind enumerates the staff payment types, all of which post to the
// assigned farm's expenses.
type PaymentKind string

const (
	PaymentSalary  PaymentKind = "salary"
	PaymentDayRate PaymentKind = "day_rate"
	PaymentPPE     PaymentKind = "ppe"
)
