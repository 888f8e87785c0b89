package models

import "time"

// EventKind enumerates the ledger event types.
type EventKind string

const (
	EventSale                EventKind = "sale"
	EventExpense             EventKind = "expense"
	EventUsage               EventKind = "usage"
	EventCollaboratorPayment EventKind = "collaborator_payment"
	EventMachineExpense      EventKind = "machine_expense"
)

// LedgerEntry is the journal row written after a ledger event is applied.
// It is a record of what happened, not part of the mutation itself.
type LedgerEntry struct {
	Date     time.Time
	Kind     EventKind
	FarmID   string
	FarmName string
	Label    string
	Amount   float64
	Quantity float64
}

// SaleRequest posts revenue to a farm and optionally decrements stock.
// Amount fields arrive as free text from the form and are parsed by the
// ledger service; the item id, when set, overrides the name match.
type SaleRequest struct {
	FarmID          string `json:"farm_id"`
	Product         string `json:"product"`
	InventoryItemID string `json:"inventory_item_id"`
	UnitPrice       string `json:"unit_price"`
	Quantity        string `json:"quantity"`
}

// ExpenseRequest posts an expense to a farm.
type ExpenseRequest struct {
	FarmID   string `json:"farm_id"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// UsageRequest decrements an inventory item. FarmID is informational only:
// no farm-side effect is recorded for a stock usage.
type UsageRequest struct {
	ItemID   string `json:"item_id"`
	FarmID   string `json:"farm_id"`
	Quantity string `json:"quantity"`
}

// PaymentRequest posts a staff payment to the collaborator's assigned farm.
type PaymentRequest struct {
	CollaboratorID string      `json:"collaborator_id"`
	Kind           PaymentKind `json:"kind"`
	Amount         string      `json:"amount"`
}

// MachineExpenseRequest posts a machine expense to an explicitly selected
// farm, independent of any machine assignment.
type MachineExpenseRequest struct {
	MachineID string `json:"machine_id"`
	FarmID    string `json:"farm_id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
}

// SaleResult carries the entities a sale touched. Item is nil when no stock
// decrement happened.
type SaleResult struct {
	Farm Farm           `json:"farm"`
	Item *InventoryItem `json:"item,omitempty"`
}
