package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	"github.com/mamadbah2/agroboard/internal/store"
)

type recordingJournal struct {
	entries []models.LedgerEntry
	err     error
}

func (j *recordingJournal) AppendLedgerEntry(_ context.Context, entry models.LedgerEntry) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, entry)
	return nil
}

func newTestStore() *store.Store {
	s := store.New()
	s.UpsertFarm(models.Farm{ID: "f1", Name: "Fazenda Vale do Boi"})
	s.UpsertItem(models.InventoryItem{ID: "i1", Name: "Corn Grain", Category: models.CategoryGrain, Quantity: 30, Unit: "t"})
	s.UpsertItem(models.InventoryItem{ID: "i2", Name: "Soybean Seed", Category: models.CategorySeed, Quantity: 100, Unit: "bag"})
	s.UpsertCollaborator(models.Collaborator{ID: "c1", Name: "Joao Silva", FarmName: "Fazenda Vale do Boi", Salary: 3500})
	s.UpsertCollaborator(models.Collaborator{ID: "c2", Name: "Maria Santos", FarmName: "Fazenda Alpha", Salary: 2800})
	s.UpsertMachine(models.Machine{ID: "m1", Name: "John Deere 6110J", Status: models.MachineOperational})
	return s
}

func TestRecordSaleAddsRevenueAndDecrementsStock(t *testing.T) {
	st := newTestStore()
	journal := &recordingJournal{}
	svc := NewService(st, journal, nil)

	result, err := svc.RecordSale(context.Background(), models.SaleRequest{
		FarmID:    "f1",
		Product:   "corn",
		UnitPrice: "50",
		Quantity:  "10",
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if result.Farm.Revenue != 500 {
		t.Errorf("revenue = %v, want 500", result.Farm.Revenue)
	}
	if result.Item == nil {
		t.Fatal("expected stock decrement")
	}
	if result.Item.Quantity != 20 {
		t.Errorf("item quantity = %v, want 20", result.Item.Quantity)
	}
	if len(journal.entries) != 1 || journal.entries[0].Kind != models.EventSale {
		t.Errorf("journal entries = %+v, want one sale entry", journal.entries)
	}
}

func TestRecordSaleFloorsStockAtZero(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	result, err := svc.RecordSale(context.Background(), models.SaleRequest{
		FarmID:    "f1",
		Product:   "corn",
		UnitPrice: "50",
		Quantity:  "50",
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if result.Farm.Revenue != 2500 {
		t.Errorf("revenue = %v, want 2500", result.Farm.Revenue)
	}
	if result.Item == nil || result.Item.Quantity != 0 {
		t.Errorf("item = %+v, want quantity floored at 0", result.Item)
	}
}

func TestRecordSaleWithoutMatchingItemSkipsStock(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	result, err := svc.RecordSale(context.Background(), models.SaleRequest{
		FarmID:    "f1",
		Product:   "fat cattle",
		UnitPrice: "310",
		Quantity:  "40",
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if result.Item != nil {
		t.Errorf("item = %+v, want no stock decrement", result.Item)
	}
	if result.Farm.Revenue != 12400 {
		t.Errorf("revenue = %v, want 12400", result.Farm.Revenue)
	}
}

func TestRecordSaleExplicitItemOverridesNameMatch(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	result, err := svc.RecordSale(context.Background(), models.SaleRequest{
		FarmID:          "f1",
		Product:         "corn",
		InventoryItemID: "i2",
		UnitPrice:       "120",
		Quantity:        "5",
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if result.Item == nil || result.Item.ID != "i2" {
		t.Fatalf("item = %+v, want explicit item i2", result.Item)
	}
	if result.Item.Quantity != 95 {
		t.Errorf("item quantity = %v, want 95", result.Item.Quantity)
	}
}

func TestRecordSaleUnknownExplicitItemRejected(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	_, err := svc.RecordSale(context.Background(), models.SaleRequest{
		FarmID:          "f1",
		Product:         "corn",
		InventoryItemID: "missing",
		UnitPrice:       "50",
		Quantity:        "10",
	})

	var refErr *UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("err = %v, want UnresolvedReferenceError", err)
	}
	if refErr.Kind != "inventory_item" {
		t.Errorf("kind = %q, want inventory_item", refErr.Kind)
	}

	// Nothing moved.
	farm, _ := st.GetFarm("f1")
	if farm.Revenue != 0 {
		t.Errorf("revenue = %v, want 0 after rejected sale", farm.Revenue)
	}
	item, _ := st.GetItem("i1")
	if item.Quantity != 30 {
		t.Errorf("quantity = %v, want 30 after rejected sale", item.Quantity)
	}
}

func TestRecordSaleRejectsBadAmounts(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice string
		quantity  string
		field     string
	}{
		{"blank price", "", "10", "unit_price"},
		{"non numeric price", "abc", "10", "unit_price"},
		{"negative price", "-5", "10", "unit_price"},
		{"blank quantity", "50", "", "quantity"},
		{"zero quantity", "50", "0", "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore()
			svc := NewService(st, nil, nil)

			_, err := svc.RecordSale(context.Background(), models.SaleRequest{
				FarmID:    "f1",
				Product:   "corn",
				UnitPrice: tt.unitPrice,
				Quantity:  tt.quantity,
			})

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("field = %q, want %q", vErr.Field, tt.field)
			}

			farm, _ := st.GetFarm("f1")
			if farm.Revenue != 0 {
				t.Errorf("revenue = %v, want 0", farm.Revenue)
			}
		})
	}
}

func TestRecordExpenseAccumulates(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	if _, err := svc.RecordExpense(context.Background(), models.ExpenseRequest{FarmID: "f1", Category: "feed", Amount: "300"}); err != nil {
		t.Fatalf("first expense: %v", err)
	}
	farm, err := svc.RecordExpense(context.Background(), models.ExpenseRequest{FarmID: "f1", Category: "fuel", Amount: "200"})
	if err != nil {
		t.Fatalf("second expense: %v", err)
	}

	if farm.Expenses != 500 {
		t.Errorf("expenses = %v, want 500", farm.Expenses)
	}
	if farm.Balance() != -500 {
		t.Errorf("balance = %v, want -500", farm.Balance())
	}
}

func TestRecordExpenseUnknownFarm(t *testing.T) {
	svc := NewService(newTestStore(), nil, nil)

	_, err := svc.RecordExpense(context.Background(), models.ExpenseRequest{FarmID: "missing", Amount: "10"})

	var refErr *UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("err = %v, want UnresolvedReferenceError", err)
	}
}

func TestRecordUsageFloorsAtZeroAndLeavesFarmAlone(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	item, err := svc.RecordUsage(context.Background(), models.UsageRequest{ItemID: "i1", FarmID: "f1", Quantity: "50"})
	if err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}

	if item.Quantity != 0 {
		t.Errorf("quantity = %v, want 0", item.Quantity)
	}

	farm, _ := st.GetFarm("f1")
	if farm.Revenue != 0 || farm.Expenses != 0 {
		t.Errorf("farm accumulators moved on usage: %+v", farm)
	}
}

func TestRecordCollaboratorPayment(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	farm, err := svc.RecordCollaboratorPayment(context.Background(), models.PaymentRequest{
		CollaboratorID: "c1",
		Kind:           models.PaymentSalary,
		Amount:         "3500",
	})
	if err != nil {
		t.Fatalf("RecordCollaboratorPayment: %v", err)
	}

	if farm.Expenses != 3500 {
		t.Errorf("expenses = %v, want 3500", farm.Expenses)
	}
}

func TestRecordCollaboratorPaymentUnresolvedFarmName(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	// c2 is assigned to "Fazenda Alpha", which no farm carries.
	_, err := svc.RecordCollaboratorPayment(context.Background(), models.PaymentRequest{
		CollaboratorID: "c2",
		Kind:           models.PaymentDayRate,
		Amount:         "150",
	})

	var refErr *UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("err = %v, want UnresolvedReferenceError", err)
	}
	if refErr.Kind != "farm" || refErr.Ref != "Fazenda Alpha" {
		t.Errorf("got kind=%q ref=%q, want farm/Fazenda Alpha", refErr.Kind, refErr.Ref)
	}

	farm, _ := st.GetFarm("f1")
	if farm.Expenses != 0 {
		t.Errorf("expenses = %v, want 0 after rejected payment", farm.Expenses)
	}
}

func TestRecordCollaboratorPaymentUnknownKind(t *testing.T) {
	svc := NewService(newTestStore(), nil, nil)

	_, err := svc.RecordCollaboratorPayment(context.Background(), models.PaymentRequest{
		CollaboratorID: "c1",
		Kind:           "bonus",
		Amount:         "100",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if vErr.Field != "kind" {
		t.Errorf("field = %q, want kind", vErr.Field)
	}
}

func TestRecordMachineExpense(t *testing.T) {
	st := newTestStore()
	svc := NewService(st, nil, nil)

	farm, err := svc.RecordMachineExpense(context.Background(), models.MachineExpenseRequest{
		MachineID: "m1",
		FarmID:    "f1",
		Category:  "maintenance",
		Amount:    "1200",
	})
	if err != nil {
		t.Fatalf("RecordMachineExpense: %v", err)
	}

	if farm.Expenses != 1200 {
		t.Errorf("expenses = %v, want 1200", farm.Expenses)
	}
}

func TestRecordMachineExpenseUnknownMachine(t *testing.T) {
	svc := NewService(newTestStore(), nil, nil)

	_, err := svc.RecordMachineExpense(context.Background(), models.MachineExpenseRequest{
		MachineID: "missing",
		FarmID:    "f1",
		Amount:    "100",
	})

	var refErr *UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("err = %v, want UnresolvedReferenceError", err)
	}
	if refErr.Kind != "machine" {
		t.Errorf("kind = %q, want machine", refErr.Kind)
	}
}

func TestJournalFailureDoesNotFailEvent(t *testing.T) {
	st := newTestStore()
	journal := &recordingJournal{err: errors.New("sheet unreachable")}
	svc := NewService(st, journal, nil)

	farm, err := svc.RecordExpense(context.Background(), models.ExpenseRequest{FarmID: "f1", Category: "feed", Amount: "100"})
	if err != nil {
		t.Fatalf("RecordExpense: %v", err)
	}
	if farm.Expenses != 100 {
		t.Errorf("expenses = %v, want 100", farm.Expenses)
	}
}
