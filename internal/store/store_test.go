package store

import (
	"testing"

	"github.com/mamadbah2/agroboard/internal/domain/models"
)

func TestUpsertFarmAssignsIDAndPrepends(t *testing.T) {
	s := New()
	s.UpsertFarm(models.Farm{Name: "First"})
	second := s.UpsertFarm(models.Farm{Name: "Second"})

	if second.ID == "" {
		t.Error("expected generated id")
	}

	farms := s.ListFarms()
	if len(farms) != 2 {
		t.Fatalf("len = %d, want 2", len(farms))
	}
	if farms[0].Name != "Second" {
		t.Errorf("newest farm should be first, got %q", farms[0].Name)
	}
}

func TestUpsertFarmPreservesAccumulatorsOnEdit(t *testing.T) {
	s := New()
	farm := s.UpsertFarm(models.Farm{Name: "Fazenda Vale do Boi", ProductiveArea: 1000})
	s.AddFarmRevenue(farm.ID, 1000)
	s.AddFarmExpenses(farm.ID, 400)

	updated := s.UpsertFarm(models.Farm{ID: farm.ID, Name: "Fazenda Vale do Boi", ProductiveArea: 1200})

	if updated.Revenue != 1000 {
		t.Errorf("revenue = %v, want 1000 preserved across edit", updated.Revenue)
	}
	if updated.Expenses != 400 {
		t.Errorf("expenses = %v, want 400 preserved across edit", updated.Expenses)
	}
	if updated.ProductiveArea != 1200 {
		t.Errorf("productive area = %v, want 1200", updated.ProductiveArea)
	}
}

func TestDeleteFarm(t *testing.T) {
	s := New()
	farm := s.UpsertFarm(models.Farm{Name: "Gone"})

	if !s.DeleteFarm(farm.ID) {
		t.Error("expected delete to succeed")
	}
	if s.DeleteFarm(farm.ID) {
		t.Error("expected second delete to fail")
	}
	if len(s.ListFarms()) != 0 {
		t.Error("farm list should be empty")
	}
}

func TestFindFarmByNameIsExact(t *testing.T) {
	s := New()
	s.UpsertFarm(models.Farm{Name: "Estancia Pantaneira"})

	if _, ok := s.FindFarmByName("Estancia Pantaneira"); !ok {
		t.Error("expected exact name to resolve")
	}
	if _, ok := s.FindFarmByName("estancia pantaneira"); ok {
		t.Error("name resolution must be case sensitive")
	}
	if _, ok := s.FindFarmByName("Estancia"); ok {
		t.Error("partial name must not resolve")
	}
}

func TestFindItemByProduct(t *testing.T) {
	s := New()
	s.UpsertItem(models.InventoryItem{ID: "i1", Name: "Corn Grain", Quantity: 10})

	tests := []struct {
		label string
		want  bool
	}{
		{"corn", true},
		{"CORN GRAIN", true},
		{"  grain ", true},
		{"soy", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		if _, ok := s.FindItemByProduct(tt.label); ok != tt.want {
			t.Errorf("FindItemByProduct(%q) = %v, want %v", tt.label, ok, tt.want)
		}
	}
}

func TestAdjustItemQuantityFloorsAtZero(t *testing.T) {
	s := New()
	s.UpsertItem(models.InventoryItem{ID: "i1", Name: "Diesel", Quantity: 30})

	item, ok := s.AdjustItemQuantity("i1", -50)
	if !ok {
		t.Fatal("expected item to exist")
	}
	if item.Quantity != 0 {
		t.Errorf("quantity = %v, want 0", item.Quantity)
	}

	if _, ok := s.AdjustItemQuantity("missing", -1); ok {
		t.Error("expected unknown item to fail")
	}
}

func TestSetMachineUsage(t *testing.T) {
	s := New()
	s.UpsertMachine(models.Machine{ID: "m1", Name: "Tractor", HoursWorked: 100, FuelLevel: 80})

	machine, ok := s.SetMachineUsage("m1", 108, 55)
	if !ok {
		t.Fatal("expected machine to exist")
	}
	if machine.HoursWorked != 108 || machine.FuelLevel != 55 {
		t.Errorf("machine = %+v, want hours 108 fuel 55", machine)
	}
}

func TestReplaceCollectionsSwapWholesale(t *testing.T) {
	s := NewSeeded()
	if len(s.ListFarms()) == 0 {
		t.Fatal("seed should populate farms")
	}

	s.ReplaceFarms([]models.Farm{{ID: "r1", Name: "Remote Farm"}})

	farms := s.ListFarms()
	if len(farms) != 1 || farms[0].ID != "r1" {
		t.Errorf("farms = %+v, want only remote farm", farms)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.UpsertFarm(models.Farm{ID: "f1", Name: "Original"})

	farms := s.ListFarms()
	farms[0].Name = "Mutated"

	stored, _ := s.GetFarm("f1")
	if stored.Name != "Original" {
		t.Error("list must return a copy, not the backing slice")
	}
}
