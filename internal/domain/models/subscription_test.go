package models

import "testing"

func TestPlanTierAllows(t *testing.T) {
	tests := []struct {
		plan PlanTier
		min  PlanTier
		want bool
	}{
		{PlanBasic, PlanBasic, true},
		{PlanBasic, PlanProfessional, false},
		{PlanBasic, PlanPremium, false},
		{PlanProfessional, PlanProfessional, true},
		{PlanProfessional, PlanPremium, false},
		{PlanPremium, PlanProfessional, true},
		{PlanPremium, PlanPremium, true},
		{"unknown", PlanBasic, false},
	}

	for _, tt := range tests {
		if got := tt.plan.Allows(tt.min); got != tt.want {
			t.Errorf("%s.Allows(%s) = %v, want %v", tt.plan, tt.min, got, tt.want)
		}
	}
}

func TestItemStatus(t *testing.T) {
	tests := []struct {
		name string
		item InventoryItem
		want ItemStatus
	}{
		{"above minimum", InventoryItem{Quantity: 10, MinLevel: 5}, ItemNormal},
		{"at minimum", InventoryItem{Quantity: 5, MinLevel: 5}, ItemCritical},
		{"below minimum", InventoryItem{Quantity: 2, MinLevel: 5}, ItemCritical},
		{"zero stock", InventoryItem{Quantity: 0, MinLevel: 0}, ItemCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFarmBalance(t *testing.T) {
	farm := Farm{Revenue: 1500, Expenses: 600}
	if got := farm.Balance(); got != 900 {
		t.Errorf("Balance() = %v, want 900", got)
	}
}
