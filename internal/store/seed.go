package store

import "github.com/mamadbah2/agroboard/internal/domain/models"

// Demo dataset shown before the first successful remote pull. Mirrors the
// dashboard's bundled sample ranch data.

func seedFarms() []models.Farm {
	return []models.Farm{
		{
			ID:                 "f1",
			Name:               "Fazenda Vale do Boi",
			Type:               models.FarmOwned,
			TotalArea:          1200,
			ProductiveArea:     1000,
			PaddockCount:       45,
			LivestockHeadCount: 1500,
			Revenue:            5800000,
			Expenses:           3200000,
			Location:           "Barretos, SP",
			MainCrops:          []string{"Pasture", "Corn"},
			LivestockActive:    true,
		},
		{
			ID:                 "f2",
			Name:               "Estancia Pantaneira",
			Type:               models.FarmLeased,
			TotalArea:          2500,
			ProductiveArea:     2200,
			PaddockCount:       120,
			LivestockHeadCount: 3200,
			Revenue:            12400000,
			Expenses:           8500000,
			Location:           "Aquidauana, MS",
			MainCrops:          []string{"Pasture", "Soybean"},
			LivestockActive:    true,
		},
	}
}

func seedInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "i1", Name: "Mineral Salt 80", Category: models.CategorySupply, Quantity: 450, Unit: "bags", MinLevel: 100},
		{ID: "i2", Name: "Wet-Season Protein Mix", Category: models.CategorySupply, Quantity: 1200, Unit: "bags", MinLevel: 200},
		{ID: "i3", Name: "FMD Vaccine", Category: models.CategoryVaccine, Quantity: 5000, Unit: "doses", MinLevel: 1000},
		{ID: "i4", Name: "Ivermectin 3.5%", Category: models.CategoryMedicine, Quantity: 25, Unit: "vials", MinLevel: 5},
		{ID: "i5", Name: "Soybean Seed M-Soy", Category: models.CategorySeed, Quantity: 1500, Unit: "bags", MinLevel: 100},
	}
}

func seedMachines() []models.Machine {
	return []models.Machine{
		{ID: "m1", Name: "Tractor MF 4292", Type: "Tractor", Status: models.MachineOperational, HoursWorked: 1250, FuelLevel: 65},
		{ID: "m2", Name: "Casale Mixer Wagon", Type: "Feeding", Status: models.MachineOperational, HoursWorked: 450, FuelLevel: 100},
		{ID: "m3", Name: "Toyota Hilux Pickup", Type: "Patrol", Status: models.MachineOperational, HoursWorked: 82000, FuelLevel: 45},
	}
}

func seedHerdLots() []models.HerdLot {
	return []models.HerdLot{
		{ID: "l1", Name: "Nelore Lot 01", Category: models.HerdFattening, Breed: "Nelore", HeadCount: 250, AverageWeight: 480, ExpectedDailyGain: 0.950, FarmID: "f1", LastWeighing: "2025-01-10"},
		{ID: "l2", Name: "Angus Heifer Calves A2", Category: models.HerdBreedingRearing, Breed: "Angus", HeadCount: 180, AverageWeight: 190, ExpectedDailyGain: 0.750, FarmID: "f1", LastWeighing: "2025-02-15"},
		{ID: "l3", Name: "Growing Heifers 2024", Category: models.HerdGrowing, Breed: "Nelore", HeadCount: 400, AverageWeight: 320, ExpectedDailyGain: 0.600, FarmID: "f2", LastWeighing: "2025-02-01"},
	}
}

func seedCollaborators() []models.Collaborator {
	return []models.Collaborator{
		{ID: "c1", Name: "Joao Silva", Role: "Tractor Operator", FarmName: "Fazenda Vale do Boi", Salary: 3500, Status: models.CollaboratorActive, Avatar: "https://i.pravatar.cc/150?u=joao"},
		{ID: "c2", Name: "Maria Santos", Role: "Veterinarian", FarmName: "Estancia Pantaneira", Salary: 8200, Status: models.CollaboratorActive, Avatar: "https://i.pravatar.cc/150?u=maria"},
	}
}
