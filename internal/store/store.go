package store

import (
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mamadbah2/agroboard/internal/domain/models"
)

// Store owns the in-memory entity collections. It is the single shared
// snapshot every screen reads from; one instance is constructed at the
// application root and injected everywhere. It promises nothing beyond
// process lifetime; durable storage is the sync service's concern.
type Store struct {
	mu            sync.RWMutex
	farms         []models.Farm
	inventory     []models.InventoryItem
	machines      []models.Machine
	herdLots      []models.HerdLot
	collaborators []models.Collaborator
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store populated with the demo dataset, mirroring the
// state the dashboard shows before its first remote fetch.
func NewSeeded() *Store {
	s := New()
	s.ReplaceFarms(seedFarms())
	s.ReplaceInventory(seedInventory())
	s.ReplaceMachines(seedMachines())
	s.ReplaceHerdLots(seedHerdLots())
	s.ReplaceCollaborators(seedCollaborators())
	return s
}

// ---- farms ----

// ListFarms returns a copy of the farm collection.
func (s *Store) ListFarms() []models.Farm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Farm, len(s.farms))
	copy(out, s.farms)
	return out
}

// GetFarm looks a farm up by id.
func (s *Store) GetFarm(id string) (models.Farm, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.farms {
		if f.ID == id {
			return f, true
		}
	}
	return models.Farm{}, false
}

// FindFarmByName resolves a farm by exact name. Collaborator records carry
// the assigned farm by name rather than id, so payment postings go through
// here.
func (s *Store) FindFarmByName(name string) (models.Farm, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.farms {
		if f.Name == name {
			return f, true
		}
	}
	return models.Farm{}, false
}

// UpsertFarm inserts or replaces a farm. The registration form is the only
// farm edit path and it carries no financial fields, so an update always
// carries forward the stored revenue, expenses and head count unchanged.
// Ledger accumulators are mutated exclusively through AddFarmRevenue and
// AddFarmExpenses.
func (s *Store) UpsertFarm(farm models.Farm) models.Farm {
	s.mu.Lock()
	defer s.mu.Unlock()

	if farm.ID == "" {
		farm.ID = uuid.NewString()
	}
	for i, existing := range s.farms {
		if existing.ID == farm.ID {
			farm.Revenue = existing.Revenue
			farm.Expenses = existing.Expenses
			farm.LivestockHeadCount = existing.LivestockHeadCount
			s.farms[i] = farm
			return farm
		}
	}
	s.farms = append([]models.Farm{farm}, s.farms...)
	return farm
}

// DeleteFarm removes a farm. Dependent records are not cascaded; dangling
// references surface later as unresolved-reference errors.
func (s *Store) DeleteFarm(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.farms {
		if f.ID == id {
			s.farms = append(s.farms[:i], s.farms[i+1:]...)
			return true
		}
	}
	return false
}

// AddFarmRevenue adds amount to the farm's cumulative revenue.
func (s *Store) AddFarmRevenue(id string, amount float64) (models.Farm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.farms {
		if s.farms[i].ID == id {
			s.farms[i].Revenue += amount
			return s.farms[i], true
		}
	}
	return models.Farm{}, false
}

// AddFarmExpenses adds amount to the farm's cumulative expenses.
func (s *Store) AddFarmExpenses(id string, amount float64) (models.Farm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.farms {
		if s.farms[i].ID == id {
			s.farms[i].Expenses += amount
			return s.farms[i], true
		}
	}
	return models.Farm{}, false
}

// ReplaceFarms swaps the whole collection. Used by the sync pull.
func (s *Store) ReplaceFarms(farms []models.Farm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farms = farms
}

// ---- inventory ----

func (s *Store) ListInventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

func (s *Store) GetItem(id string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.inventory {
		if item.ID == id {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// FindItemByProduct matches a sold product label against item names with a
// case-insensitive substring test. Lenient on purpose: sales of non-stocked
// production (pasture-fed cattle) must not require inventory, but a
// differently-named item can mismatch. First match wins.
func (s *Store) FindItemByProduct(label string) (models.InventoryItem, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return models.InventoryItem{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.inventory {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

func (s *Store) UpsertItem(item models.InventoryItem) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	for i, existing := range s.inventory {
		if existing.ID == item.ID {
			s.inventory[i] = item
			return item
		}
	}
	s.inventory = append([]models.InventoryItem{item}, s.inventory...)
	return item
}

func (s *Store) DeleteItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.inventory {
		if item.ID == id {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// AdjustItemQuantity applies a quantity delta, flooring the result at zero.
func (s *Store) AdjustItemQuantity(id string, delta float64) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory[i].Quantity = math.Max(0, s.inventory[i].Quantity+delta)
			return s.inventory[i], true
		}
	}
	return models.InventoryItem{}, false
}

func (s *Store) ReplaceInventory(items []models.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = items
}

// ---- machines ----

func (s *Store) ListMachines() []models.Machine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Machine, len(s.machines))
	copy(out, s.machines)
	return out
}

func (s *Store) GetMachine(id string) (models.Machine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.machines {
		if m.ID == id {
			return m, true
		}
	}
	return models.Machine{}, false
}

func (s *Store) UpsertMachine(machine models.Machine) models.Machine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if machine.ID == "" {
		machine.ID = uuid.NewString()
	}
	for i, existing := range s.machines {
		if existing.ID == machine.ID {
			s.machines[i] = machine
			return machine
		}
	}
	s.machines = append([]models.Machine{machine}, s.machines...)
	return machine
}

func (s *Store) DeleteMachine(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.machines {
		if m.ID == id {
			s.machines = append(s.machines[:i], s.machines[i+1:]...)
			return true
		}
	}
	return false
}

// SetMachineUsage records the closing hours and fuel level from a usage
// report.
func (s *Store) SetMachineUsage(id string, hours, fuel float64) (models.Machine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.machines {
		if s.machines[i].ID == id {
			s.machines[i].HoursWorked = hours
			s.machines[i].FuelLevel = fuel
			return s.machines[i], true
		}
	}
	return models.Machine{}, false
}

func (s *Store) ReplaceMachines(machines []models.Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machines = machines
}

// ---- herd lots ----

func (s *Store) ListHerdLots() []models.HerdLot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HerdLot, len(s.herdLots))
	copy(out, s.herdLots)
	return out
}

func (s *Store) UpsertHerdLot(lot models.HerdLot) models.HerdLot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lot.ID == "" {
		lot.ID = uuid.NewString()
	}
	for i, existing := range s.herdLots {
		if existing.ID == lot.ID {
			s.herdLots[i] = lot
			return lot
		}
	}
	s.herdLots = append([]models.HerdLot{lot}, s.herdLots...)
	return lot
}

func (s *Store) DeleteHerdLot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, lot := range s.herdLots {
		if lot.ID == id {
			s.herdLots = append(s.herdLots[:i], s.herdLots[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ReplaceHerdLots(lots []models.HerdLot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.herdLots = lots
}

// ---- collaborators ----

func (s *Store) ListCollaborators() []models.Collaborator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Collaborator, len(s.collaborators))
	copy(out, s.collaborators)
	return out
}

func (s *Store) GetCollaborator(id string) (models.Collaborator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.collaborators {
		if c.ID == id {
			return c, true
		}
	}
	return models.Collaborator{}, false
}

func (s *Store) UpsertCollaborator(collab models.Collaborator) models.Collaborator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if collab.ID == "" {
		collab.ID = uuid.NewString()
	}
	for i, existing := range s.collaborators {
		if existing.ID == collab.ID {
			s.collaborators[i] = collab
			return collab
		}
	}
	s.collaborators = append([]models.Collaborator{collab}, s.collaborators...)
	return collab
}

func (s *Store) DeleteCollaborator(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.collaborators {
		if c.ID == id {
			s.collaborators = append(s.collaborators[:i], s.collaborators[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ReplaceCollaborators(collabs []models.Collaborator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collaborators = collabs
}
