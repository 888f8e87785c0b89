package ledger

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	"github.com/mamadbah2/agroboard/internal/store"
)

// Journal receives a row for every applied ledger event. Writes are
// best-effort: a journal failure never fails the event.
type Journal interface {
	AppendLedgerEntry(ctx context.Context, entry models.LedgerEntry) error
}

// Service applies ledger events to the entity store. Each event is
// all-or-nothing across the one or two entities it touches: every reference
// is resolved and every amount parsed before the first mutation.
type Service struct {
	store   *store.Store
	journal Journal
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a ledger accumulator. journal may be nil.
func NewService(st *store.Store, journal Journal, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   st,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// RecordSale posts unitPrice*quantity as revenue on the farm and, when the
// sold product resolves to a stocked item, decrements that item's quantity
// floored at zero. An explicit inventory_item_id wins over the name match;
// no match skips the stock step without failing the sale.
func (s *Service) RecordSale(ctx context.Context, req models.SaleRequest) (models.SaleResult, error) {
	price, err := parseAmount("unit_price", req.UnitPrice, false)
	if err != nil {
		return models.SaleResult{}, err
	}
	qty, err := parseAmount("quantity", req.Quantity, true)
	if err != nil {
		return models.SaleResult{}, err
	}

	farm, ok := s.store.GetFarm(req.FarmID)
	if !ok {
		return models.SaleResult{}, &UnresolvedReferenceError{Kind: "farm", Ref: req.FarmID}
	}

	// Resolve the stock item before touching anything.
	var itemID string
	if req.InventoryItemID != "" {
		item, ok := s.store.GetItem(req.InventoryItemID)
		if !ok {
			return models.SaleResult{}, &UnresolvedReferenceError{Kind: "inventory_item", Ref: req.InventoryItemID}
		}
		itemID = item.ID
	} else if item, ok := s.store.FindItemByProduct(req.Product); ok {
		itemID = item.ID
	}

	amount := price * qty
	farm, _ = s.store.AddFarmRevenue(farm.ID, amount)

	result := models.SaleResult{Farm: farm}
	if itemID != "" {
		if item, ok := s.store.AdjustItemQuantity(itemID, -qty); ok {
			result.Item = &item
		}
	}

	s.logger.Info("sale recorded",
		zap.String("farm_id", farm.ID),
		zap.String("product", req.Product),
		zap.Float64("amount", amount),
		zap.Bool("stock_decremented", result.Item != nil))

	s.appendJournal(ctx, models.LedgerEntry{
		Date:     s.now().UTC(),
		Kind:     models.EventSale,
		FarmID:   farm.ID,
		FarmName: farm.Name,
		Label:    req.Product,
		Amount:   amount,
		Quantity: qty,
	})
	return result, nil
}

// RecordExpense posts a user-entered amount to the farm's expenses.
func (s *Service) RecordExpense(ctx context.Context, req models.ExpenseRequest) (models.Farm, error) {
	amount, err := parseAmount("amount", req.Amount, true)
	if err != nil {
		return models.Farm{}, err
	}

	farm, ok := s.store.AddFarmExpenses(req.FarmID, amount)
	if !ok {
		return models.Farm{}, &UnresolvedReferenceError{Kind: "farm", Ref: req.FarmID}
	}

	s.logger.Info("expense recorded",
		zap.String("farm_id", farm.ID),
		zap.String("category", req.Category),
		zap.Float64("amount", amount))

	s.appendJournal(ctx, models.LedgerEntry{
		Date:     s.now().UTC(),
		Kind:     models.EventExpense,
		FarmID:   farm.ID,
		FarmName: farm.Name,
		Label:    req.Category,
		Amount:   amount,
	})
	return farm, nil
}

// RecordUsage decrements an inventory item, floored at zero. The destination
// farm on the form is informational only; no farm accumulator moves.
func (s *Service) RecordUsage(ctx context.Context, req models.UsageRequest) (models.InventoryItem, error) {
	qty, err := parseAmount("quantity", req.Quantity, true)
	if err != nil {
		return models.InventoryItem{}, err
	}

	item, ok := s.store.AdjustItemQuantity(req.ItemID, -qty)
	if !ok {
		return models.InventoryItem{}, &UnresolvedReferenceError{Kind: "inventory_item", Ref: req.ItemID}
	}

	s.logger.Info("stock usage recorded",
		zap.String("item_id", item.ID),
		zap.Float64("quantity", qty),
		zap.Float64("remaining", item.Quantity))

	s.appendJournal(ctx, models.LedgerEntry{
		Date:     s.now().UTC(),
		Kind:     models.EventUsage,
		FarmID:   req.FarmID,
		Label:    item.Name,
		Quantity: qty,
	})
	return item, nil
}

// RecordCollaboratorPayment posts a salary, day-rate or PPE amount to the
// expenses of the collaborator's assigned farm. The assignment is by farm
// name; a failed resolution rejects the event instead of dropping it.
func (s *Service) RecordCollaboratorPayment(ctx context.Context, req models.PaymentRequest) (models.Farm, error) {
	switch req.Kind {
	case models.PaymentSalary, models.PaymentDayRate, models.PaymentPPE:
	default:
		return models.Farm{}, &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown payment kind %q", req.Kind)}
	}

	amount, err := parseAmount("amount", req.Amount, true)
	if err != nil {
		return models.Farm{}, err
	}

	collab, ok := s.store.GetCollaborator(req.CollaboratorID)
	if !ok {
		return models.Farm{}, &UnresolvedReferenceError{Kind: "collaborator", Ref: req.CollaboratorID}
	}

	farm, ok := s.store.FindFarmByName(collab.FarmName)
	if !ok {
		return models.Farm{}, &UnresolvedReferenceError{Kind: "farm", Ref: collab.FarmName}
	}

	farm, _ = s.store.AddFarmExpenses(farm.ID, amount)

	s.logger.Info("collaborator payment recorded",
		zap.String("collaborator_id", collab.ID),
		zap.String("farm_id", farm.ID),
		zap.String("kind", string(req.Kind)),
		zap.Float64("amount", amount))

	s.appendJournal(ctx, models.LedgerEntry{
		Date:     s.now().UTC(),
		Kind:     models.EventCollaboratorPayment,
		FarmID:   farm.ID,
		FarmName: farm.Name,
		Label:    fmt.Sprintf("%s %s", req.Kind, collab.Name),
		Amount:   amount,
	})
	return farm, nil
}

// RecordMachineExpense posts a machine expense to the farm the operator
// selected, independent of any machine assignment.
func (s *Service) RecordMachineExpense(ctx context.Context, req models.MachineExpenseRequest) (models.Farm, error) {
	amount, err := parseAmount("amount", req.Amount, true)
	if err != nil {
		return models.Farm{}, err
	}

	machine, ok := s.store.GetMachine(req.MachineID)
	if !ok {
		return models.Farm{}, &UnresolvedReferenceError{Kind: "machine", Ref: req.MachineID}
	}

	farm, ok := s.store.AddFarmExpenses(req.FarmID, amount)
	if !ok {
		return models.Farm{}, &UnresolvedReferenceError{Kind: "farm", Ref: req.FarmID}
	}

	s.logger.Info("machine expense recorded",
		zap.String("machine_id", machine.ID),
		zap.String("farm_id", farm.ID),
		zap.String("category", req.Category),
		zap.Float64("amount", amount))

	s.appendJournal(ctx, models.LedgerEntry{
		Date:     s.now().UTC(),
		Kind:     models.EventMachineExpense,
		FarmID:   farm.ID,
		FarmName: farm.Name,
		Label:    fmt.Sprintf("%s %s", req.Category, machine.Name),
		Amount:   amount,
	})
	return farm, nil
}

func (s *Service) appendJournal(ctx context.Context, entry models.LedgerEntry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.AppendLedgerEntry(ctx, entry); err != nil {
		s.logger.Warn("ledger journal append failed", zap.Error(err), zap.String("kind", string(entry.Kind)))
	}
}

// parseAmount parses a free-text monetary or quantity input. Blank or
// non-numeric values fail the event; they are never coerced to zero.
func parseAmount(field, raw string, requirePositive bool) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ValidationError{Field: field, Reason: "required"}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ValidationError{Field: field, Reason: "not a number"}
	}
	if value < 0 {
		return 0, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	if requirePositive && value == 0 {
		return 0, &ValidationError{Field: field, Reason: "must be greater than zero"}
	}
	return value, nil
}
