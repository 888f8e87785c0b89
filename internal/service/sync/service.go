package sync

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	"github.com/mamadbah2/agroboard/internal/store"
)

// Remote is the remote tabular store backing the entity collections.
type Remote interface {
	ListFarms(ctx context.Context) ([]models.Farm, error)
	UpsertFarm(ctx context.Context, farm models.Farm) error
	DeleteFarm(ctx context.Context, id string) error
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	UpsertItem(ctx context.Context, item models.InventoryItem) error
	DeleteItem(ctx context.Context, id string) error
	ListMachines(ctx context.Context) ([]models.Machine, error)
	UpsertMachine(ctx context.Context, machine models.Machine) error
	DeleteMachine(ctx context.Context, id string) error
	ListHerdLots(ctx context.Context) ([]models.HerdLot, error)
	UpsertHerdLot(ctx context.Context, lot models.HerdLot) error
	DeleteHerdLot(ctx context.Context, id string) error
	ListCollaborators(ctx context.Context) ([]models.Collaborator, error)
	UpsertCollaborator(ctx context.Context, collab models.Collaborator) error
	DeleteCollaborator(ctx context.Context, id string) error
}

// Service synchronizes the in-memory store with the remote backing. A pull
// replaces local collections wholesale when the remote result is non-empty
// (last-network-response-wins, no merge). Pushes are best-effort background
// writes; a failed push is logged and the local state stands.
type Service struct {
	remote      Remote
	store       *store.Store
	logger      *zap.Logger
	pushTimeout time.Duration
}

// NewService wires a sync service. remote may be nil, in which case every
// operation is a no-op and the store runs from seed data alone.
func NewService(remote Remote, st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		remote:      remote,
		store:       st,
		logger:      logger,
		pushTimeout: 10 * time.Second,
	}
}

// Enabled reports whether a remote backing is configured.
func (s *Service) Enabled() bool {
	return s.remote != nil
}

// Pull fetches every collection and overwrites local state with non-empty
// results. Each fetch is retried with exponential backoff; a collection that
// still fails is skipped so the others can land.
func (s *Service) Pull(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}

	var firstErr error

	if farms, err := pullCollection(ctx, s.remote.ListFarms); err != nil {
		s.logger.Warn("farm pull failed, keeping local state", zap.Error(err))
		firstErr = err
	} else if len(farms) > 0 {
		s.store.ReplaceFarms(farms)
	}

	if items, err := pullCollection(ctx, s.remote.ListInventory); err != nil {
		s.logger.Warn("inventory pull failed, keeping local state", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else if len(items) > 0 {
		s.store.ReplaceInventory(items)
	}

	if machines, err := pullCollection(ctx, s.remote.ListMachines); err != nil {
		s.logger.Warn("machine pull failed, keeping local state", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else if len(machines) > 0 {
		s.store.ReplaceMachines(machines)
	}

	if lots, err := pullCollection(ctx, s.remote.ListHerdLots); err != nil {
		s.logger.Warn("herd lot pull failed, keeping local state", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else if len(lots) > 0 {
		s.store.ReplaceHerdLots(lots)
	}

	if collabs, err := pullCollection(ctx, s.remote.ListCollaborators); err != nil {
		s.logger.Warn("collaborator pull failed, keeping local state", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else if len(collabs) > 0 {
		s.store.ReplaceCollaborators(collabs)
	}

	return firstErr
}

func pullCollection[T any](ctx context.Context, list func(context.Context) ([]T, error)) ([]T, error) {
	var out []T
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	err := backoff.Retry(func() error {
		var err error
		out, err = list(ctx)
		return err
	}, policy)
	return out, err
}

// push runs a remote write in the background with its own timeout.
func (s *Service) push(kind, id string, fn func(context.Context) error) {
	if s.remote == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.logger.Warn("remote push failed", zap.String("kind", kind), zap.String("id", id), zap.Error(err))
		}
	}()
}

func (s *Service) PushFarm(farm models.Farm) {
	s.push("farm", farm.ID, func(ctx context.Context) error { return s.remote.UpsertFarm(ctx, farm) })
}

func (s *Service) PushFarmDelete(id string) {
	s.push("farm", id, func(ctx context.Context) error { return s.remote.DeleteFarm(ctx, id) })
}

func (s *Service) PushItem(item models.InventoryItem) {
	s.push("inventory_item", item.ID, func(ctx context.Context) error { return s.remote.UpsertItem(ctx, item) })
}

func (s *Service) PushItemDelete(id string) {
	s.push("inventory_item", id, func(ctx context.Context) error { return s.remote.DeleteItem(ctx, id) })
}

func (s *Service) PushMachine(machine models.Machine) {
	s.push("machine", machine.ID, func(ctx context.Context) error { return s.remote.UpsertMachine(ctx, machine) })
}

func (s *Service) PushMachineDelete(id string) {
	s.push("machine", id, func(ctx context.Context) error { return s.remote.DeleteMachine(ctx, id) })
}

func (s *Service) PushHerdLot(lot models.HerdLot) {
	s.push("herd_lot", lot.ID, func(ctx context.Context) error { return s.remote.UpsertHerdLot(ctx, lot) })
}

func (s *Service) PushHerdLotDelete(id string) {
	s.push("herd_lot", id, func(ctx context.Context) error { return s.remote.DeleteHerdLot(ctx, id) })
}

func (s *Service) PushCollaborator(collab models.Collaborator) {
	s.push("collaborator", collab.ID, func(ctx context.Context) error { return s.remote.UpsertCollaborator(ctx, collab) })
}

func (s *Service) PushCollaboratorDelete(id string) {
	s.push("collaborator", id, func(ctx context.Context) error { return s.remote.DeleteCollaborator(ctx, id) })
}
