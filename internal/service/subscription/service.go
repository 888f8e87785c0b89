package subscription

import (
	"fmt"
	"sync"

	"github.com/mamadbah2/agroboard/internal/domain/models"
)

// Service holds the account's current subscription. It gates feature
// visibility; no ledger event ever touches it.
type Service struct {
	mu      sync.RWMutex
	current models.Subscription
}

// NewService starts on the given subscription.
func NewService(initial models.Subscription) *Service {
	return &Service{current: initial}
}

// Current returns the active subscription.
func (s *Service) Current() models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces the subscription after validating the tier and status.
func (s *Service) Update(sub models.Subscription) (models.Subscription, error) {
	if sub.Plan.Rank() == 0 {
		return models.Subscription{}, fmt.Errorf("unknown plan tier %q", sub.Plan)
	}
	switch sub.Status {
	case models.SubscriptionActive, models.SubscriptionOverdue, models.SubscriptionTrial:
	default:
		return models.Subscription{}, fmt.Errorf("unknown subscription status %q", sub.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sub
	return sub, nil
}

// Allows reports whether the current plan reaches the min tier.
func (s *Service) Allows(min models.PlanTier) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Plan.Allows(min)
}
