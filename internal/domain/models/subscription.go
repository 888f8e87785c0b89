package models

// PlanTier enumerates subscription plans, ordered by capability.
type PlanTier string

const (
	PlanBasic        PlanTier = "basic"
	PlanProfessional PlanTier = "professional"
	PlanPremium      PlanTier = "premium"
)

// Rank orders tiers so plans can be compared. Unknown tiers rank lowest.
func (p PlanTier) Rank() int {
	switch p {
	case PlanBasic:
		return 1
	case PlanProfessional:
		return 2
	case PlanPremium:
		return 3
	default:
		return 0
	}
}

// Allows reports whether a subscriber on plan p may use a feature that
// requires at least the min tier.
func (p PlanTier) Allows(min PlanTier) bool {
	return p.Rank() >= min.Rank()
}

// SubscriptionStatus enumerates billing states.
type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionOverdue SubscriptionStatus = "overdue"
	SubscriptionTrial   SubscriptionStatus = "trial"
)

// Subscription gates feature visibility across the API. It is never mutated
// by ledger events.
type Subscription struct {
	Plan      PlanTier           `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	ExpiresAt string             `json:"expires_at"`
	AddOns    []string           `json:"add_ons"`
}
