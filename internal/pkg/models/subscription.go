package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan is sold by a provider (driver, car owner or admin) and
// grants that provider's customers a percentage discount while active
type SubscriptionPlan struct {
	ID                      uuid.UUID `json:"id" db:"id"`
	Name                    string    `json:"name" db:"name"`
	DurationMonths          int       `json:"durationMonths" db:"duration_months"`
	Price                   float64   `json:"price" db:"price"`
	CustomerDiscountPercent float64   `json:"customerDiscountPercent" db:"customer_discount_percent"`
	ProviderID              uuid.UUID `json:"providerId" db:"provider_id"`
	ProviderRole            string    `json:"providerRole" db:"provider_role"`
	CreatedAt               time.Time `json:"created_at" db:"created_at"`

	ProviderName string `json:"providerName,omitempty" db:"-"`
}
