// Package domain contains the core data types for the hotel pricing API.
// It is imported by every other internal package (pricing, repo, service, handler)
// and depends only on uuid and decimal.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hotel is a bookable property. BasePrice is the nightly rate before any
// price rule is applied.
type Hotel struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	City      string          `json:"city,omitempty"`
	BasePrice decimal.Decimal `json:"base_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
