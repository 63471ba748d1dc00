package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is a confirmed stay together with the price snapshot taken when it
// was created. The price fields are never recomputed after insert, so later
// rule changes do not alter what the guest was charged.
type Booking struct {
	ID           uuid.UUID       `json:"id"`
	HotelID      uuid.UUID       `json:"hotel_id"`
	UserID       *uuid.UUID      `json:"user_id,omitempty"`
	CheckInDate  time.Time       `json:"check_in_date"`
	CheckOutDate time.Time       `json:"check_out_date"`
	RoomCount    int             `json:"room_count"`
	BasePrice    decimal.Decimal `json:"base_price"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	FinalPrice   decimal.Decimal `json:"final_price"`
	AppliedRules []string        `json:"applied_rules"`
	PricedAt     time.Time       `json:"priced_at"`
	CreatedAt    time.Time       `json:"created_at"`
}
