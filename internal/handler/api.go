package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Request and response bodies. Field names and JSON keys follow
// spec/openapi.yaml; money and percentages are decimal strings.

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// HotelRequest is the body of POST /hotels and PUT /hotels/{id}.
type HotelRequest struct {
	Name      string          `json:"name" validate:"required,max=200"`
	City      *string         `json:"city,omitempty" validate:"omitempty,max=100"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// Hotel is the response representation of a hotel.
type Hotel struct {
	ID        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	City      *string            `json:"city,omitempty"`
	BasePrice decimal.Decimal    `json:"base_price"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// HotelList is the body of GET /hotels.
type HotelList struct {
	Data       []Hotel    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PriceRuleRequest is the body of POST /pricing/rules and PUT /pricing/rules/{id}.
// IsActive defaults to true when omitted.
type PriceRuleRequest struct {
	HotelID      *openapi_types.UUID `json:"hotel_id,omitempty"`
	Name         string              `json:"name" validate:"required,max=200"`
	RuleType     string              `json:"rule_type" validate:"required,oneof=season weekend holiday new_user long_stay custom"`
	StartDate    *openapi_types.Date `json:"start_date,omitempty"`
	EndDate      *openapi_types.Date `json:"end_date,omitempty"`
	DayOfWeek    *int                `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	MinNights    *int                `json:"min_nights,omitempty" validate:"omitempty,min=1"`
	DiscountRate decimal.Decimal     `json:"discount_rate"`
	IsActive     *bool               `json:"is_active,omitempty"`
	Description  *string             `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// PriceRule is the response representation of a price rule.
type PriceRule struct {
	ID           openapi_types.UUID  `json:"id"`
	HotelID      *openapi_types.UUID `json:"hotel_id,omitempty"`
	Name         string              `json:"name"`
	RuleType     string              `json:"rule_type"`
	StartDate    *openapi_types.Date `json:"start_date,omitempty"`
	EndDate      *openapi_types.Date `json:"end_date,omitempty"`
	DayOfWeek    *int                `json:"day_of_week,omitempty"`
	MinNights    *int                `json:"min_nights,omitempty"`
	DiscountRate decimal.Decimal     `json:"discount_rate"`
	IsActive     bool                `json:"is_active"`
	Description  *string             `json:"description,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// PriceRuleList is the body of GET /pricing/rules.
type PriceRuleList struct {
	Data       []PriceRule `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// StayRequest is the body of POST /pricing/quote and POST /bookings.
// RoomCount defaults to 1 when omitted and is capped at pricing.MaxRooms.
type StayRequest struct {
	HotelID      openapi_types.UUID  `json:"hotel_id" validate:"required"`
	CheckInDate  *openapi_types.Date `json:"check_in_date" validate:"required"`
	CheckOutDate *openapi_types.Date `json:"check_out_date" validate:"required"`
	RoomCount    *int                `json:"room_count,omitempty" validate:"omitempty,min=1,max=100"`
	UserID       *openapi_types.UUID `json:"user_id,omitempty"`
}

// AppliedRule is a rule that adjusted at least one night of a quote.
type AppliedRule struct {
	ID           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	RuleType     string             `json:"rule_type"`
	DiscountRate decimal.Decimal    `json:"discount_rate"`
}

// NightPrice is the per-room price of one night of a quote.
type NightPrice struct {
	Date    openapi_types.Date `json:"date"`
	NetRate decimal.Decimal    `json:"net_rate"`
	Price   decimal.Decimal    `json:"price"`
}

// Quote is the body of a successful POST /pricing/quote.
type Quote struct {
	HotelID      openapi_types.UUID `json:"hotel_id"`
	CheckInDate  openapi_types.Date `json:"check_in_date"`
	CheckOutDate openapi_types.Date `json:"check_out_date"`
	Nights       int                `json:"nights"`
	RoomCount    int                `json:"room_count"`
	BasePrice    decimal.Decimal    `json:"base_price"`
	DiscountRate decimal.Decimal    `json:"discount_rate"`
	FinalPrice   decimal.Decimal    `json:"final_price"`
	AppliedRules []AppliedRule      `json:"applied_rules"`
	Breakdown    []NightPrice       `json:"breakdown"`
	QuotedAt     time.Time          `json:"quoted_at"`
}

// Booking is the response representation of a booking and its price snapshot.
type Booking struct {
	ID           openapi_types.UUID  `json:"id"`
	HotelID      openapi_types.UUID  `json:"hotel_id"`
	UserID       *openapi_types.UUID `json:"user_id,omitempty"`
	CheckInDate  openapi_types.Date  `json:"check_in_date"`
	CheckOutDate openapi_types.Date  `json:"check_out_date"`
	RoomCount    int                 `json:"room_count"`
	BasePrice    decimal.Decimal     `json:"base_price"`
	DiscountRate decimal.Decimal     `json:"discount_rate"`
	FinalPrice   decimal.Decimal     `json:"final_price"`
	AppliedRules []string            `json:"applied_rules"`
	PricedAt     time.Time           `json:"priced_at"`
	CreatedAt    time.Time           `json:"created_at"`
}
