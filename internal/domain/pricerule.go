package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleType names the matching behaviour of a PriceRule.
type RuleType string

const (
	RuleSeason   RuleType = "season"
	RuleWeekend  RuleType = "weekend"
	RuleHoliday  RuleType = "holiday"
	RuleNewUser  RuleType = "new_user"
	RuleLongStay RuleType = "long_stay"
	RuleCustom   RuleType = "custom"
)

// RuleTypes lists every supported rule type in display order.
var RuleTypes = []RuleType{RuleSeason, RuleWeekend, RuleHoliday, RuleNewUser, RuleLongStay, RuleCustom}

// Valid reports whether t is one of the supported rule types.
func (t RuleType) Valid() bool {
	for _, known := range RuleTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PriceRule is an administrator-defined price adjustment as stored in the
// rule store. It is the flat, persisted shape; the pricing package compiles
// it into a typed condition before evaluation.
//
// HotelID is nil for global rules that apply to every hotel.
// StartDate and EndDate are inclusive; nil leaves that side unbounded.
// DayOfWeek uses time.Weekday numbering (0 = Sunday).
// DiscountRate is a signed percentage: -10 is a ten percent discount,
// +15 a fifteen percent surcharge.
type PriceRule struct {
	ID           uuid.UUID       `json:"id"`
	HotelID      *uuid.UUID      `json:"hotel_id,omitempty"`
	Name         string          `json:"name"`
	Type         RuleType        `json:"rule_type"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	DayOfWeek    *int            `json:"day_of_week,omitempty"`
	MinNights    *int            `json:"min_nights,omitempty"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	IsActive     bool            `json:"is_active"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RuleFilter narrows a rule listing. Zero values mean "no filter".
// When HotelID is set, global rules are included alongside the hotel's own.
type RuleFilter struct {
	HotelID  *uuid.UUID
	IsActive *bool
}
