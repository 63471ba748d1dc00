// Package pricing computes stay prices from a hotel's base nightly rate and
// its price rules.
//
// Every matching rule's rate is added to a per-night net rate, so evaluation
// order never changes the price. A night's price is floored at zero and the
// stay total is rounded half-up to cents. The package performs no I/O and
// keeps no state; all functions are safe for concurrent use.
package pricing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// EvaluationContext carries the facts about the request that rules may
// depend on. Callers fill it explicitly; the engine never reads the clock or
// session state.
type EvaluationContext struct {
	// ReferenceDate is the instant the quote is made. It is copied to
	// Result.QuotedAt.
	ReferenceDate time.Time
	// IsNewUser enables new_user rules.
	IsNewUser bool
}

// AppliedRule identifies a rule that adjusted at least one night.
type AppliedRule struct {
	ID           uuid.UUID
	Name         string
	Type         domain.RuleType
	DiscountRate decimal.Decimal
}

// NightPrice is the price of a single room for one night.
// NetRate is the raw stacked rate and may be below -100; Price is floored
// at zero and rounded to cents for display.
type NightPrice struct {
	Date    time.Time
	NetRate decimal.Decimal
	Price   decimal.Decimal
}

// Result is the outcome of pricing one stay.
type Result struct {
	BasePrice decimal.Decimal
	Nights    int
	RoomCount int
	// EffectiveRate is the adjustment actually charged, as a percentage of
	// BasePrice * Nights, after flooring.
	EffectiveRate decimal.Decimal
	FinalPrice    decimal.Decimal
	// AppliedRules follows candidate order, including rules whose effect
	// was floored away.
	AppliedRules []AppliedRule
	Breakdown    []NightPrice
	QuotedAt     time.Time
}

// AppliedRuleNames returns the names of the applied rules in order.
func (r Result) AppliedRuleNames() []string {
	names := make([]string, len(r.AppliedRules))
	for i, a := range r.AppliedRules {
		names[i] = a.Name
	}
	return names
}

// Snapshot is an immutable, compiled set of active rules. Build it once per
// rule-store read and price any number of stays against it.
type Snapshot struct {
	rules []Rule
}

// NewSnapshot compiles the active rules among candidates, preserving their
// order. Inactive rules are dropped without being validated.
func NewSnapshot(candidates []domain.PriceRule) (Snapshot, error) {
	rules := make([]Rule, 0, len(candidates))
	for _, c := range candidates {
		if !c.IsActive {
			continue
		}
		r, err := Compile(c)
		if err != nil {
			return Snapshot{}, fmt.Errorf("pricing.NewSnapshot: %w", err)
		}
		rules = append(rules, r)
	}
	return Snapshot{rules: rules}, nil
}

// Price evaluates the snapshot against one stay.
func (s Snapshot) Price(base decimal.Decimal, stay Stay, ec EvaluationContext) (Result, error) {
	if err := stay.validate(); err != nil {
		return Result{}, fmt.Errorf("pricing.Snapshot.Price: %w", err)
	}
	if !base.IsPositive() {
		return Result{}, fmt.Errorf("pricing.Snapshot.Price: %w: base price must be positive, got %s", domain.ErrNoBasePrice, base)
	}

	nights := stay.Nights()
	matched := make([]bool, len(s.rules))
	breakdown := make([]NightPrice, 0, nights)
	subtotal := decimal.Zero

	for i := 0; i < nights; i++ {
		n := night{date: stay.checkIn.AddDate(0, 0, i), stay: stay, ctx: ec}

		net := decimal.Zero
		for j, r := range s.rules {
			if r.Condition.matches(n) {
				net = net.Add(r.Rate)
				matched[j] = true
			}
		}

		nightly := base.Mul(hundred.Add(net)).Shift(-2)
		if nightly.IsNegative() {
			nightly = decimal.Zero
		}
		subtotal = subtotal.Add(nightly)
		breakdown = append(breakdown, NightPrice{Date: n.date, NetRate: net, Price: roundCents(nightly)})
	}

	applied := make([]AppliedRule, 0, len(s.rules))
	for j, r := range s.rules {
		if matched[j] {
			applied = append(applied, AppliedRule{
				ID:           r.ID,
				Name:         r.Name,
				Type:         r.Condition.Type(),
				DiscountRate: r.Rate,
			})
		}
	}

	gross := base.Mul(decimal.NewFromInt(int64(nights)))
	return Result{
		BasePrice:     base,
		Nights:        nights,
		RoomCount:     stay.rooms,
		EffectiveRate: subtotal.Sub(gross).Mul(hundred).Div(gross).Round(2),
		FinalPrice:    roundCents(subtotal.Mul(decimal.NewFromInt(int64(stay.rooms)))),
		AppliedRules:  applied,
		Breakdown:     breakdown,
		QuotedAt:      ec.ReferenceDate,
	}, nil
}

// ComputePrice validates the stay, compiles the active candidate rules and
// prices the stay against them. It fails with domain.ErrInvalidDateRange,
// domain.ErrInvalidRule or domain.ErrNoBasePrice, checked in that order
// before any rule is evaluated.
func ComputePrice(base decimal.Decimal, stay Stay, candidates []domain.PriceRule, ec EvaluationContext) (Result, error) {
	if err := stay.validate(); err != nil {
		return Result{}, fmt.Errorf("pricing.ComputePrice: %w", err)
	}
	snap, err := NewSnapshot(candidates)
	if err != nil {
		return Result{}, fmt.Errorf("pricing.ComputePrice: %w", err)
	}
	return snap.Price(base, stay, ec)
}

// roundCents rounds half away from zero to two places. Prices are never
// negative, so this is round-half-up.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
