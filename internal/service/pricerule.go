package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/repo"
)

// maxRateMagnitude is the largest |discount_rate| the price_rules column holds.
var maxRateMagnitude = decimal.RequireFromString("9999.99")

// PriceRuleService implements the administrator operations on the rule store.
// It rejects rules the pricing engine could not evaluate, so a bad rule is
// caught when it is written rather than when a guest asks for a quote.
type PriceRuleService struct {
	rules repo.PriceRuleRepo
}

// NewPriceRuleService constructs a PriceRuleService backed by the provided repo.
func NewPriceRuleService(rules repo.PriceRuleRepo) *PriceRuleService {
	return &PriceRuleService{rules: rules}
}

// Create validates and persists a new rule.
func (s *PriceRuleService) Create(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error) {
	if err := validateRule(rule); err != nil {
		return domain.PriceRule{}, err
	}
	result, err := s.rules.Create(ctx, rule)
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("service.PriceRuleService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single rule. Returns domain.ErrNotFound if missing.
func (s *PriceRuleService) GetByID(ctx context.Context, id uuid.UUID) (domain.PriceRule, error) {
	result, err := s.rules.GetByID(ctx, id)
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("service.PriceRuleService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of rules matching f. Items is never nil.
func (s *PriceRuleService) ListPaged(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) (domain.Page[domain.PriceRule], error) {
	rules, total, err := s.rules.ListPaged(ctx, f, p)
	if err != nil {
		return domain.Page[domain.PriceRule]{}, fmt.Errorf("service.PriceRuleService.ListPaged: %w", err)
	}
	if rules == nil {
		rules = []domain.PriceRule{}
	}
	return domain.Page[domain.PriceRule]{Items: rules, Total: total}, nil
}

// Update validates and replaces an existing rule.
func (s *PriceRuleService) Update(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error) {
	if err := validateRule(rule); err != nil {
		return domain.PriceRule{}, err
	}
	result, err := s.rules.Update(ctx, rule)
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("service.PriceRuleService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a rule by ID.
func (s *PriceRuleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rules.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PriceRuleService.Delete: %w", err)
	}
	return nil
}

// validateRule enforces the rules shared by Create and Update.
func validateRule(r domain.PriceRule) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown rule_type %q", domain.ErrValidation, r.Type)
	}
	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return fmt.Errorf("%w: start_date must not be after end_date", domain.ErrValidation)
	}
	if r.DayOfWeek != nil && (*r.DayOfWeek < 0 || *r.DayOfWeek > 6) {
		return fmt.Errorf("%w: day_of_week must be between 0 (Sunday) and 6 (Saturday)", domain.ErrValidation)
	}
	if r.MinNights != nil && *r.MinNights < 1 {
		return fmt.Errorf("%w: min_nights must be at least 1", domain.ErrValidation)
	}
	if r.DiscountRate.Abs().GreaterThan(maxRateMagnitude) {
		return fmt.Errorf("%w: discount_rate must be between -9999.99 and 9999.99", domain.ErrValidation)
	}
	if !r.DiscountRate.Equal(r.DiscountRate.Round(2)) {
		return fmt.Errorf("%w: discount_rate must have at most two decimal places", domain.ErrValidation)
	}

	switch r.Type {
	case domain.RuleSeason, domain.RuleHoliday:
		if r.StartDate == nil && r.EndDate == nil {
			return fmt.Errorf("%w: %s rules need a start_date or end_date", domain.ErrValidation, r.Type)
		}
	case domain.RuleLongStay:
		if r.MinNights == nil {
			return fmt.Errorf("%w: long_stay rules need min_nights", domain.ErrValidation)
		}
	}
	return nil
}
