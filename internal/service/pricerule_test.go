package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/service"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

func validRule() domain.PriceRule {
	return domain.PriceRule{
		Name:         "Summer high season",
		Type:         domain.RuleSeason,
		StartDate:    date(2025, 6, 1),
		EndDate:      date(2025, 8, 31),
		DiscountRate: decimal.NewFromInt(15),
		IsActive:     true,
	}
}

func echoRuleRepo() *mockRuleRepo {
	return &mockRuleRepo{
		create: func(_ context.Context, r domain.PriceRule) (domain.PriceRule, error) { return r, nil },
		update: func(_ context.Context, r domain.PriceRule) (domain.PriceRule, error) { return r, nil },
	}
}

func TestPriceRuleService_Create_Valid(t *testing.T) {
	valid := map[string]func(r *domain.PriceRule){
		"season":                  func(r *domain.PriceRule) {},
		"season open start":       func(r *domain.PriceRule) { r.StartDate = nil },
		"single day window":       func(r *domain.PriceRule) { r.EndDate = r.StartDate },
		"weekend without weekday": func(r *domain.PriceRule) { r.Type = domain.RuleWeekend; r.StartDate, r.EndDate = nil, nil },
		"weekend on friday":       func(r *domain.PriceRule) { r.Type = domain.RuleWeekend; r.DayOfWeek = intPtr(5) },
		"new user":                func(r *domain.PriceRule) { r.Type = domain.RuleNewUser; r.DiscountRate = decimal.NewFromInt(-10) },
		"long stay":               func(r *domain.PriceRule) { r.Type = domain.RuleLongStay; r.MinNights = intPtr(7) },
		"custom without fields":   func(r *domain.PriceRule) { r.Type = domain.RuleCustom; r.StartDate, r.EndDate = nil, nil },
		"fractional rate":         func(r *domain.PriceRule) { r.DiscountRate = decimal.RequireFromString("-12.5") },
		"hotel scoped":            func(r *domain.PriceRule) { id := uuid.New(); r.HotelID = &id },
	}
	for name, mutate := range valid {
		t.Run(name, func(t *testing.T) {
			svc := service.NewPriceRuleService(echoRuleRepo())
			r := validRule()
			mutate(&r)

			_, err := svc.Create(context.Background(), r)

			assert.NoError(t, err)
		})
	}
}

func TestPriceRuleService_Create_Invalid(t *testing.T) {
	invalid := map[string]func(r *domain.PriceRule){
		"blank name":             func(r *domain.PriceRule) { r.Name = "" },
		"unknown type":           func(r *domain.PriceRule) { r.Type = "flash_sale" },
		"inverted window":        func(r *domain.PriceRule) { r.StartDate, r.EndDate = r.EndDate, r.StartDate },
		"weekday too large":      func(r *domain.PriceRule) { r.Type = domain.RuleWeekend; r.DayOfWeek = intPtr(7) },
		"weekday negative":       func(r *domain.PriceRule) { r.Type = domain.RuleCustom; r.DayOfWeek = intPtr(-1) },
		"zero min nights":        func(r *domain.PriceRule) { r.Type = domain.RuleLongStay; r.MinNights = intPtr(0) },
		"long stay without min":  func(r *domain.PriceRule) { r.Type = domain.RuleLongStay },
		"season without bounds":  func(r *domain.PriceRule) { r.StartDate, r.EndDate = nil, nil },
		"holiday without bounds": func(r *domain.PriceRule) { r.Type = domain.RuleHoliday; r.StartDate, r.EndDate = nil, nil },
		"three decimal places":   func(r *domain.PriceRule) { r.DiscountRate = decimal.RequireFromString("10.125") },
		"rate out of range":      func(r *domain.PriceRule) { r.DiscountRate = decimal.NewFromInt(10000) },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			svc := service.NewPriceRuleService(&mockRuleRepo{})
			r := validRule()
			mutate(&r)

			_, err := svc.Create(context.Background(), r)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPriceRuleService_Update_ValidatesBeforeRepo(t *testing.T) {
	svc := service.NewPriceRuleService(&mockRuleRepo{})
	r := validRule()
	r.Name = ""

	_, err := svc.Update(context.Background(), r)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPriceRuleService_Update_NotFound(t *testing.T) {
	svc := service.NewPriceRuleService(&mockRuleRepo{
		update: func(_ context.Context, _ domain.PriceRule) (domain.PriceRule, error) {
			return domain.PriceRule{}, domain.ErrNotFound
		},
	})

	_, err := svc.Update(context.Background(), validRule())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPriceRuleService_ListPaged_PassesFilter(t *testing.T) {
	hotelID := uuid.New()
	active := true
	var gotFilter domain.RuleFilter
	svc := service.NewPriceRuleService(&mockRuleRepo{
		listPaged: func(_ context.Context, f domain.RuleFilter, _ domain.PaginationParams) ([]domain.PriceRule, int64, error) {
			gotFilter = f
			return nil, 0, nil
		},
	})

	got, err := svc.ListPaged(context.Background(),
		domain.RuleFilter{HotelID: &hotelID, IsActive: &active},
		domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	require.NotNil(t, gotFilter.HotelID)
	assert.Equal(t, hotelID, *gotFilter.HotelID)
	require.NotNil(t, gotFilter.IsActive)
	assert.True(t, *gotFilter.IsActive)
	assert.NotNil(t, got.Items)
}

func TestPriceRuleService_Delete_NotFound(t *testing.T) {
	svc := service.NewPriceRuleService(&mockRuleRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
