package pricing_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/pricing"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func intPtr(v int) *int { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mustStay(t *testing.T, in, out time.Time, rooms int) pricing.Stay {
	t.Helper()
	s, err := pricing.NewStay(in, out, rooms)
	require.NoError(t, err)
	return s
}

// requireDecimal compares by value so "360" and "360.00" are equal.
func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

// rule returns an active rule of the given type; adjust fields on the result.
func rule(name string, typ domain.RuleType, rate string) domain.PriceRule {
	return domain.PriceRule{
		ID:           uuid.New(),
		Name:         name,
		Type:         typ,
		DiscountRate: dec(rate),
		IsActive:     true,
	}
}
