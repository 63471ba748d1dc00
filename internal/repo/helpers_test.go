package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/repo"
	"github.com/pkordes/hotel-pricing/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes, giving per-test isolation with no cleanup SQL.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hotelFixture() domain.Hotel {
	return domain.Hotel{
		Name:      "Harbour View",
		City:      "Sydney",
		BasePrice: dec("189.50"),
	}
}

// createHotel inserts hotelFixture through r and fails the test on error.
func createHotel(t *testing.T, r repo.HotelRepo) domain.Hotel {
	t.Helper()
	h, err := r.Create(context.Background(), hotelFixture())
	require.NoError(t, err)
	return h
}
