package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/handler"
	"github.com/pkordes/hotel-pricing/internal/pricing"
	"github.com/pkordes/hotel-pricing/internal/service"
)

// Test doubles for the handler's consumer interfaces.
// Set only the method fields your test needs.

type mockHotelServicer struct {
	create    func(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Hotel], error)
	update    func(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockHotelServicer) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return m.create(ctx, h)
}
func (m *mockHotelServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	return m.getByID(ctx, id)
}
func (m *mockHotelServicer) ListPaged(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Hotel], error) {
	return m.listPaged(ctx, p)
}
func (m *mockHotelServicer) Update(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return m.update(ctx, h)
}
func (m *mockHotelServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.HotelServicer = (*mockHotelServicer)(nil)

type mockRuleServicer struct {
	create    func(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.PriceRule, error)
	listPaged func(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) (domain.Page[domain.PriceRule], error)
	update    func(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRuleServicer) Create(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error) {
	return m.create(ctx, r)
}
func (m *mockRuleServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.PriceRule, error) {
	return m.getByID(ctx, id)
}
func (m *mockRuleServicer) ListPaged(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) (domain.Page[domain.PriceRule], error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockRuleServicer) Update(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error) {
	return m.update(ctx, r)
}
func (m *mockRuleServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.PriceRuleServicer = (*mockRuleServicer)(nil)

type mockQuoteServicer struct {
	quote func(ctx context.Context, req service.QuoteRequest) (pricing.Result, error)
}

func (m *mockQuoteServicer) Quote(ctx context.Context, req service.QuoteRequest) (pricing.Result, error) {
	return m.quote(ctx, req)
}

var _ handler.QuoteServicer = (*mockQuoteServicer)(nil)

type mockBookingServicer struct {
	create  func(ctx context.Context, req service.QuoteRequest) (domain.Booking, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

func (m *mockBookingServicer) Create(ctx context.Context, req service.QuoteRequest) (domain.Booking, error) {
	return m.create(ctx, req)
}
func (m *mockBookingServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return m.getByID(ctx, id)
}

var _ handler.BookingServicer = (*mockBookingServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// services bundles the mocks a test wires into the router. Nil fields stay
// nil in the Server; a route that reaches one panics the test.
type services struct {
	hotels   *mockHotelServicer
	rules    *mockRuleServicer
	quotes   *mockQuoteServicer
	bookings *mockBookingServicer
}

// newHTTPHandler wires a Server with the given mocks into its chi router,
// the same way main.go mounts it.
func newHTTPHandler(svc services) http.Handler {
	var (
		hotels   handler.HotelServicer
		rules    handler.PriceRuleServicer
		quotes   handler.QuoteServicer
		bookings handler.BookingServicer
	)
	if svc.hotels != nil {
		hotels = svc.hotels
	}
	if svc.rules != nil {
		rules = svc.rules
	}
	if svc.quotes != nil {
		quotes = svc.quotes
	}
	if svc.bookings != nil {
		bookings = svc.bookings
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(hotels, rules, quotes, bookings, log).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
