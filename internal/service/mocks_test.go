package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs. Calling an unset field panics, which flags an
// unexpected repo call.

type mockHotelRepo struct {
	create    func(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error)
	update    func(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockHotelRepo) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return m.create(ctx, h)
}
func (m *mockHotelRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	return m.getByID(ctx, id)
}
func (m *mockHotelRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockHotelRepo) Update(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return m.update(ctx, h)
}
func (m *mockHotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.HotelRepo = (*mockHotelRepo)(nil)

type mockRuleRepo struct {
	create     func(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.PriceRule, error)
	listPaged  func(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) ([]domain.PriceRule, int64, error)
	listActive func(ctx context.Context, hotelID uuid.UUID) ([]domain.PriceRule, error)
	update     func(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRuleRepo) Create(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error) {
	return m.create(ctx, r)
}
func (m *mockRuleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.PriceRule, error) {
	return m.getByID(ctx, id)
}
func (m *mockRuleRepo) ListPaged(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) ([]domain.PriceRule, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockRuleRepo) ListActive(ctx context.Context, hotelID uuid.UUID) ([]domain.PriceRule, error) {
	return m.listActive(ctx, hotelID)
}
func (m *mockRuleRepo) Update(ctx context.Context, r domain.PriceRule) (domain.PriceRule, error) {
	return m.update(ctx, r)
}
func (m *mockRuleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.PriceRuleRepo = (*mockRuleRepo)(nil)

type mockBookingRepo struct {
	create      func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	countByUser func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.create(ctx, b)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return m.getByID(ctx, id)
}
func (m *mockBookingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.countByUser(ctx, userID)
}

var _ repo.BookingRepo = (*mockBookingRepo)(nil)
