package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/pricing"
	"github.com/pkordes/hotel-pricing/internal/repo"
)

// Quoter prices a stay. *QuoteService satisfies it.
type Quoter interface {
	Quote(ctx context.Context, req QuoteRequest) (pricing.Result, error)
}

// BookingService records bookings together with the price they were quoted at.
// The snapshot is never recomputed, so later rule changes do not affect it.
type BookingService struct {
	quotes   Quoter
	bookings repo.BookingRepo
	log      *slog.Logger
}

// NewBookingService constructs a BookingService.
func NewBookingService(quotes Quoter, bookings repo.BookingRepo, log *slog.Logger) *BookingService {
	return &BookingService{quotes: quotes, bookings: bookings, log: log}
}

// Create quotes the stay and stores the booking with the quoted snapshot.
func (s *BookingService) Create(ctx context.Context, req QuoteRequest) (domain.Booking, error) {
	result, err := s.quotes.Quote(ctx, req)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}

	booking, err := s.bookings.Create(ctx, domain.Booking{
		HotelID:      req.HotelID,
		UserID:       req.UserID,
		CheckInDate:  pricing.CalendarDate(req.CheckIn),
		CheckOutDate: pricing.CalendarDate(req.CheckOut),
		RoomCount:    result.RoomCount,
		BasePrice:    result.BasePrice,
		DiscountRate: result.EffectiveRate,
		FinalPrice:   result.FinalPrice,
		AppliedRules: result.AppliedRuleNames(),
		PricedAt:     result.QuotedAt,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}

	s.log.InfoContext(ctx, "booking created",
		"booking_id", booking.ID,
		"hotel_id", booking.HotelID,
		"final_price", booking.FinalPrice.String(),
	)
	return booking, nil
}

// GetByID returns a booking. Returns domain.ErrNotFound if missing.
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	result, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.GetByID: %w", err)
	}
	return result, nil
}
