package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/pricing"
	"github.com/pkordes/hotel-pricing/internal/repo"
)

// Quote outcomes recorded in pricing_quotes_total.
const (
	outcomeOK               = "ok"
	outcomeNotFound         = "not_found"
	outcomeInvalidDateRange = "invalid_date_range"
	outcomeInvalidRule      = "invalid_rule"
	outcomeNoBasePrice      = "no_base_price"
	outcomeValidation       = "validation_error"
	outcomeError            = "error"
)

var quotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pricing_quotes_total",
	Help: "Price quotes computed, by outcome.",
}, []string{"outcome"})

// QuoteRequest is a guest's request for the price of a stay.
type QuoteRequest struct {
	HotelID   uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	RoomCount int
	// UserID is optional. A user with no previous bookings gets new_user rules.
	UserID *uuid.UUID
}

// QuoteService assembles the inputs of the pricing engine from the stores
// and runs it. It is the only caller of pricing.ComputePrice.
type QuoteService struct {
	hotels   repo.HotelRepo
	rules    repo.PriceRuleRepo
	bookings repo.BookingRepo
	now      func() time.Time
	log      *slog.Logger
}

// NewQuoteService constructs a QuoteService. rules may be the Postgres repo or
// a cache decorating it.
func NewQuoteService(hotels repo.HotelRepo, rules repo.PriceRuleRepo, bookings repo.BookingRepo, log *slog.Logger) *QuoteService {
	return &QuoteService{
		hotels:   hotels,
		rules:    rules,
		bookings: bookings,
		now:      time.Now,
		log:      log,
	}
}

// WithClock replaces the clock used for the quote's reference date.
func (s *QuoteService) WithClock(now func() time.Time) *QuoteService {
	s.now = now
	return s
}

// Quote prices a stay at a hotel against the hotel's active rules and the
// global ones.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (pricing.Result, error) {
	result, err := s.quote(ctx, req)
	quotesTotal.WithLabelValues(outcomeOf(err)).Inc()
	if err != nil {
		return pricing.Result{}, fmt.Errorf("service.QuoteService.Quote: %w", err)
	}
	return result, nil
}

func (s *QuoteService) quote(ctx context.Context, req QuoteRequest) (pricing.Result, error) {
	stay, err := pricing.NewStay(req.CheckIn, req.CheckOut, req.RoomCount)
	if err != nil {
		return pricing.Result{}, err
	}

	hotel, err := s.hotels.GetByID(ctx, req.HotelID)
	if err != nil {
		return pricing.Result{}, err
	}

	rules, err := s.rules.ListActive(ctx, hotel.ID)
	if err != nil {
		return pricing.Result{}, err
	}

	newUser, err := s.isNewUser(ctx, req.UserID)
	if err != nil {
		return pricing.Result{}, err
	}

	result, err := pricing.ComputePrice(hotel.BasePrice, stay, rules, pricing.EvaluationContext{
		ReferenceDate: s.now().UTC(),
		IsNewUser:     newUser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRule) {
			s.log.ErrorContext(ctx, "active price rule cannot be evaluated",
				"hotel_id", hotel.ID,
				"error", err,
			)
		}
		return pricing.Result{}, err
	}

	s.log.DebugContext(ctx, "quote computed",
		"hotel_id", hotel.ID,
		"nights", result.Nights,
		"rooms", result.RoomCount,
		"rules", len(rules),
		"applied", len(result.AppliedRules),
		"final_price", result.FinalPrice.String(),
	)
	return result, nil
}

// isNewUser reports whether userID belongs to a guest without bookings.
// Anonymous quotes are never new users.
func (s *QuoteService) isNewUser(ctx context.Context, userID *uuid.UUID) (bool, error) {
	if userID == nil {
		return false, nil
	}
	n, err := s.bookings.CountByUser(ctx, *userID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrInvalidDateRange):
		return outcomeInvalidDateRange
	case errors.Is(err, domain.ErrInvalidRule):
		return outcomeInvalidRule
	case errors.Is(err, domain.ErrNoBasePrice):
		return outcomeNoBasePrice
	case errors.Is(err, domain.ErrValidation):
		return outcomeValidation
	default:
		return outcomeError
	}
}
