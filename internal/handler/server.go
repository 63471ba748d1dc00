// Package handler implements the HTTP handlers for the hotel pricing API.
// Methods are split into resource files (hotel.go, pricerule.go, quote.go, ...)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/pricing"
	"github.com/pkordes/hotel-pricing/internal/service"
)

// HotelServicer defines the business operations the hotel handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type HotelServicer interface {
	Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Hotel], error)
	Update(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceRuleServicer defines the rule administration operations.
type PriceRuleServicer interface {
	Create(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.PriceRule, error)
	ListPaged(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) (domain.Page[domain.PriceRule], error)
	Update(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuoteServicer prices a stay.
type QuoteServicer interface {
	Quote(ctx context.Context, req service.QuoteRequest) (pricing.Result, error)
}

// BookingServicer records and reads bookings.
type BookingServicer interface {
	Create(ctx context.Context, req service.QuoteRequest) (domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

// Server holds the dependencies of every API endpoint.
// Wire it in main.go by mounting Server.Routes on the root router.
type Server struct {
	hotels   HotelServicer
	rules    PriceRuleServicer
	quotes   QuoteServicer
	bookings BookingServicer

	validate *validator.Validate
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(hotels HotelServicer, rules PriceRuleServicer, quotes QuoteServicer, bookings BookingServicer, log *slog.Logger) *Server {
	return &Server{
		hotels:   hotels,
		rules:    rules,
		quotes:   quotes,
		bookings: bookings,
		validate: newValidator(),
		log:      log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, slog.Default())
}

// Routes returns a router serving every API endpoint.
// Route patterns use chi's {param} syntax so metrics can label by pattern.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody(codeNotFound, "no such route"))
	})

	r.Get("/healthz", s.GetHealth)

	r.Route("/hotels", func(r chi.Router) {
		r.Post("/", s.handle("hotel", s.CreateHotel))
		r.Get("/", s.handle("hotel", s.ListHotels))
		r.Get("/{id}", s.handle("hotel", s.GetHotel))
		r.Put("/{id}", s.handle("hotel", s.UpdateHotel))
		r.Delete("/{id}", s.handle("hotel", s.DeleteHotel))
	})

	r.Route("/pricing", func(r chi.Router) {
		r.Post("/quote", s.handle("hotel", s.Quote))

		r.Route("/rules", func(r chi.Router) {
			r.Post("/", s.handle("price rule", s.CreatePriceRule))
			r.Get("/", s.handle("price rule", s.ListPriceRules))
			r.Get("/{id}", s.handle("price rule", s.GetPriceRule))
			r.Put("/{id}", s.handle("price rule", s.UpdatePriceRule))
			r.Delete("/{id}", s.handle("price rule", s.DeletePriceRule))
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", s.handle("hotel", s.CreateBooking))
		r.Get("/{id}", s.handle("booking", s.GetBooking))
	})

	return r
}
