// Package service contains the business logic for the hotel pricing API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
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

// HotelService implements business logic for Hotel operations.
type HotelService struct {
	repo repo.HotelRepo
}

// NewHotelService constructs a HotelService backed by the provided HotelRepo.
func NewHotelService(r repo.HotelRepo) *HotelService {
	return &HotelService{repo: r}
}

// Create validates and persists a new hotel.
func (s *HotelService) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	if err := validateHotel(hotel); err != nil {
		return domain.Hotel{}, err
	}
	result, err := s.repo.Create(ctx, hotel)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single hotel. Returns domain.ErrNotFound if missing.
func (s *HotelService) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of hotels. Items is never nil.
func (s *HotelService) ListPaged(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Hotel], error) {
	hotels, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return domain.Page[domain.Hotel]{}, fmt.Errorf("service.HotelService.ListPaged: %w", err)
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return domain.Page[domain.Hotel]{Items: hotels, Total: total}, nil
}

// Update validates and persists changes to an existing hotel.
func (s *HotelService) Update(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	if err := validateHotel(hotel); err != nil {
		return domain.Hotel{}, err
	}
	result, err := s.repo.Update(ctx, hotel)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a hotel and, through the foreign key, its own price rules.
func (s *HotelService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.HotelService.Delete: %w", err)
	}
	return nil
}

// maxBasePrice is the largest base_price the hotels column holds.
var maxBasePrice = decimal.RequireFromString("99999999.99")

func validateHotel(h domain.Hotel) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !h.BasePrice.IsPositive() {
		return fmt.Errorf("%w: base_price must be greater than zero", domain.ErrValidation)
	}
	if h.BasePrice.GreaterThan(maxBasePrice) {
		return fmt.Errorf("%w: base_price must be at most %s", domain.ErrValidation, maxBasePrice)
	}
	if !h.BasePrice.Equal(h.BasePrice.Round(2)) {
		return fmt.Errorf("%w: base_price must have at most two decimal places", domain.ErrValidation)
	}
	return nil
}
