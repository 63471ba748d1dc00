package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// CreateBooking handles POST /bookings. The stay is quoted and the booking is
// stored with that price.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) error {
	var body StayRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}

	booking, err := s.bookings.Create(r.Context(), requestToQuote(body))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, bookingToResponse(booking))
	return nil
}

// GetBooking handles GET /bookings/{id}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	booking, err := s.bookings.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, bookingToResponse(booking))
	return nil
}

func bookingToResponse(b domain.Booking) Booking {
	applied := b.AppliedRules
	if applied == nil {
		applied = []string{}
	}
	return Booking{
		ID:           b.ID,
		HotelID:      b.HotelID,
		UserID:       b.UserID,
		CheckInDate:  openapi_types.Date{Time: b.CheckInDate},
		CheckOutDate: openapi_types.Date{Time: b.CheckOutDate},
		RoomCount:    b.RoomCount,
		BasePrice:    b.BasePrice,
		DiscountRate: b.DiscountRate,
		FinalPrice:   b.FinalPrice,
		AppliedRules: applied,
		PricedAt:     b.PricedAt,
		CreatedAt:    b.CreatedAt,
	}
}
