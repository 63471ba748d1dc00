package handler

import (
	"net/http"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// CreateHotel handles POST /hotels.
func (s *Server) CreateHotel(w http.ResponseWriter, r *http.Request) error {
	var body HotelRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}

	created, err := s.hotels.Create(r.Context(), requestToHotel(openapi_types.UUID{}, body))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, hotelToResponse(created))
	return nil
}

// ListHotels handles GET /hotels.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListHotels(w http.ResponseWriter, r *http.Request) error {
	params, err := pageParams(r)
	if err != nil {
		return err
	}

	page, err := s.hotels.ListPaged(r.Context(), params)
	if err != nil {
		return err
	}

	data := make([]Hotel, len(page.Items))
	for i, h := range page.Items {
		data[i] = hotelToResponse(h)
	}
	writeJSON(w, http.StatusOK, HotelList{Data: data, Pagination: toPagination(params, page.Total)})
	return nil
}

// GetHotel handles GET /hotels/{id}.
func (s *Server) GetHotel(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	hotel, err := s.hotels.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, hotelToResponse(hotel))
	return nil
}

// UpdateHotel handles PUT /hotels/{id}.
func (s *Server) UpdateHotel(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	var body HotelRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}

	updated, err := s.hotels.Update(r.Context(), requestToHotel(id, body))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, hotelToResponse(updated))
	return nil
}

// DeleteHotel handles DELETE /hotels/{id}.
func (s *Server) DeleteHotel(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err := s.hotels.Delete(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// --- mapping helpers --------------------------------------------------------

func pageParams(r *http.Request) (domain.PaginationParams, error) {
	var page, limit *int
	if err := queryParam(r, "page", &page); err != nil {
		return domain.PaginationParams{}, err
	}
	if err := queryParam(r, "limit", &limit); err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.NewPaginationParams(page, limit), nil
}

func toPagination(p domain.PaginationParams, total int64) Pagination {
	return Pagination{Page: p.Page, Limit: p.Limit, Total: int(total)}
}

func requestToHotel(id openapi_types.UUID, body HotelRequest) domain.Hotel {
	h := domain.Hotel{
		ID:        id,
		Name:      strings.TrimSpace(body.Name),
		BasePrice: body.BasePrice,
	}
	if body.City != nil {
		h.City = strings.TrimSpace(*body.City)
	}
	return h
}

func hotelToResponse(h domain.Hotel) Hotel {
	resp := Hotel{
		ID:        h.ID,
		Name:      h.Name,
		BasePrice: h.BasePrice,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
	if h.City != "" {
		resp.City = &h.City
	}
	return resp
}
