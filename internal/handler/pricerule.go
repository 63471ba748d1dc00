package handler

import (
	"net/http"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// CreatePriceRule handles POST /pricing/rules.
func (s *Server) CreatePriceRule(w http.ResponseWriter, r *http.Request) error {
	var body PriceRuleRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}

	created, err := s.rules.Create(r.Context(), requestToRule(openapi_types.UUID{}, body))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, ruleToResponse(created))
	return nil
}

// ListPriceRules handles GET /pricing/rules.
// ?hotel_id= returns that hotel's rules plus the global ones; ?is_active=
// filters on the active flag. Both combine with ?page= and ?limit=.
func (s *Server) ListPriceRules(w http.ResponseWriter, r *http.Request) error {
	var filter domain.RuleFilter
	if err := queryParam(r, "hotel_id", &filter.HotelID); err != nil {
		return err
	}
	if err := queryParam(r, "is_active", &filter.IsActive); err != nil {
		return err
	}
	params, err := pageParams(r)
	if err != nil {
		return err
	}

	page, err := s.rules.ListPaged(r.Context(), filter, params)
	if err != nil {
		return err
	}

	data := make([]PriceRule, len(page.Items))
	for i, rule := range page.Items {
		data[i] = ruleToResponse(rule)
	}
	writeJSON(w, http.StatusOK, PriceRuleList{Data: data, Pagination: toPagination(params, page.Total)})
	return nil
}

// GetPriceRule handles GET /pricing/rules/{id}.
func (s *Server) GetPriceRule(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	rule, err := s.rules.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, ruleToResponse(rule))
	return nil
}

// UpdatePriceRule handles PUT /pricing/rules/{id}. The body replaces the rule.
func (s *Server) UpdatePriceRule(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	var body PriceRuleRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}

	updated, err := s.rules.Update(r.Context(), requestToRule(id, body))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, ruleToResponse(updated))
	return nil
}

// DeletePriceRule handles DELETE /pricing/rules/{id}.
func (s *Server) DeletePriceRule(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err := s.rules.Delete(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// --- mapping helpers --------------------------------------------------------

func requestToRule(id openapi_types.UUID, body PriceRuleRequest) domain.PriceRule {
	rule := domain.PriceRule{
		ID:           id,
		HotelID:      body.HotelID,
		Name:         strings.TrimSpace(body.Name),
		Type:         domain.RuleType(body.RuleType),
		StartDate:    fromDate(body.StartDate),
		EndDate:      fromDate(body.EndDate),
		DayOfWeek:    body.DayOfWeek,
		MinNights:    body.MinNights,
		DiscountRate: body.DiscountRate,
		IsActive:     true,
	}
	if body.IsActive != nil {
		rule.IsActive = *body.IsActive
	}
	if body.Description != nil {
		rule.Description = *body.Description
	}
	return rule
}

func ruleToResponse(rule domain.PriceRule) PriceRule {
	resp := PriceRule{
		ID:           rule.ID,
		HotelID:      rule.HotelID,
		Name:         rule.Name,
		RuleType:     string(rule.Type),
		StartDate:    toDate(rule.StartDate),
		EndDate:      toDate(rule.EndDate),
		DayOfWeek:    rule.DayOfWeek,
		MinNights:    rule.MinNights,
		DiscountRate: rule.DiscountRate,
		IsActive:     rule.IsActive,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
	if rule.Description != "" {
		resp.Description = &rule.Description
	}
	return resp
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
