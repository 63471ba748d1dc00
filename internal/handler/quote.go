package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-pricing/internal/pricing"
	"github.com/pkordes/hotel-pricing/internal/service"
)

// Quote handles POST /pricing/quote.
func (s *Server) Quote(w http.ResponseWriter, r *http.Request) error {
	var body StayRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}

	req := requestToQuote(body)
	result, err := s.quotes.Quote(r.Context(), req)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, resultToQuote(req, result))
	return nil
}

// requestToQuote converts a validated StayRequest into a service request.
func requestToQuote(body StayRequest) service.QuoteRequest {
	req := service.QuoteRequest{
		HotelID:   body.HotelID,
		CheckIn:   body.CheckInDate.Time,
		CheckOut:  body.CheckOutDate.Time,
		RoomCount: 1,
		UserID:    body.UserID,
	}
	if body.RoomCount != nil {
		req.RoomCount = *body.RoomCount
	}
	return req
}

func resultToQuote(req service.QuoteRequest, res pricing.Result) Quote {
	applied := make([]AppliedRule, len(res.AppliedRules))
	for i, a := range res.AppliedRules {
		applied[i] = AppliedRule{
			ID:           a.ID,
			Name:         a.Name,
			RuleType:     string(a.Type),
			DiscountRate: a.DiscountRate,
		}
	}
	breakdown := make([]NightPrice, len(res.Breakdown))
	for i, n := range res.Breakdown {
		breakdown[i] = NightPrice{
			Date:    openapi_types.Date{Time: n.Date},
			NetRate: n.NetRate,
			Price:   n.Price,
		}
	}
	return Quote{
		HotelID:      req.HotelID,
		CheckInDate:  openapi_types.Date{Time: pricing.CalendarDate(req.CheckIn)},
		CheckOutDate: openapi_types.Date{Time: pricing.CalendarDate(req.CheckOut)},
		Nights:       res.Nights,
		RoomCount:    res.RoomCount,
		BasePrice:    res.BasePrice,
		DiscountRate: res.EffectiveRate,
		FinalPrice:   res.FinalPrice,
		AppliedRules: applied,
		Breakdown:    breakdown,
		QuotedAt:     res.QuotedAt,
	}
}
