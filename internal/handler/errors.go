package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// Error codes carried in ErrorDetail.Code.
const (
	codeBadRequest       = "bad_request"
	codeNotFound         = "not_found"
	codeValidation       = "validation_error"
	codeInvalidDateRange = "invalid_date_range"
	codeInvalidRule      = "invalid_rule"
	codeNoBasePrice      = "no_base_price"
	codeTooLarge         = "request_too_large"
	codeInternal         = "internal_error"
)

// requestError is a failure detected in the handler before the service layer
// is called, such as an unparsable body or path parameter.
type requestError struct {
	status  int
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(format string, args ...any) error {
	return &requestError{status: http.StatusBadRequest, code: codeBadRequest, message: fmt.Sprintf(format, args...)}
}

func invalidRequest(message string) error {
	return &requestError{status: http.StatusUnprocessableEntity, code: codeValidation, message: message}
}

// handlerFunc is an endpoint that returns its failure instead of writing it.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc, mapping a returned error to a status
// and error body. resource names what a 404 was looking for.
func (s *Server) handle(resource string, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.writeError(w, r, resource, err)
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	var (
		reqErr   *requestError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge,
			errorBody(codeTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
	case errors.As(err, &reqErr):
		writeJSON(w, reqErr.status, errorBody(reqErr.code, reqErr.message))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(codeNotFound, resource+" not found"))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(codeValidation, unwrapMessage(err, domain.ErrValidation)))
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(codeInvalidDateRange, unwrapMessage(err, domain.ErrInvalidDateRange)))
	case errors.Is(err, domain.ErrInvalidRule):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(codeInvalidRule, unwrapMessage(err, domain.ErrInvalidRule)))
	case errors.Is(err, domain.ErrNoBasePrice):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(codeNoBasePrice, unwrapMessage(err, domain.ErrNoBasePrice)))
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorBody(codeInternal, "internal server error"))
	}
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// unwrapMessage extracts the human-readable part that follows sentinel in a
// wrapped error.
// e.g. "service.HotelService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
