package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing rule name, room count below one).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateRange is returned when a stay's check-out date is not after
// its check-in date.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrInvalidRule is returned when an active price rule cannot be evaluated,
// for example a rule whose start date falls after its end date.
var ErrInvalidRule = errors.New("invalid price rule")

// ErrNoBasePrice is returned when a price is requested against a base
// nightly rate that is zero or negative.
var ErrNoBasePrice = errors.New("no base price")
