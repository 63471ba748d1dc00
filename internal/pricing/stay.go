package pricing

import (
	"fmt"
	"time"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// Upper bounds on a single stay.
const (
	MaxNights = 365
	MaxRooms  = 100
)

const secondsPerDay = 24 * 60 * 60

// Stay is a validated booking interval. The zero value is not a valid stay;
// build one with NewStay.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
	rooms    int
}

// NewStay normalises both dates to calendar days and checks the stay
// invariants: check-out strictly after check-in, at most MaxNights nights and
// between 1 and MaxRooms rooms.
func NewStay(checkIn, checkOut time.Time, rooms int) (Stay, error) {
	s := Stay{
		checkIn:  CalendarDate(checkIn),
		checkOut: CalendarDate(checkOut),
		rooms:    rooms,
	}
	if err := s.validate(); err != nil {
		return Stay{}, fmt.Errorf("pricing.NewStay: %w", err)
	}
	return s, nil
}

// CheckIn returns the check-in calendar date (UTC midnight).
func (s Stay) CheckIn() time.Time { return s.checkIn }

// CheckOut returns the check-out calendar date (UTC midnight).
func (s Stay) CheckOut() time.Time { return s.checkOut }

// RoomCount returns the number of rooms booked.
func (s Stay) RoomCount() int { return s.rooms }

// Nights returns the number of nights between check-in and check-out.
func (s Stay) Nights() int {
	return int((s.checkOut.Unix() - s.checkIn.Unix()) / secondsPerDay)
}

func (s Stay) validate() error {
	if !s.checkOut.After(s.checkIn) {
		return fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalidDateRange)
	}
	if n := s.Nights(); n > MaxNights {
		return fmt.Errorf("%w: stay of %d nights exceeds the maximum of %d", domain.ErrValidation, n, MaxNights)
	}
	if s.rooms < 1 {
		return fmt.Errorf("%w: room count must be at least 1", domain.ErrValidation)
	}
	if s.rooms > MaxRooms {
		return fmt.Errorf("%w: room count must be at most %d", domain.ErrValidation, MaxRooms)
	}
	return nil
}

// CalendarDate drops the time of day from t, keeping the year, month and day
// as seen in t's own location, and returns that day at UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
