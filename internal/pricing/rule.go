package pricing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// Rule is a compiled, active price rule ready for evaluation.
type Rule struct {
	ID        uuid.UUID
	Name      string
	Rate      decimal.Decimal
	Condition Condition
}

// Condition decides whether a rule adjusts one night of a stay.
// The set of implementations is closed to this package; every rule type
// has exactly one variant and Compile is the only way to build one from a
// stored rule.
type Condition interface {
	Type() domain.RuleType
	matches(n night) bool
}

// night is everything a condition may look at for a single night.
type night struct {
	date time.Time
	stay Stay
	ctx  EvaluationContext
}

// Window is an inclusive range of calendar dates. A nil bound leaves that
// side open.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether day lies inside the window, bounds included.
func (w Window) Contains(day time.Time) bool {
	if w.Start != nil && day.Before(*w.Start) {
		return false
	}
	if w.End != nil && day.After(*w.End) {
		return false
	}
	return true
}

// Season matches nights inside its window.
type Season struct{ Window Window }

// Holiday matches nights inside its window. It differs from Season only in
// how it is labelled to guests and in reports.
type Holiday struct{ Window Window }

// Weekend matches nights falling on Day, or on Saturday and Sunday when Day
// is nil.
type Weekend struct{ Day *time.Weekday }

// NewUser matches every night when the guest has never booked before.
type NewUser struct{}

// LongStay matches every night of stays at least MinNights long.
type LongStay struct{ MinNights int }

// Custom matches when every populated constraint holds. With no constraint
// populated it matches unconditionally.
type Custom struct {
	Window    Window
	Day       *time.Weekday
	MinNights int
}

func (Season) Type() domain.RuleType   { return domain.RuleSeason }
func (Holiday) Type() domain.RuleType  { return domain.RuleHoliday }
func (Weekend) Type() domain.RuleType  { return domain.RuleWeekend }
func (NewUser) Type() domain.RuleType  { return domain.RuleNewUser }
func (LongStay) Type() domain.RuleType { return domain.RuleLongStay }
func (Custom) Type() domain.RuleType   { return domain.RuleCustom }

func (c Season) matches(n night) bool  { return c.Window.Contains(n.date) }
func (c Holiday) matches(n night) bool { return c.Window.Contains(n.date) }

func (c Weekend) matches(n night) bool {
	wd := n.date.Weekday()
	if c.Day != nil {
		return wd == *c.Day
	}
	return wd == time.Saturday || wd == time.Sunday
}

func (NewUser) matches(n night) bool { return n.ctx.IsNewUser }

func (c LongStay) matches(n night) bool { return n.stay.Nights() >= c.MinNights }

func (c Custom) matches(n night) bool {
	if !c.Window.Contains(n.date) {
		return false
	}
	if c.Day != nil && n.date.Weekday() != *c.Day {
		return false
	}
	return n.stay.Nights() >= c.MinNights
}

// Compile turns a stored rule into its typed form. It fails with
// domain.ErrInvalidRule when the rule cannot be evaluated: an inverted date
// range, an unknown type, or a weekday outside 0-6 on a type that uses one.
// Fields a rule type does not use are ignored.
func Compile(r domain.PriceRule) (Rule, error) {
	window, err := windowOf(r)
	if err != nil {
		return Rule{}, err
	}

	var cond Condition
	switch r.Type {
	case domain.RuleSeason:
		cond = Season{Window: window}
	case domain.RuleHoliday:
		cond = Holiday{Window: window}
	case domain.RuleWeekend:
		day, err := weekdayOf(r)
		if err != nil {
			return Rule{}, err
		}
		cond = Weekend{Day: day}
	case domain.RuleNewUser:
		cond = NewUser{}
	case domain.RuleLongStay:
		cond = LongStay{MinNights: minNightsOf(r)}
	case domain.RuleCustom:
		day, err := weekdayOf(r)
		if err != nil {
			return Rule{}, err
		}
		cond = Custom{Window: window, Day: day, MinNights: minNightsOf(r)}
	default:
		return Rule{}, fmt.Errorf("%w: rule %s has unknown type %q", domain.ErrInvalidRule, r.ID, r.Type)
	}

	return Rule{ID: r.ID, Name: r.Name, Rate: r.DiscountRate, Condition: cond}, nil
}

func windowOf(r domain.PriceRule) (Window, error) {
	var w Window
	if r.StartDate != nil {
		d := CalendarDate(*r.StartDate)
		w.Start = &d
	}
	if r.EndDate != nil {
		d := CalendarDate(*r.EndDate)
		w.End = &d
	}
	if w.Start != nil && w.End != nil && w.Start.After(*w.End) {
		return Window{}, fmt.Errorf("%w: rule %s starts after it ends", domain.ErrInvalidRule, r.ID)
	}
	return w, nil
}

func weekdayOf(r domain.PriceRule) (*time.Weekday, error) {
	if r.DayOfWeek == nil {
		return nil, nil
	}
	if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: rule %s has day_of_week %d outside 0-6", domain.ErrInvalidRule, r.ID, *r.DayOfWeek)
	}
	wd := time.Weekday(*r.DayOfWeek)
	return &wd, nil
}

// minNightsOf returns 0 for rules without a threshold, which every stay meets.
func minNightsOf(r domain.PriceRule) int {
	if r.MinNights == nil {
		return 0
	}
	return *r.MinNights
}
