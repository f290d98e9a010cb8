package travel

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TripQuery describes the trip to plan.
type TripQuery struct {
	// Origin city the traveler departs from.
	Origin string `json:"origin" validate:"required"`
	// Destination city or choice of cities.
	Destination string `json:"destination" validate:"required"`
	// StartDate of the trip, YYYY-MM-DD.
	StartDate string `json:"start_date" validate:"required"`
	// EndDate of the trip, YYYY-MM-DD.
	EndDate string `json:"end_date" validate:"required"`
	// Interests of the traveler, e.g. food, museums.
	Interests []string `json:"interests,omitempty"`
	// Language code for the language briefing, e.g. es. Defaults to en.
	Language string `json:"language,omitempty"`
}

// Validate checks required fields and date ordering.
func (q *TripQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return err
	}
	start, end, err := q.DateRange()
	if err != nil {
		return err
	}
	if !end.After(start) {
		return fmt.Errorf("end date %s must be after start date %s", q.EndDate, q.StartDate)
	}
	return nil
}

// DateRange parses the trip dates.
func (q TripQuery) DateRange() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", q.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", q.EndDate, err)
	}
	return start, end, nil
}

// Nights returns the number of nights between the trip dates.
func (q TripQuery) Nights() int {
	start, end, err := q.DateRange()
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

func (q TripQuery) Title() string {
	return "Trip Details"
}

func (q TripQuery) Info() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Traveling from %s to %s\n", q.Origin, q.Destination)
	fmt.Fprintf(&sb, "Dates: %s to %s (%d nights)\n", q.StartDate, q.EndDate, q.Nights())
	if len(q.Interests) > 0 {
		fmt.Fprintf(&sb, "Interests: %s\n", strings.Join(q.Interests, ", "))
	}
	return sb.String()
}
