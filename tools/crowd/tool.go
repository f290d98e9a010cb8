package crowd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/voyagent/voyagent/schema"
	"github.com/voyagent/voyagent/tools"
	"github.com/voyagent/voyagent/tools/weather"
)

// TextSearcher returns flattened search result text for a query.
type TextSearcher interface {
	SearchText(ctx context.Context, query string) (string, error)
}

// ConditionsLookup returns current weather conditions for a city.
type ConditionsLookup interface {
	CurrentConditions(ctx context.Context, city string) (weather.Conditions, error)
}

// Input schema for the CrowdTool.
type Input struct {
	schema.Base
	// Location to assess crowding for.
	Location string `json:"location" jsonschema:"title=location,description=Location to assess crowding for." validate:"required"`
	// Date of the visit in YYYY-MM-DD format.
	Date string `json:"date" jsonschema:"title=date,description=Date of the visit in YYYY-MM-DD format." validate:"required"`
	// VenueType optionally narrows the assessment, e.g. museum or beach.
	VenueType string `json:"venue_type,omitempty" jsonschema:"title=venue_type,description=Venue type to narrow the assessment."`
}

func NewInput(location, date string) *Input {
	return &Input{
		Location: location,
		Date:     date,
	}
}

// SlotEstimate is the density estimate of a single hourly slot.
type SlotEstimate struct {
	// Time of the slot, HH:00 local.
	Time string `json:"time" jsonschema:"title=time,description=Time of the slot."`
	// Score is the density in [0,100].
	Score float64 `json:"score" jsonschema:"title=score,description=Density score in [0,100]."`
	// Level buckets the score.
	Level Level `json:"level" jsonschema:"title=level,description=Density level."`
	// Confidence of the estimate in [0,1].
	Confidence float64 `json:"confidence" jsonschema:"title=confidence,description=Confidence of the estimate."`
	// Fallback marks a placeholder produced after a slot failure.
	Fallback bool `json:"fallback,omitempty" jsonschema:"title=fallback,description=Whether this slot is a placeholder."`
	// Error holds the slot failure message when Fallback is set.
	Error string `json:"error,omitempty" jsonschema:"title=error,description=Slot failure message."`
}

// Output Schema for the output of the CrowdTool.
type Output struct {
	schema.Base
	// Location the assessment belongs to.
	Location string `json:"location" jsonschema:"title=location,description=Location the assessment belongs to."`
	// VenueType of the assessment, when one was given.
	VenueType string `json:"venue_type,omitempty" jsonschema:"title=venue_type,description=Venue type of the assessment."`
	// Date of the assessment.
	Date string `json:"date" jsonschema:"title=date,description=Date of the assessment."`
	// Slots hourly estimates between 06:00 and 22:00.
	Slots []SlotEstimate `json:"slots" jsonschema:"title=slots,description=Hourly density estimates."`
	// BestTime is the least crowded slot.
	BestTime string `json:"best_time,omitempty" jsonschema:"title=best_time,description=Least crowded slot."`
	// AvoidTime is the most crowded slot.
	AvoidTime string `json:"avoid_time,omitempty" jsonschema:"title=avoid_time,description=Most crowded slot."`
	// Recommendations are visit planning notes.
	Recommendations []string `json:"recommendations,omitempty" jsonschema:"title=recommendations,description=Visit planning notes."`
}

func (o Output) Title() string {
	return "Crowd Assessment"
}

func (o Output) Info() string {
	var sb strings.Builder
	if o.VenueType != "" {
		fmt.Fprintf(&sb, "Crowd outlook for %s (%s) on %s:\n", o.Location, o.VenueType, o.Date)
	} else {
		fmt.Fprintf(&sb, "Crowd outlook for %s on %s:\n", o.Location, o.Date)
	}
	for _, slot := range o.Slots {
		fmt.Fprintf(&sb, "- %s: %.1f (%s)\n", slot.Time, slot.Score, slot.Level)
	}
	for _, rec := range o.Recommendations {
		fmt.Fprintf(&sb, "%s\n", rec)
	}
	return sb.String()
}

type Option func(*Tool)

func WithModel(m Model) Option {
	return func(t *Tool) {
		t.model = m
	}
}

func WithSearcher(s TextSearcher) Option {
	return func(t *Tool) {
		t.searcher = s
	}
}

func WithConditions(c ConditionsLookup) Option {
	return func(t *Tool) {
		t.conditions = c
	}
}

func WithToolOptions(opts ...tools.Option) Option {
	return func(t *Tool) {
		for _, opt := range opts {
			opt(&t.Config)
		}
	}
}

// Tool estimates hourly crowd density for a location and date.
type Tool struct {
	tools.Config
	model      Model
	searcher   TextSearcher
	conditions ConditionsLookup
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.model = DefaultModel()
	for _, opt := range opts {
		opt(ret)
	}
	if ret.Title() == "" {
		ret.SetTitle("CrowdTool")
	}
	return ret
}

const (
	firstSlotHour = 6
	lastSlotHour  = 22
)

// Run runs the CrowdTool synchronously with the given parameters.
// Slot-level failures degrade to placeholder estimates instead of failing the run.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	if input.Location == "" || input.Date == "" {
		err := errors.New("missing location or date")
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		err = fmt.Errorf("invalid date %q: %w", input.Date, err)
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	output.Location = input.Location
	output.VenueType = input.VenueType
	output.Date = input.Date

	weatherFactor := 1.0
	if t.conditions != nil {
		if cond, err := t.conditions.CurrentConditions(ctx, input.Location); err == nil {
			weatherFactor = t.model.WeatherFactor(cond.Category())
		}
	}
	eventFactor := 1.0
	if t.searcher != nil {
		query := fmt.Sprintf("%s events %s", input.Location, input.Date)
		if input.VenueType != "" {
			query = fmt.Sprintf("%s %s events %s", input.Location, input.VenueType, input.Date)
		}
		if text, err := t.searcher.SearchText(ctx, query); err == nil {
			eventFactor = t.model.EventFactor(text)
		}
	}

	weekday := date.Weekday()
	weekend := weekday == time.Saturday || weekday == time.Sunday
	dayFactor := t.model.DayFactor(weekend)
	seasonFactor := t.model.SeasonFactor(int(date.Month()))

	var sum float64
	output.Slots = make([]SlotEstimate, 0, lastSlotHour-firstSlotHour+1)
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slot, err := t.estimateSlot(hour, dayFactor, seasonFactor, weatherFactor, eventFactor)
		if err != nil {
			slot = fallbackSlot(hour, err)
		}
		sum += slot.Score
		output.Slots = append(output.Slots, slot)
	}
	mean := sum / float64(len(output.Slots))

	best, avoid := output.Slots[0], output.Slots[0]
	for _, slot := range output.Slots[1:] {
		if slot.Score < best.Score {
			best = slot
		}
		if slot.Score > avoid.Score {
			avoid = slot
		}
	}
	output.BestTime = best.Time
	output.AvoidTime = avoid.Time
	output.Recommendations = []string{
		fmt.Sprintf("Best time to visit: %s (%s crowds)", best.Time, best.Level),
		fmt.Sprintf("Avoid visiting around %s (%s crowds)", avoid.Time, avoid.Level),
	}
	if mean > 70 {
		output.Recommendations = append(output.Recommendations, "Expect heavy crowds all day. Book tickets and tables in advance.")
	} else if mean < 30 {
		output.Recommendations = append(output.Recommendations, "A quiet day overall. A spontaneous visit should work fine.")
	}
	if fn := t.EndHook(); fn != nil {
		fn(ctx, t, input, output)
	}
	return nil
}

// RunOrchestration executes the tool with untyped input for orchestration
func (t *Tool) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, errors.New("invalid tool input schema")
	}
	out := new(Output)
	if err := t.Run(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tool) estimateSlot(hour int, dayFactor, seasonFactor, weatherFactor, eventFactor float64) (SlotEstimate, error) {
	if hour < 0 || hour > 23 {
		return SlotEstimate{}, fmt.Errorf("hour %d out of range", hour)
	}
	score := t.model.Base * t.model.TimeFactor(hour) * dayFactor * seasonFactor * weatherFactor * eventFactor
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return SlotEstimate{
		Time:       fmt.Sprintf("%02d:00", hour),
		Score:      score,
		Level:      LevelForScore(score),
		Confidence: 0.7,
	}, nil
}

// fallbackSlot is the placeholder estimate used when a slot computation fails.
func fallbackSlot(hour int, err error) SlotEstimate {
	return SlotEstimate{
		Time:       fmt.Sprintf("%02d:00", hour),
		Score:      50,
		Level:      MediumLevel,
		Confidence: 0.5,
		Fallback:   true,
		Error:      err.Error(),
	}
}

// countKeywords counts the keywords present in the text, once per keyword.
func countKeywords(text string, keywords []string) int {
	text = strings.ToLower(text)
	var count int
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
