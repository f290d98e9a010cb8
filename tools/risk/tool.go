package risk

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const (
	WeatherCategory  = "weather"
	SafetyCategory   = "safety"
	HealthCategory   = "health"
	EpidemicCategory = "epidemic"
)

// Input schema for the RiskTool.
type Input struct {
	schema.Base
	// Destination to assess travel risk for.
	Destination string `json:"destination" jsonschema:"title=destination,description=Destination to assess travel risk for." validate:"required"`
	// DateRange of the trip, e.g. "2025-09-10 to 2025-09-15".
	DateRange string `json:"date_range,omitempty" jsonschema:"title=date_range,description=Date range of the trip."`
}

func NewInput(destination string) *Input {
	return &Input{Destination: destination}
}

func (in *Input) SetDateRange(dateRange string) *Input {
	in.DateRange = dateRange
	return in
}

// CategoryAssessment grades a single risk category.
type CategoryAssessment struct {
	// Category name.
	Category string `json:"category" jsonschema:"title=category,description=Risk category name."`
	// Level grade of the category.
	Level Level `json:"level" jsonschema:"title=level,description=Risk level of the category."`
	// Detail explains the grade.
	Detail string `json:"detail,omitempty" jsonschema:"title=detail,description=Explanation of the grade."`
	// Fallback marks a placeholder produced after a category failure.
	Fallback bool `json:"fallback,omitempty" jsonschema:"title=fallback,description=Whether this grade is a placeholder."`
	// Error holds the category failure message when Fallback is set.
	Error string `json:"error,omitempty" jsonschema:"title=error,description=Category failure message."`
}

// Output Schema for the output of the RiskTool.
type Output struct {
	schema.Base
	// Destination the assessment belongs to.
	Destination string `json:"destination" jsonschema:"title=destination,description=Destination the assessment belongs to."`
	// DateRange of the assessment, when one was given.
	DateRange string `json:"date_range,omitempty" jsonschema:"title=date_range,description=Date range of the assessment."`
	// Categories always holds one assessment per risk category.
	Categories []CategoryAssessment `json:"categories" jsonschema:"title=categories,description=Per-category assessments."`
	// Score is the combined risk in [0,100].
	Score float64 `json:"score" jsonschema:"title=score,description=Combined risk score."`
	// Overall buckets the score.
	Overall OverallLevel `json:"overall" jsonschema:"title=overall,description=Overall risk level."`
}

func (o Output) Title() string {
	return "Risk Assessment"
}

func (o Output) Info() string {
	var sb strings.Builder
	if o.DateRange != "" {
		fmt.Fprintf(&sb, "Risk assessment for %s (%s): %s (%.0f/100)\n", o.Destination, o.DateRange, o.Overall, o.Score)
	} else {
		fmt.Fprintf(&sb, "Risk assessment for %s: %s (%.0f/100)\n", o.Destination, o.Overall, o.Score)
	}
	for _, cat := range o.Categories {
		fmt.Fprintf(&sb, "- %s: %s", cat.Category, cat.Level)
		if cat.Detail != "" {
			fmt.Fprintf(&sb, " (%s)", cat.Detail)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type Option func(*Tool)

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

func WithSafetyClassifier(c Classifier) Option {
	return func(t *Tool) {
		t.safety = c
	}
}

func WithHealthClassifier(c Classifier) Option {
	return func(t *Tool) {
		t.health = c
	}
}

func WithEpidemicClassifier(c Classifier) Option {
	return func(t *Tool) {
		t.epidemic = c
	}
}

func WithToolOptions(opts ...tools.Option) Option {
	return func(t *Tool) {
		for _, opt := range opts {
			opt(&t.Config)
		}
	}
}

// Tool grades travel risk across weather, safety, health and epidemic categories.
type Tool struct {
	tools.Config
	searcher   TextSearcher
	conditions ConditionsLookup
	safety     Classifier
	health     Classifier
	epidemic   Classifier
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.safety = SafetyClassifier()
	ret.health = HealthClassifier()
	ret.epidemic = EpidemicClassifier()
	for _, opt := range opts {
		opt(ret)
	}
	if ret.Title() == "" {
		ret.SetTitle("RiskTool")
	}
	return ret
}

// Run runs the RiskTool synchronously with the given parameters.
// Category failures degrade to explanatory stubs instead of failing the run.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	if input.Destination == "" {
		err := errors.New("missing destination")
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	output.Destination = input.Destination
	output.DateRange = input.DateRange
	output.Categories = []CategoryAssessment{
		t.assessWeather(ctx, input.Destination),
		t.assessKeywords(ctx, SafetyCategory, t.safety, fmt.Sprintf("%s travel advisory safety", input.Destination)),
		t.assessKeywords(ctx, HealthCategory, t.health, fmt.Sprintf("%s travel health requirements vaccinations", input.Destination)),
		t.assessKeywords(ctx, EpidemicCategory, t.epidemic, fmt.Sprintf("%s covid travel restrictions", input.Destination)),
	}
	levels := make([]Level, 0, len(output.Categories))
	for _, cat := range output.Categories {
		levels = append(levels, cat.Level)
	}
	output.Score = OverallScore(levels)
	output.Overall = OverallFor(output.Score)
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

func (t *Tool) assessWeather(ctx context.Context, destination string) CategoryAssessment {
	ret := CategoryAssessment{Category: WeatherCategory}
	if t.conditions == nil {
		ret.Level = MediumLevel
		ret.Detail = "live weather data unavailable"
		ret.Fallback = true
		return ret
	}
	cond, err := t.conditions.CurrentConditions(ctx, destination)
	if err != nil || !cond.Available {
		ret.Level = MediumLevel
		ret.Detail = "live weather data unavailable"
		ret.Fallback = true
		if err != nil {
			ret.Error = err.Error()
		}
		return ret
	}
	switch cond.Category() {
	case weather.StormCategory:
		ret.Level = HighLevel
		ret.Detail = fmt.Sprintf("severe conditions reported: %s", cond.Description)
	case weather.SnowCategory:
		ret.Level = MediumLevel
		ret.Detail = fmt.Sprintf("snow reported: %s", cond.Description)
	default:
		ret.Level = LowLevel
		ret.Detail = fmt.Sprintf("current conditions: %s", cond.Description)
	}
	return ret
}

func (t *Tool) assessKeywords(ctx context.Context, category string, classifier Classifier, query string) CategoryAssessment {
	ret := CategoryAssessment{Category: category}
	if t.searcher == nil {
		ret.Level = MediumLevel
		ret.Detail = "no advisory data available"
		ret.Fallback = true
		return ret
	}
	text, err := t.searcher.SearchText(ctx, query)
	if err != nil {
		ret.Level = MediumLevel
		ret.Detail = "advisory lookup failed"
		ret.Fallback = true
		ret.Error = err.Error()
		return ret
	}
	ret.Level = classifier.Classify(text)
	ret.Detail = fmt.Sprintf("graded from current advisories (%s)", ret.Level)
	return ret
}
