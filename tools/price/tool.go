package price

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/voyagent/voyagent/schema"
	"github.com/voyagent/voyagent/tools"
)

// TextSearcher returns flattened search result text for a query.
type TextSearcher interface {
	SearchText(ctx context.Context, query string) (string, error)
}

// Input schema for the PriceTool.
type Input struct {
	schema.Base
	// Route or item to price, e.g. "New York to Tokyo" or "Barcelona hotels".
	Route string `json:"route" jsonschema:"title=route,description=Route or item to price." validate:"required"`
	// Date of travel in YYYY-MM-DD format.
	Date string `json:"date" jsonschema:"title=date,description=Date of travel in YYYY-MM-DD format." validate:"required"`
	// ReturnDate of a round trip in YYYY-MM-DD format, when one exists.
	ReturnDate string `json:"return_date,omitempty" jsonschema:"title=return_date,description=Return date of a round trip in YYYY-MM-DD format."`
	// Category flight, hotel or activity.
	Category Category `json:"category,omitempty" jsonschema:"title=category,enum=flight,enum=hotel,enum=activity,default=flight,description=Category of the item to price."`
}

func NewInput(route, date string, category Category) *Input {
	if category == "" {
		category = FlightCategory
	}
	return &Input{
		Route:    route,
		Date:     date,
		Category: category,
	}
}

// Range summarizes prices found in search results.
type Range struct {
	// Average of the extracted prices.
	Average float64 `json:"average" jsonschema:"title=average,description=Average of the extracted prices."`
	// Min of the extracted prices.
	Min float64 `json:"min" jsonschema:"title=min,description=Minimum of the extracted prices."`
	// Max of the extracted prices.
	Max float64 `json:"max" jsonschema:"title=max,description=Maximum of the extracted prices."`
}

// Alternative is a shifted travel date with its expected price factor.
type Alternative struct {
	// Date of the alternative in YYYY-MM-DD format.
	Date string `json:"date" jsonschema:"title=date,description=Date of the alternative."`
	// OffsetDays from the requested date, negative for earlier.
	OffsetDays int `json:"offset_days" jsonschema:"title=offset_days,description=Offset from the requested date in days."`
	// Factor is the expected price multiplier.
	Factor float64 `json:"factor" jsonschema:"title=factor,description=Expected price multiplier."`
	// Savings buckets the factor.
	Savings Savings `json:"savings" jsonschema:"title=savings,description=Expected savings level."`
}

// Output Schema for the output of the PriceTool.
type Output struct {
	schema.Base
	// Route the analysis belongs to.
	Route string `json:"route" jsonschema:"title=route,description=Route the analysis belongs to."`
	// Date of the analysis.
	Date string `json:"date" jsonschema:"title=date,description=Date of the analysis."`
	// ReturnDate of the analysis, when one was given.
	ReturnDate string `json:"return_date,omitempty" jsonschema:"title=return_date,description=Return date of the analysis."`
	// Category of the analysis.
	Category Category `json:"category" jsonschema:"title=category,description=Category of the analysis."`
	// Prices summarizes extracted prices; nil when none were found.
	Prices *Range `json:"prices,omitempty" jsonschema:"title=prices,description=Extracted price range."`
	// Trend is the expected direction until the travel date.
	Trend Trend `json:"trend" jsonschema:"title=trend,description=Expected price direction."`
	// Alternatives are cheaper or comparable nearby dates.
	Alternatives []Alternative `json:"alternatives,omitempty" jsonschema:"title=alternatives,description=Nearby alternative dates."`
	// Recommendation is a category-specific booking note.
	Recommendation string `json:"recommendation,omitempty" jsonschema:"title=recommendation,description=Booking note."`
	// Fallback marks a degraded analysis.
	Fallback bool `json:"fallback,omitempty" jsonschema:"title=fallback,description=Whether the analysis is degraded."`
	// Error holds the failure message when Fallback is set.
	Error string `json:"error,omitempty" jsonschema:"title=error,description=Failure message."`
}

func (o Output) Title() string {
	return "Price Analysis"
}

func (o Output) Info() string {
	var sb strings.Builder
	if o.ReturnDate != "" {
		fmt.Fprintf(&sb, "Price outlook for %s (%s), %s to %s:\n", o.Route, o.Category, o.Date, o.ReturnDate)
	} else {
		fmt.Fprintf(&sb, "Price outlook for %s (%s) on %s:\n", o.Route, o.Category, o.Date)
	}
	if o.Prices != nil {
		fmt.Fprintf(&sb, "- observed prices: avg %.0f, min %.0f, max %.0f\n", o.Prices.Average, o.Prices.Min, o.Prices.Max)
	}
	fmt.Fprintf(&sb, "- trend: %s\n", o.Trend)
	for _, alt := range o.Alternatives {
		fmt.Fprintf(&sb, "- alternative %s (%+d days): factor %.2f, savings %s\n", alt.Date, alt.OffsetDays, alt.Factor, alt.Savings)
	}
	if o.Recommendation != "" {
		fmt.Fprintf(&sb, "%s\n", o.Recommendation)
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

func WithNow(fn func() time.Time) Option {
	return func(t *Tool) {
		t.now = fn
	}
}

func WithToolOptions(opts ...tools.Option) Option {
	return func(t *Tool) {
		for _, opt := range opts {
			opt(&t.Config)
		}
	}
}

// Tool analyzes prices and suggests cheaper nearby dates.
type Tool struct {
	tools.Config
	model    Model
	searcher TextSearcher
	now      func() time.Time
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.model = DefaultModel()
	ret.now = time.Now
	for _, opt := range opts {
		opt(ret)
	}
	if ret.Title() == "" {
		ret.SetTitle("PriceTool")
	}
	return ret
}

// Run runs the PriceTool synchronously with the given parameters.
// Stage failures degrade to a partial result instead of failing the run.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	if input.Route == "" || input.Date == "" {
		err := errors.New("missing route or date")
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	category := input.Category
	if category == "" {
		category = FlightCategory
	}
	output.Route = input.Route
	output.Date = input.Date
	output.ReturnDate = input.ReturnDate
	output.Category = category

	if t.searcher != nil {
		query := fmt.Sprintf("%s %s prices %s", input.Route, category, input.Date)
		if input.ReturnDate != "" {
			query = fmt.Sprintf("%s return %s", query, input.ReturnDate)
		}
		if text, err := t.searcher.SearchText(ctx, query); err != nil {
			output.Fallback = true
			output.Error = err.Error()
		} else {
			output.Prices = ExtractPrices(text, t.model)
		}
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		output.Trend = UnknownTrend
		output.Fallback = true
		output.Error = fmt.Sprintf("invalid date %q", input.Date)
	} else {
		daysUntil := int(date.Sub(t.now()).Hours() / 24)
		output.Trend = t.model.TrendFor(category, daysUntil)
		output.Alternatives = t.alternatives(date, category)
	}
	output.Recommendation = t.recommendation(category, output.Trend)
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

// alternatives scans nearby dates and keeps the cheapest ones.
func (t *Tool) alternatives(date time.Time, category Category) []Alternative {
	window := t.model.AlternativeWindow
	alts := make([]Alternative, 0, window*2)
	for offset := -window; offset <= window; offset++ {
		if offset == 0 {
			continue
		}
		factor := t.model.FactorFor(category, offset)
		alts = append(alts, Alternative{
			Date:       date.AddDate(0, 0, offset).Format("2006-01-02"),
			OffsetDays: offset,
			Factor:     factor,
			Savings:    t.model.SavingsFor(factor),
		})
	}
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].Factor < alts[j].Factor
	})
	if len(alts) > t.model.MaxAlternatives {
		alts = alts[:t.model.MaxAlternatives]
	}
	return alts
}

func (t *Tool) recommendation(category Category, trend Trend) string {
	switch category {
	case FlightCategory:
		switch trend {
		case DecreasingTrend:
			return "Fares are likely to drop. Waiting a few weeks before booking could pay off."
		case HighlyIncreasingTrend:
			return "Fares climb fast this close to departure. Book as soon as possible."
		case IncreasingTrend:
			return "Fares are trending up. Book soon to lock in the current price."
		}
		return "Fares look stable. Book when the rest of the plan is settled."
	case HotelCategory:
		if trend == IncreasingTrend {
			return "Room rates rise close to the stay. Reserve a refundable rate now."
		}
		return "Room rates look stable. Compare a few properties before booking."
	case ActivityCategory:
		return "Activity prices rarely move. Book for availability, not price."
	}
	return ""
}

var priceRE = regexp.MustCompile(`(?:[$€£¥]|USD|EUR|GBP|JPY)\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)

// ExtractPrices pulls plausible prices near currency markers out of search text.
// Returns nil when nothing plausible was found.
func ExtractPrices(text string, model Model) *Range {
	matches := priceRE.FindAllStringSubmatch(text, -1)
	var prices []float64
	for _, m := range matches {
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if v < model.MinPlausible || v > model.MaxPlausible {
			continue
		}
		prices = append(prices, v)
	}
	if len(prices) == 0 {
		return nil
	}
	rng := &Range{Min: prices[0], Max: prices[0]}
	var sum float64
	for _, v := range prices {
		sum += v
		if v < rng.Min {
			rng.Min = v
		}
		if v > rng.Max {
			rng.Max = v
		}
	}
	rng.Average = sum / float64(len(prices))
	return rng
}
