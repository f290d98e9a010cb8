package price

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type searcherFunc func(ctx context.Context, query string) (string, error)

func (f searcherFunc) SearchText(ctx context.Context, query string) (string, error) {
	return f(ctx, query)
}

func fixedNow(t *testing.T, date string) func() time.Time {
	t.Helper()
	now, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad fixture date %s: %v", date, err)
	}
	return func() time.Time { return now }
}

func TestExtractPrices(t *testing.T) {
	model := DefaultModel()
	text := "Flights from $450, sale $1,200.50, budget deal $5 and luxury $25000. EUR 320 also seen."
	rng := ExtractPrices(text, model)
	if rng == nil {
		t.Fatal("Expect a price range, but got nil")
	}
	if rng.Min != 320 {
		t.Errorf("Expect min 320, but got %f", rng.Min)
	}
	if rng.Max != 1200.50 {
		t.Errorf("Expect max 1200.50, but got %f", rng.Max)
	}
	expectAvg := (450 + 1200.50 + 320) / 3.0
	if rng.Average != expectAvg {
		t.Errorf("Expect average %f, but got %f", expectAvg, rng.Average)
	}
}

func TestExtractPricesNone(t *testing.T) {
	if rng := ExtractPrices("no numbers here, just 42 degrees", DefaultModel()); rng != nil {
		t.Errorf("Expect nil range without currency markers, but got %+v", rng)
	}
}

func TestFlightTrendWindows(t *testing.T) {
	model := DefaultModel()
	cases := []struct {
		daysUntil int
		expect    Trend
	}{
		{90, DecreasingTrend},
		{61, DecreasingTrend},
		{60, StableTrend},
		{31, StableTrend},
		{30, IncreasingTrend},
		{15, IncreasingTrend},
		{14, HighlyIncreasingTrend},
		{3, HighlyIncreasingTrend},
	}
	for _, c := range cases {
		if got := model.TrendFor(FlightCategory, c.daysUntil); got != c.expect {
			t.Errorf("Expect trend %s at %d days, but got %s", c.expect, c.daysUntil, got)
		}
	}
}

func TestHotelAndActivityTrends(t *testing.T) {
	model := DefaultModel()
	if got := model.TrendFor(HotelCategory, 45); got != StableTrend {
		t.Errorf("Expect hotel trend stable at 45 days, but got %s", got)
	}
	if got := model.TrendFor(HotelCategory, 10); got != IncreasingTrend {
		t.Errorf("Expect hotel trend increasing at 10 days, but got %s", got)
	}
	if got := model.TrendFor(ActivityCategory, 2); got != StableTrend {
		t.Errorf("Expect activity trend stable, but got %s", got)
	}
}

func TestFlightAlternatives(t *testing.T) {
	tool := New(WithNow(fixedNow(t, "2025-06-01")))
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("NYC to Tokyo", "2025-09-01", FlightCategory), out); err != nil {
		t.Fatalf("Error running price tool: %v", err)
	}
	if len(out.Alternatives) != 5 {
		t.Fatalf("Expect 5 alternatives, but got %d", len(out.Alternatives))
	}
	for i, alt := range out.Alternatives {
		if alt.OffsetDays == 0 {
			t.Error("Expect no zero-offset alternative")
		}
		if alt.OffsetDays >= 0 {
			t.Errorf("Expect earlier dates to sort first, but got offset %d at %d", alt.OffsetDays, i)
		}
		if alt.Factor != 0.9 {
			t.Errorf("Expect factor 0.9 for earlier flights, but got %f", alt.Factor)
		}
		if alt.Savings != HighSavings {
			t.Errorf("Expect high savings at factor 0.9, but got %s", alt.Savings)
		}
		if i > 0 && out.Alternatives[i-1].Factor > alt.Factor {
			t.Error("Expect alternatives sorted ascending by factor")
		}
	}
	if out.Trend != DecreasingTrend {
		t.Errorf("Expect decreasing trend 92 days out, but got %s", out.Trend)
	}
}

func TestHotelAlternativesNeutral(t *testing.T) {
	tool := New(WithNow(fixedNow(t, "2025-06-01")))
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("Barcelona hotels", "2025-06-20", HotelCategory), out); err != nil {
		t.Fatalf("Error running price tool: %v", err)
	}
	for _, alt := range out.Alternatives {
		if alt.Factor != 1.0 {
			t.Errorf("Expect hotel factor 1.0, but got %f", alt.Factor)
		}
		if alt.Savings != MediumSavings {
			t.Errorf("Expect medium savings at factor 1.0, but got %s", alt.Savings)
		}
	}
}

func TestPriceSearchFailure(t *testing.T) {
	tool := New(
		WithNow(fixedNow(t, "2025-06-01")),
		WithSearcher(searcherFunc(func(ctx context.Context, query string) (string, error) {
			return "", errors.New("search down")
		})),
	)
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("NYC to Tokyo", "2025-09-01", FlightCategory), out); err != nil {
		t.Fatalf("Expect nil error on search failure, but got %v", err)
	}
	if out.Prices != nil {
		t.Errorf("Expect nil prices on search failure, but got %+v", out.Prices)
	}
	if !out.Fallback {
		t.Error("Expect fallback flag set on search failure")
	}
	if out.Error == "" {
		t.Error("Expect embedded error message on search failure")
	}
	if out.Trend != DecreasingTrend {
		t.Errorf("Expect trend still computed, but got %s", out.Trend)
	}
}

func TestPriceInvalidDate(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("NYC to Tokyo", "September", FlightCategory), out); err != nil {
		t.Fatalf("Expect nil error for unparsable date, but got %v", err)
	}
	if out.Trend != UnknownTrend {
		t.Errorf("Expect unknown trend for unparsable date, but got %s", out.Trend)
	}
	if !out.Fallback {
		t.Error("Expect fallback flag set for unparsable date")
	}
}

func TestPriceReturnDate(t *testing.T) {
	var gotQuery string
	tool := New(
		WithSearcher(searcherFunc(func(ctx context.Context, query string) (string, error) {
			gotQuery = query
			return "round trips from $420", nil
		})),
		WithNow(fixedNow(t, "2025-06-01")),
	)
	input := NewInput("Boston to Lisbon", "2025-09-10", FlightCategory)
	input.ReturnDate = "2025-09-18"
	out := new(Output)
	if err := tool.Run(context.Background(), input, out); err != nil {
		t.Fatalf("Error running price tool: %v", err)
	}
	if !strings.Contains(gotQuery, "return 2025-09-18") {
		t.Errorf("Expect return date in the search query, but got %q", gotQuery)
	}
	if out.ReturnDate != "2025-09-18" {
		t.Errorf("Expect return date echoed, but got %q", out.ReturnDate)
	}
	if !strings.Contains(out.Info(), "2025-09-18") {
		t.Errorf("Expect return date in the report, but got %q", out.Info())
	}
}
