package crowd

import (
	"github.com/voyagent/voyagent/tools/weather"
)

// Level buckets a density score.
type Level = string

const (
	VeryHighLevel Level = "very_high"
	HighLevel     Level = "high"
	MediumLevel   Level = "medium"
	LowLevel      Level = "low"
	VeryLowLevel  Level = "very_low"
)

// LevelForScore maps a density score to its level.
func LevelForScore(score float64) Level {
	switch {
	case score >= 80:
		return VeryHighLevel
	case score >= 60:
		return HighLevel
	case score >= 40:
		return MediumLevel
	case score >= 20:
		return LowLevel
	}
	return VeryLowLevel
}

// Model holds the density factor tables. The numbers are defaults,
// not a calibrated model; callers may supply their own.
type Model struct {
	// Base is the density before any factor is applied.
	Base float64
	// PeakFactor applies within PeakHours, OffPeakFactor within OffPeakHours.
	PeakFactor    float64
	OffPeakFactor float64
	// WeekdayFactor and WeekendFactor scale by day of week.
	WeekdayFactor float64
	WeekendFactor float64
	// SummerFactor applies in SummerMonths, WinterFactor in WinterMonths.
	SummerFactor float64
	WinterFactor float64
	// WeatherFactors scales by weather category. Missing categories count as 1.
	WeatherFactors map[weather.Category]float64
	// EventKeywords are scanned in search text. More than ManyEventsThreshold
	// hits applies ManyEventsFactor, more than SomeEventsThreshold applies
	// SomeEventsFactor.
	EventKeywords       []string
	ManyEventsThreshold int
	SomeEventsThreshold int
	ManyEventsFactor    float64
	SomeEventsFactor    float64
	// PeakHours and OffPeakHours are inclusive hour ranges.
	PeakHours    [][2]int
	OffPeakHours [][2]int
	SummerMonths []int
	WinterMonths []int
}

// DefaultModel returns the stock factor tables.
func DefaultModel() Model {
	return Model{
		Base:          60.0,
		PeakFactor:    1.3,
		OffPeakFactor: 0.6,
		WeekdayFactor: 0.8,
		WeekendFactor: 1.4,
		SummerFactor:  1.2,
		WinterFactor:  1.1,
		WeatherFactors: map[weather.Category]float64{
			weather.StormCategory: 0.3,
			weather.RainCategory:  0.7,
			weather.SnowCategory:  0.5,
			weather.ClearCategory: 1.2,
		},
		EventKeywords:       []string{"festival", "concert", "event", "celebration", "conference", "exhibition"},
		ManyEventsThreshold: 3,
		SomeEventsThreshold: 1,
		ManyEventsFactor:    1.5,
		SomeEventsFactor:    1.2,
		PeakHours:           [][2]int{{9, 11}, {14, 16}, {19, 21}},
		OffPeakHours:        [][2]int{{6, 8}, {22, 23}},
		SummerMonths:        []int{6, 7, 8},
		WinterMonths:        []int{12, 1, 2},
	}
}

func inRanges(hour int, ranges [][2]int) bool {
	for _, r := range ranges {
		if hour >= r[0] && hour <= r[1] {
			return true
		}
	}
	return false
}

func inMonths(month int, months []int) bool {
	for _, m := range months {
		if month == m {
			return true
		}
	}
	return false
}

// TimeFactor returns the hour-of-day factor.
func (m Model) TimeFactor(hour int) float64 {
	if inRanges(hour, m.PeakHours) {
		return m.PeakFactor
	}
	if inRanges(hour, m.OffPeakHours) {
		return m.OffPeakFactor
	}
	return 1.0
}

// DayFactor returns the day-of-week factor.
func (m Model) DayFactor(weekend bool) float64 {
	if weekend {
		return m.WeekendFactor
	}
	return m.WeekdayFactor
}

// SeasonFactor returns the month-of-year factor.
func (m Model) SeasonFactor(month int) float64 {
	if inMonths(month, m.SummerMonths) {
		return m.SummerFactor
	}
	if inMonths(month, m.WinterMonths) {
		return m.WinterFactor
	}
	return 1.0
}

// WeatherFactor returns the weather category factor.
func (m Model) WeatherFactor(category weather.Category) float64 {
	if f, ok := m.WeatherFactors[category]; ok {
		return f
	}
	return 1.0
}

// EventFactor counts event keywords in the search text and returns the
// crowding factor.
func (m Model) EventFactor(text string) float64 {
	count := countKeywords(text, m.EventKeywords)
	if count > m.ManyEventsThreshold {
		return m.ManyEventsFactor
	}
	if count > m.SomeEventsThreshold {
		return m.SomeEventsFactor
	}
	return 1.0
}
