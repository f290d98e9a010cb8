package price

// Category of a purchasable travel item.
type Category = string

const (
	FlightCategory   Category = "flight"
	HotelCategory    Category = "hotel"
	ActivityCategory Category = "activity"
)

// Trend describes the expected price direction until the travel date.
type Trend = string

const (
	DecreasingTrend       Trend = "decreasing"
	StableTrend           Trend = "stable"
	IncreasingTrend       Trend = "increasing"
	HighlyIncreasingTrend Trend = "highly_increasing"
	UnknownTrend          Trend = "unknown"
)

// Savings buckets the expected savings of an alternative date.
type Savings = string

const (
	HighSavings   Savings = "high"
	MediumSavings Savings = "medium"
	LowSavings    Savings = "low"
)

// Model holds the price heuristics parameters. The numbers are defaults,
// not calibrated values; callers may supply their own.
type Model struct {
	// MinPlausible and MaxPlausible bound prices accepted during extraction.
	MinPlausible float64
	MaxPlausible float64
	// Flight trend windows, in days before travel.
	FlightDecreasingAfter int
	FlightStableAfter     int
	FlightIncreasingAfter int
	HotelStableAfter      int
	// Alternative date scan half-window, in days.
	AlternativeWindow int
	// MaxAlternatives caps the suggestions list.
	MaxAlternatives int
	// EarlierFlightFactor and LaterFlightFactor scale flight prices by shift direction.
	EarlierFlightFactor float64
	LaterFlightFactor   float64
	// HighSavingsBelow and MediumSavingsBelow bucket the price factor.
	HighSavingsBelow   float64
	MediumSavingsBelow float64
}

// DefaultModel returns the stock heuristics parameters.
func DefaultModel() Model {
	return Model{
		MinPlausible:          10,
		MaxPlausible:          10000,
		FlightDecreasingAfter: 60,
		FlightStableAfter:     30,
		FlightIncreasingAfter: 14,
		HotelStableAfter:      30,
		AlternativeWindow:     7,
		MaxAlternatives:       5,
		EarlierFlightFactor:   0.9,
		LaterFlightFactor:     1.1,
		HighSavingsBelow:      0.95,
		MediumSavingsBelow:    1.05,
	}
}

// TrendFor returns the expected price trend for a category given the
// number of days until travel.
func (m Model) TrendFor(category Category, daysUntil int) Trend {
	switch category {
	case FlightCategory:
		switch {
		case daysUntil > m.FlightDecreasingAfter:
			return DecreasingTrend
		case daysUntil > m.FlightStableAfter:
			return StableTrend
		case daysUntil > m.FlightIncreasingAfter:
			return IncreasingTrend
		}
		return HighlyIncreasingTrend
	case HotelCategory:
		if daysUntil > m.HotelStableAfter {
			return StableTrend
		}
		return IncreasingTrend
	case ActivityCategory:
		return StableTrend
	}
	return UnknownTrend
}

// FactorFor returns the price factor of shifting a trip by offset days.
func (m Model) FactorFor(category Category, offset int) float64 {
	if category != FlightCategory {
		return 1.0
	}
	if offset < 0 {
		return m.EarlierFlightFactor
	}
	return m.LaterFlightFactor
}

// SavingsFor buckets a price factor.
func (m Model) SavingsFor(factor float64) Savings {
	switch {
	case factor < m.HighSavingsBelow:
		return HighSavings
	case factor < m.MediumSavingsBelow:
		return MediumSavings
	}
	return LowSavings
}
