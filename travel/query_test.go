package travel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuery() *TripQuery {
	return &TripQuery{
		Origin:      "Boston",
		Destination: "Lisbon",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-15",
		Interests:   []string{"food", "museums"},
	}
}

func TestTripQueryValidate(t *testing.T) {
	require.NoError(t, validQuery().Validate())

	missing := validQuery()
	missing.Destination = ""
	assert.Error(t, missing.Validate())

	reversed := validQuery()
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.Error(t, reversed.Validate())

	sameDay := validQuery()
	sameDay.EndDate = sameDay.StartDate
	assert.Error(t, sameDay.Validate())

	badDate := validQuery()
	badDate.StartDate = "September 10"
	assert.Error(t, badDate.Validate())
}

func TestTripQueryNights(t *testing.T) {
	q := validQuery()
	assert.Equal(t, 5, q.Nights())

	q.EndDate = "not a date"
	assert.Equal(t, 0, q.Nights())
}

func TestTripQueryInfo(t *testing.T) {
	q := validQuery()
	assert.Equal(t, "Trip Details", q.Title())
	info := q.Info()
	assert.Contains(t, info, "Boston")
	assert.Contains(t, info, "Lisbon")
	assert.Contains(t, info, "5 nights")
	assert.Contains(t, info, "food, museums")
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"risk", "crowd", "price", "language", "all"} {
		kind, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, kind)
	}
	_, err := ParseKind("astrology")
	assert.Error(t, err)
}

func TestPersonas(t *testing.T) {
	names := []string{
		"city_selector",
		"local_expert",
		"travel_concierge",
		"risk_analyst",
		"crowd_analyst",
		"price_analyst",
		"language_specialist",
	}
	for _, name := range names {
		p, err := persona(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p.Role, name)
		assert.NotEmpty(t, p.Goal, name)
		assert.NotEmpty(t, p.Steps, name)
	}
	_, err := persona("astrologer")
	assert.Error(t, err)
}

func TestPersonaGenerator(t *testing.T) {
	p, err := persona("city_selector")
	require.NoError(t, err)
	prompt := p.Generator().Generate()
	assert.Contains(t, prompt, p.Role)
	for _, step := range p.Steps {
		assert.True(t, strings.Contains(prompt, step), step)
	}
}
