package travel

import (
	"fmt"
	"strings"

	"github.com/voyagent/voyagent/schema"
)

// TaskInput carries the traveler's request into an agent.
type TaskInput struct {
	schema.Base
	// Request is the traveler's request in plain language.
	Request string `json:"request" jsonschema:"title=request,description=The traveler's request." validate:"required"`
}

func NewTaskInput(request string) *TaskInput {
	return &TaskInput{Request: request}
}

// CityReport is the city selector's decision.
type CityReport struct {
	schema.Base
	// City chosen for the trip.
	City string `json:"city" jsonschema:"title=city,description=City chosen for the trip." validate:"required"`
	// Reasoning behind the choice.
	Reasoning string `json:"reasoning" jsonschema:"title=reasoning,description=Reasoning behind the choice."`
	// Highlights worth traveling for on these dates.
	Highlights []string `json:"highlights,omitempty" jsonschema:"title=highlights,description=Highlights worth traveling for."`
}

// LocalGuide is the local expert's insider guide.
type LocalGuide struct {
	schema.Base
	// City the guide covers.
	City string `json:"city" jsonschema:"title=city,description=City the guide covers." validate:"required"`
	// Attractions matched to the traveler's interests.
	Attractions []string `json:"attractions,omitempty" jsonschema:"title=attractions,description=Attractions matched to the traveler's interests."`
	// Customs worth knowing.
	Customs []string `json:"customs,omitempty" jsonschema:"title=customs,description=Local customs worth knowing."`
	// Food worth seeking out.
	Food []string `json:"food,omitempty" jsonschema:"title=food,description=Food worth seeking out."`
	// HiddenGems tourists usually miss.
	HiddenGems []string `json:"hidden_gems,omitempty" jsonschema:"title=hidden_gems,description=Spots tourists usually miss."`
}

// Itinerary is the concierge's final plan.
type Itinerary struct {
	schema.Base
	// City the itinerary covers.
	City string `json:"city" jsonschema:"title=city,description=City the itinerary covers." validate:"required"`
	// Narrative is the full day-by-day plan.
	Narrative string `json:"narrative" jsonschema:"title=narrative,description=The full day-by-day plan." validate:"required"`
	// Budget estimate for the trip.
	Budget string `json:"budget,omitempty" jsonschema:"title=budget,description=Budget estimate for the trip."`
	// PackingList suited to the season and plan.
	PackingList []string `json:"packing_list,omitempty" jsonschema:"title=packing_list,description=Packing list suited to the season."`
}

func (i Itinerary) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Itinerary: %s\n\n%s\n", i.City, i.Narrative)
	if i.Budget != "" {
		fmt.Fprintf(&sb, "\n## Budget\n%s\n", i.Budget)
	}
	if len(i.PackingList) > 0 {
		sb.WriteString("\n## Packing List\n")
		for _, item := range i.PackingList {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
	}
	return sb.String()
}

// Report is a narrative intelligence briefing produced by an analyst agent.
type Report struct {
	schema.Base
	// Headline is a one-line summary.
	Headline string `json:"headline" jsonschema:"title=headline,description=One-line summary of the briefing." validate:"required"`
	// Narrative is the full briefing.
	Narrative string `json:"narrative" jsonschema:"title=narrative,description=The full briefing." validate:"required"`
	// Recommendations are the concrete takeaways.
	Recommendations []string `json:"recommendations,omitempty" jsonschema:"title=recommendations,description=Concrete takeaways."`
}

func (r Report) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n%s\n", r.Headline, r.Narrative)
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&sb, "- %s\n", rec)
	}
	return sb.String()
}
