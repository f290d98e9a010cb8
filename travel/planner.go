package travel

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/voyagent/voyagent/agents"
	"github.com/voyagent/voyagent/components/systemprompt"
	"github.com/voyagent/voyagent/config"
	"github.com/voyagent/voyagent/tools"
	"github.com/voyagent/voyagent/tools/crowd"
	"github.com/voyagent/voyagent/tools/language"
	"github.com/voyagent/voyagent/tools/price"
	"github.com/voyagent/voyagent/tools/risk"
	"github.com/voyagent/voyagent/tools/search"
	"github.com/voyagent/voyagent/tools/translate"
	"github.com/voyagent/voyagent/tools/weather"
)

// Planner runs the trip planning chain and the intelligence analysts.
type Planner struct {
	clt         instructor.Instructor
	model       string
	temperature float32
	maxTokens   int

	searchTool    *search.Tool
	weatherTool   *weather.Tool
	translateTool *translate.Tool
	crowdTool     *crowd.Tool
	priceTool     *price.Tool
	riskTool      *risk.Tool
	languageTool  *language.Tool
}

// New builds a Planner and its tool belt from configuration.
func New(cfg *config.Config) *Planner {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	searchTool := search.New(
		search.WithAPIKey(cfg.SerperAPIKey),
		search.WithHttpClient(httpClient),
	)
	weatherTool := weather.New(
		weather.WithAPIKey(cfg.OpenWeatherAPIKey),
		weather.WithHttpClient(httpClient),
	)
	translateTool := translate.New(
		translate.WithBaseURL(cfg.TranslateBaseURL),
		translate.WithAPIKey(cfg.TranslateAPIKey),
		translate.WithHttpClient(httpClient),
	)
	return &Planner{
		clt:           cfg.NewInstructor(),
		model:         cfg.Model,
		temperature:   cfg.Temperature,
		maxTokens:     cfg.MaxTokens,
		searchTool:    searchTool,
		weatherTool:   weatherTool,
		translateTool: translateTool,
		crowdTool: crowd.New(
			crowd.WithSearcher(searchTool),
			crowd.WithConditions(weatherTool),
		),
		priceTool: price.New(
			price.WithSearcher(searchTool),
		),
		riskTool: risk.New(
			risk.WithSearcher(searchTool),
			risk.WithConditions(weatherTool),
		),
		languageTool: language.New(
			language.WithTranslator(translateTool),
			language.WithSearcher(searchTool),
		),
	}
}

// Tools returns the planner's tool belt, for hook registration.
func (p *Planner) Tools() []tools.ITool {
	return []tools.ITool{
		p.searchTool,
		p.weatherTool,
		p.translateTool,
		p.crowdTool,
		p.priceTool,
		p.riskTool,
		p.languageTool,
	}
}

func (p *Planner) agentOptions(name string, gen systemprompt.Generator) []agents.Option {
	return []agents.Option{
		agents.WithClient(p.clt),
		agents.WithModel(p.model),
		agents.WithTemperature(p.temperature),
		agents.WithMaxTokens(p.maxTokens),
		agents.WithName(name),
		agents.WithSystemPromptGenerator(gen),
	}
}

func (p *Planner) personaAgent(name string, providers ...systemprompt.ContextProvider) ([]agents.Option, error) {
	per, err := persona(name)
	if err != nil {
		return nil, err
	}
	return p.agentOptions(name, per.Generator(providers...)), nil
}

// Plan runs the city selector, local expert and concierge in sequence
// and returns the final itinerary.
func (p *Planner) Plan(ctx context.Context, query *TripQuery) (*Itinerary, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trip query: %w", err)
	}
	selectorOpts, err := p.personaAgent("city_selector", query)
	if err != nil {
		return nil, err
	}
	expertOpts, err := p.personaAgent("local_expert", query)
	if err != nil {
		return nil, err
	}
	conciergeOpts, err := p.personaAgent("travel_concierge", query)
	if err != nil {
		return nil, err
	}
	chain := agents.NewChain[TaskInput, Itinerary](
		agents.NewAgent[TaskInput, CityReport](selectorOpts...),
		agents.NewAgent[CityReport, LocalGuide](expertOpts...),
		agents.NewAgent[LocalGuide, Itinerary](conciergeOpts...),
	)
	request := fmt.Sprintf(
		"Plan a trip from %s to %s, %s to %s. Interests: %s.",
		query.Origin, query.Destination, query.StartDate, query.EndDate,
		strings.Join(query.Interests, ", "),
	)
	out := new(Itinerary)
	if _, err := chain.Run(ctx, NewTaskInput(request), out); err != nil {
		return nil, fmt.Errorf("trip planning chain: %w", err)
	}
	return out, nil
}

// TripPlan bundles an itinerary with its intelligence briefings.
type TripPlan struct {
	Itinerary    *Itinerary    `json:"itinerary"`
	Intelligence *Intelligence `json:"intelligence,omitempty"`
}

// PlanWithIntelligence plans the trip and attaches all four briefings.
func (p *Planner) PlanWithIntelligence(ctx context.Context, query *TripQuery) (*TripPlan, error) {
	itinerary, err := p.Plan(ctx, query)
	if err != nil {
		return nil, err
	}
	intel, err := p.Intelligence(ctx, query, AllKind)
	if err != nil {
		return nil, err
	}
	return &TripPlan{Itinerary: itinerary, Intelligence: intel}, nil
}
