package travel

import (
	"context"
	"fmt"
	"strings"

	"github.com/voyagent/voyagent/agents"
	"github.com/voyagent/voyagent/components/systemprompt"
	"github.com/voyagent/voyagent/tools/crowd"
	"github.com/voyagent/voyagent/tools/language"
	"github.com/voyagent/voyagent/tools/price"
	"github.com/voyagent/voyagent/tools/risk"
)

// Kind selects an intelligence briefing.
type Kind = string

const (
	RiskKind     Kind = "risk"
	CrowdKind    Kind = "crowd"
	PriceKind    Kind = "price"
	LanguageKind Kind = "language"
	AllKind      Kind = "all"
)

// ParseKind validates an intelligence kind string.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case RiskKind, CrowdKind, PriceKind, LanguageKind, AllKind:
		return strings.ToLower(s), nil
	}
	return "", fmt.Errorf("unknown intelligence type %q, expect one of risk, crowd, price, language, all", s)
}

// Section is one briefing of an intelligence run.
type Section struct {
	Kind   Kind   `json:"kind"`
	Report Report `json:"report"`
}

// Intelligence bundles the briefings of one run.
type Intelligence struct {
	Destination string    `json:"destination"`
	Sections    []Section `json:"sections"`
}

func (i Intelligence) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Intelligence: %s\n", i.Destination)
	for _, s := range i.Sections {
		fmt.Fprintf(&sb, "\n## %s\n%s", strings.ToUpper(s.Kind[:1])+s.Kind[1:], s.Report.Render())
	}
	return sb.String()
}

// Intelligence runs the requested briefing, or all four in sequence.
// Each briefing runs its tool first and hands the report to the analyst
// agent as extra context.
func (p *Planner) Intelligence(ctx context.Context, query *TripQuery, kind Kind) (*Intelligence, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trip query: %w", err)
	}
	kinds := []Kind{kind}
	if kind == AllKind {
		kinds = []Kind{RiskKind, CrowdKind, PriceKind, LanguageKind}
	}
	ret := &Intelligence{Destination: query.Destination}
	for _, k := range kinds {
		section, err := p.briefing(ctx, query, k)
		if err != nil {
			return nil, fmt.Errorf("%s briefing: %w", k, err)
		}
		ret.Sections = append(ret.Sections, section)
	}
	return ret, nil
}

func (p *Planner) briefing(ctx context.Context, query *TripQuery, kind Kind) (Section, error) {
	var (
		personaName string
		provider    systemprompt.ContextProvider
		request     string
	)
	switch kind {
	case RiskKind:
		out := new(risk.Output)
		in := risk.NewInput(query.Destination).SetDateRange(fmt.Sprintf("%s to %s", query.StartDate, query.EndDate))
		if err := p.riskTool.Run(ctx, in, out); err != nil {
			return Section{}, err
		}
		personaName = "risk_analyst"
		provider = out
		request = fmt.Sprintf("Brief the traveler on current travel risk in %s.", query.Destination)
	case CrowdKind:
		out := new(crowd.Output)
		if err := p.crowdTool.Run(ctx, crowd.NewInput(query.Destination, query.StartDate), out); err != nil {
			return Section{}, err
		}
		personaName = "crowd_analyst"
		provider = out
		request = fmt.Sprintf("Brief the traveler on crowd levels in %s on %s.", query.Destination, query.StartDate)
	case PriceKind:
		out := new(price.Output)
		route := fmt.Sprintf("%s to %s", query.Origin, query.Destination)
		if err := p.priceTool.Run(ctx, price.NewInput(route, query.StartDate, price.FlightCategory), out); err != nil {
			return Section{}, err
		}
		personaName = "price_analyst"
		provider = out
		request = fmt.Sprintf("Brief the traveler on prices and booking timing for %s.", route)
	case LanguageKind:
		target := query.Language
		if target == "" {
			target = "en"
		}
		out := new(language.Output)
		in := language.NewInput("Hello! Could you please help me find my hotel?", "en", target, language.TravelContext)
		if err := p.languageTool.Run(ctx, in, out); err != nil {
			return Section{}, err
		}
		personaName = "language_specialist"
		provider = out
		request = fmt.Sprintf("Brief the traveler on language and customs for %s.", query.Destination)
	default:
		return Section{}, fmt.Errorf("unknown intelligence type %q", kind)
	}
	opts, err := p.personaAgent(personaName, query, provider)
	if err != nil {
		return Section{}, err
	}
	agent := agents.NewAgent[TaskInput, Report](opts...)
	report := new(Report)
	if err := agent.Run(ctx, NewTaskInput(request), report, nil); err != nil {
		return Section{}, err
	}
	return Section{Kind: kind, Report: *report}, nil
}
