package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voyagent/voyagent/travel"
)

// Planner is the planning surface the dashboard drives.
type Planner interface {
	Plan(ctx context.Context, query *travel.TripQuery) (*travel.Itinerary, error)
	PlanWithIntelligence(ctx context.Context, query *travel.TripQuery) (*travel.TripPlan, error)
}

const (
	fieldOrigin = iota
	fieldDestination
	fieldStartDate
	fieldEndDate
	fieldInterests
	fieldLanguage
	fieldIntelligence
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Origin",
	"Destination",
	"Start date (YYYY-MM-DD)",
	"End date (YYYY-MM-DD)",
	"Interests (comma separated)",
	"Briefing language code",
	"Include intelligence (y/n)",
}

type planDoneMsg struct {
	plan *travel.TripPlan
}

type planErrMsg struct {
	err error
}

// Model is the interactive planning form.
type Model struct {
	planner Planner

	inputs  [fieldCount]textinput.Model
	focus   int
	spin    spinner.Model
	result  viewport.Model
	ready   bool
	working bool
	done    bool
	err     error

	width  int
	height int
}

// NewModel builds the dashboard form around a planner.
func NewModel(planner Planner) Model {
	m := Model{planner: planner}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 120
		m.inputs[i] = in
	}
	m.inputs[fieldOrigin].Placeholder = "New York"
	m.inputs[fieldDestination].Placeholder = "Tokyo"
	m.inputs[fieldStartDate].Placeholder = "2026-10-01"
	m.inputs[fieldEndDate].Placeholder = "2026-10-08"
	m.inputs[fieldInterests].Placeholder = "food, museums"
	m.inputs[fieldLanguage].Placeholder = "en"
	m.inputs[fieldIntelligence].Placeholder = "n"
	m.inputs[fieldOrigin].Focus()
	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	return m
}

// Run starts the dashboard program.
func Run(ctx context.Context, planner Planner) error {
	program := tea.NewProgram(NewModel(planner), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Query assembles the trip query from the form fields.
func (m Model) Query() *travel.TripQuery {
	var interests []string
	for _, v := range strings.Split(m.inputs[fieldInterests].Value(), ",") {
		if v = strings.TrimSpace(v); v != "" {
			interests = append(interests, v)
		}
	}
	return &travel.TripQuery{
		Origin:      strings.TrimSpace(m.inputs[fieldOrigin].Value()),
		Destination: strings.TrimSpace(m.inputs[fieldDestination].Value()),
		StartDate:   strings.TrimSpace(m.inputs[fieldStartDate].Value()),
		EndDate:     strings.TrimSpace(m.inputs[fieldEndDate].Value()),
		Interests:   interests,
		Language:    strings.TrimSpace(m.inputs[fieldLanguage].Value()),
	}
}

func (m Model) submit() tea.Cmd {
	query := m.Query()
	planner := m.planner
	withIntel := strings.HasPrefix(strings.ToLower(strings.TrimSpace(m.inputs[fieldIntelligence].Value())), "y")
	return func() tea.Msg {
		if withIntel {
			plan, err := planner.PlanWithIntelligence(context.Background(), query)
			if err != nil {
				return planErrMsg{err: err}
			}
			return planDoneMsg{plan: plan}
		}
		itinerary, err := planner.Plan(context.Background(), query)
		if err != nil {
			return planErrMsg{err: err}
		}
		return planDoneMsg{plan: &travel.TripPlan{Itinerary: itinerary}}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.result = viewport.New(msg.Width-4, msg.Height-6)
			m.ready = true
		} else {
			m.result.Width = msg.Width - 4
			m.result.Height = msg.Height - 6
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			if !m.working && !m.done {
				m.focus = (m.focus + 1) % fieldCount
				m.refocus()
			}
			return m, nil
		case "shift+tab", "up":
			if !m.working && !m.done {
				m.focus = (m.focus + fieldCount - 1) % fieldCount
				m.refocus()
			}
			return m, nil
		case "enter":
			if m.working {
				return m, nil
			}
			if m.done {
				return m, tea.Quit
			}
			if m.focus < fieldCount-1 {
				m.focus++
				m.refocus()
				return m, nil
			}
			if err := m.Query().Validate(); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.working = true
			return m, tea.Batch(m.spin.Tick, m.submit())
		}
	case planDoneMsg:
		m.working = false
		m.done = true
		m.result.SetContent(renderPlan(msg.plan))
		return m, nil
	case planErrMsg:
		m.working = false
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	if m.done {
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) refocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = labelStyle
		}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Voyagent Trip Planner"))
	sb.WriteString("\n")
	if m.done {
		sb.WriteString(resultStyle.Render(m.result.View()))
		sb.WriteString(helpStyle.Render("\n↑/↓ scroll · enter or esc to quit"))
		return sb.String()
	}
	for i := range m.inputs {
		fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render(fieldLabels[i]), m.inputs[i].View())
	}
	if m.working {
		fmt.Fprintf(&sb, "\n%s planning the trip...\n", m.spin.View())
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("\n%v\n", m.err)))
	}
	sb.WriteString(helpStyle.Render("tab/shift+tab move · enter submit · esc quit"))
	return sb.String()
}

func renderPlan(plan *travel.TripPlan) string {
	var sb strings.Builder
	if plan.Itinerary != nil {
		sb.WriteString(plan.Itinerary.Render())
	}
	if plan.Intelligence != nil {
		sb.WriteString("\n")
		sb.WriteString(plan.Intelligence.Render())
	}
	return sb.String()
}
