package travel

import (
	"context"
	"fmt"

	"github.com/voyagent/voyagent/agents"
	"github.com/voyagent/voyagent/components/systemprompt/cot"
	"github.com/voyagent/voyagent/config"
	"github.com/voyagent/voyagent/schema"
	"github.com/voyagent/voyagent/tools"
	"github.com/voyagent/voyagent/tools/calculator"
	"github.com/voyagent/voyagent/tools/orchestration"
	"github.com/voyagent/voyagent/tools/search"
	"github.com/voyagent/voyagent/tools/webpage"
)

// ToolChoice is the assistant's decision about which tool answers the question.
type ToolChoice struct {
	schema.Base
	// Tool to run: search, calculate or webpage.
	Tool string `json:"tool" jsonschema:"title=tool,enum=search,enum=calculate,enum=webpage,description=Tool to run." validate:"required"`
	// Query for the search tool.
	Query string `json:"query,omitempty" jsonschema:"title=query,description=Query for the search tool."`
	// Expression for the calculator tool.
	Expression string `json:"expression,omitempty" jsonschema:"title=expression,description=Expression for the calculator tool."`
	// URL for the webpage tool.
	URL string `json:"url,omitempty" jsonschema:"title=url,description=URL for the webpage tool."`
}

// Assistant answers free-form travel questions with tool support.
type Assistant struct {
	agent *agents.ToolAgent[schema.Input, ToolChoice, schema.Output]
}

// NewAssistant builds the question answering agent and its tools.
func NewAssistant(cfg *config.Config) *Assistant {
	searchTool := search.New(search.WithAPIKey(cfg.SerperAPIKey))
	calcTool := calculator.New()
	pageTool := webpage.New()
	selector := orchestration.New(func(req *ToolChoice) (tools.OrchestrationTool, any, error) {
		switch req.Tool {
		case "calculate":
			if req.Expression == "" {
				return nil, nil, fmt.Errorf("calculator chosen without an expression")
			}
			return calcTool, calculator.NewInput(req.Expression, nil), nil
		case "webpage":
			if req.URL == "" {
				return nil, nil, fmt.Errorf("webpage chosen without a url")
			}
			return pageTool, webpage.NewInput(req.URL, false), nil
		}
		return searchTool, search.NewInput(req.Query), nil
	})
	gen := cot.New(
		cot.WithBackground([]string{
			"- You are a travel assistant that answers practical questions.",
			"- You can search the web, read a webpage, or evaluate a calculation before answering.",
		}),
		cot.WithSteps([]string{
			"- Decide which tool best answers the question and fill in its parameters.",
			"- Use the tool result attached to the conversation to write the final answer.",
		}),
	)
	agent := agents.NewToolAgent[schema.Input, ToolChoice, schema.Output](
		agents.WithClient(cfg.NewInstructor()),
		agents.WithModel(cfg.Model),
		agents.WithTemperature(cfg.Temperature),
		agents.WithMaxTokens(cfg.MaxTokens),
		agents.WithName("travel_assistant"),
		agents.WithSystemPromptGenerator(gen),
	).SetTool(selector)
	return &Assistant{agent: agent}
}

// Ask answers a single question.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	out := new(schema.Output)
	if err := a.agent.Run(ctx, schema.NewInput(question), out, nil); err != nil {
		return "", err
	}
	return out.ChatMessage, nil
}
