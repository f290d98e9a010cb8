package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/voyagent/voyagent/components"
	"github.com/voyagent/voyagent/schema"
)

type stage struct {
	name   string
	tokens int
	run    func(input any) (any, error)
}

func (s stage) Name() string {
	return s.name
}

func (s stage) RunForChain(ctx context.Context, input any, apiResp *components.ApiResponse) (any, error) {
	if apiResp != nil {
		apiResp.Usage = &components.ApiUsage{InputTokens: s.tokens, OutputTokens: s.tokens}
	}
	return s.run(input)
}

func TestChainRun(t *testing.T) {
	chain := NewChain[schema.Input, schema.Output](
		stage{name: "first", tokens: 10, run: func(input any) (any, error) {
			in, ok := input.(*schema.Input)
			if !ok {
				return nil, errors.New("unexpected input schema")
			}
			return schema.NewInput(in.ChatMessage + " first"), nil
		}},
		stage{name: "second", tokens: 20, run: func(input any) (any, error) {
			in, ok := input.(*schema.Input)
			if !ok {
				return nil, errors.New("unexpected input schema")
			}
			return schema.NewOutput(in.ChatMessage + " second"), nil
		}},
	)
	out := new(schema.Output)
	resps, err := chain.Run(context.Background(), schema.NewInput("start"), out)
	if err != nil {
		t.Fatalf("Error running chain: %v", err)
	}
	if out.ChatMessage != "start first second" {
		t.Errorf("Expect stages to run in order, but got %q", out.ChatMessage)
	}
	if len(resps) != 2 {
		t.Errorf("Expect 2 api responses, but got %d", len(resps))
	}
}

func TestChainUsageMerge(t *testing.T) {
	chain := NewChain[schema.Input, schema.Output](
		stage{name: "first", tokens: 10, run: func(input any) (any, error) {
			return schema.NewInput("mid"), nil
		}},
		stage{name: "second", tokens: 20, run: func(input any) (any, error) {
			return schema.NewOutput("done"), nil
		}},
	)
	apiResp := new(components.ApiResponse)
	if _, err := chain.RunForChain(context.Background(), schema.NewInput("start"), apiResp); err != nil {
		t.Fatalf("Error running chain: %v", err)
	}
	if apiResp.Usage == nil || apiResp.Usage.InputTokens != 30 {
		t.Errorf("Expect merged usage of 30 input tokens, but got %+v", apiResp.Usage)
	}
}

func TestChainStageError(t *testing.T) {
	wantErr := errors.New("stage failed")
	chain := NewChain[schema.Input, schema.Output](
		stage{name: "first", tokens: 10, run: func(input any) (any, error) {
			return nil, wantErr
		}},
	)
	out := new(schema.Output)
	if _, err := chain.Run(context.Background(), schema.NewInput("start"), out); !errors.Is(err, wantErr) {
		t.Errorf("Expect stage error, but got %v", err)
	}
}

func TestOrchestrationAgent(t *testing.T) {
	long := stage{name: "long", run: func(input any) (any, error) {
		return schema.NewOutput("long answer"), nil
	}}
	short := stage{name: "short", run: func(input any) (any, error) {
		return schema.NewOutput("short answer"), nil
	}}
	agent := NewOrchestrationAgent[schema.Input, schema.Output](func(req *schema.Input) (ChainableAgent, any, error) {
		if len(req.ChatMessage) > 10 {
			return long, req, nil
		}
		return short, req, nil
	})
	out := new(schema.Output)
	if err := agent.Run(context.Background(), schema.NewInput("hi"), out, nil); err != nil {
		t.Fatalf("Error running orchestration agent: %v", err)
	}
	if out.ChatMessage != "short answer" {
		t.Errorf("Expect short answer, but got %q", out.ChatMessage)
	}
	if err := agent.Run(context.Background(), schema.NewInput("a much longer question"), out, nil); err != nil {
		t.Fatalf("Error running orchestration agent: %v", err)
	}
	if out.ChatMessage != "long answer" {
		t.Errorf("Expect long answer, but got %q", out.ChatMessage)
	}
}
