package calculator

import (
	"context"
	"testing"

	"github.com/voyagent/voyagent/tools"
)

func TestCalculator(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("2 + 2 * 3", nil), out); err != nil {
		t.Fatalf("Error running calculator: %v", err)
	}
	if out.Result != 8.0 {
		t.Errorf("Expect 8, but got %v", out.Result)
	}
}

func TestCalculatorParams(t *testing.T) {
	tool := New()
	out := new(Output)
	input := NewInput("nights * rate", map[string]interface{}{"nights": 5.0, "rate": 120.0})
	if err := tool.Run(context.Background(), input, out); err != nil {
		t.Fatalf("Error running calculator: %v", err)
	}
	if out.Result != 600.0 {
		t.Errorf("Expect 600, but got %v", out.Result)
	}
}

func TestCalculatorConstants(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("pi > 3.14 && pi < 3.15", nil), out); err != nil {
		t.Fatalf("Error running calculator: %v", err)
	}
	if out.Result != true {
		t.Errorf("Expect true, but got %v", out.Result)
	}
}

func TestCalculatorFunctions(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("sqrt(16) + pow(2, 3)", nil), out); err != nil {
		t.Fatalf("Error running calculator: %v", err)
	}
	if out.Result != 12.0 {
		t.Errorf("Expect 12, but got %v", out.Result)
	}
}

func TestCalculatorInvalidExpression(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("2 +* 2", nil), out); err == nil {
		t.Error("Expect error for an invalid expression, but got nil")
	}
}

func TestCalculatorHooks(t *testing.T) {
	var started, ended bool
	tool := New(
		tools.WithStartHook(func(_ context.Context, tl tools.ITool, _ any) {
			started = true
			if tl.Title() != "CalculatorTool" {
				t.Errorf("Expect CalculatorTool in start hook, but got %s", tl.Title())
			}
		}),
		tools.WithEndHook(func(_ context.Context, _ tools.ITool, _, output any) {
			ended = true
			if out, ok := output.(*Output); !ok || out.Result != 4.0 {
				t.Errorf("Expect 4 in end hook, but got %v", output)
			}
		}),
	)
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("2 + 2", nil), out); err != nil {
		t.Fatalf("Error running calculator: %v", err)
	}
	if !started {
		t.Error("Expect start hook to fire, but it did not")
	}
	if !ended {
		t.Error("Expect end hook to fire, but it did not")
	}
}

func TestCalculatorErrorHook(t *testing.T) {
	var hookErr error
	tool := New(tools.WithErrorHook(func(_ context.Context, _ tools.ITool, _ any, err error) {
		hookErr = err
	}))
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("2 +* 2", nil), out); err == nil {
		t.Fatal("Expect error for an invalid expression, but got nil")
	}
	if hookErr == nil {
		t.Error("Expect error hook to fire, but it did not")
	}
}
