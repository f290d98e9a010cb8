package cot

import (
	"strings"
	"testing"

	"github.com/voyagent/voyagent/components/systemprompt"
)

func TestGenerate(t *testing.T) {
	gen := New(
		WithBackground([]string{"- You are a travel planner."}),
		WithSteps([]string{"- Pick the best city."}),
		WithContextProviders(systemprompt.NewProvider("Trip Details", "Boston to Lisbon")),
	)
	prompt := gen.Generate()
	for _, want := range []string{
		"# IDENTITY and PURPOSE",
		"- You are a travel planner.",
		"# INTERNAL ASSISTANT STEPS",
		"- Pick the best city.",
		"# OUTPUT INSTRUCTIONS",
		"# EXTRA INFORMATION AND CONTEXT",
		"## Trip Details",
		"Boston to Lisbon",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expect prompt to contain %q, but got:\n%s", want, prompt)
		}
	}
}

func TestGenerateDefaults(t *testing.T) {
	prompt := New().Generate()
	if !strings.Contains(prompt, "helpful and friendly AI assistant") {
		t.Errorf("Expect default background, but got:\n%s", prompt)
	}
	if strings.Contains(prompt, "# INTERNAL ASSISTANT STEPS") {
		t.Error("Expect no steps section without steps")
	}
}

func TestProviderManagement(t *testing.T) {
	gen := New()
	gen.AddContextProviders(systemprompt.NewProvider("Weather", "clear skies"))
	if _, err := gen.ContextProvider("Weather"); err != nil {
		t.Errorf("Error fetching provider: %v", err)
	}
	gen.RemoveContextProviders("Weather")
	if _, err := gen.ContextProvider("Weather"); err == nil {
		t.Error("Expect error after removing provider, but got nil")
	}
	if strings.Contains(gen.Generate(), "EXTRA INFORMATION") {
		t.Error("Expect no context section after removing the provider")
	}
}
