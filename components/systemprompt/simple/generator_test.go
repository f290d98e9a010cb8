package simple

import (
	"strings"
	"testing"

	"github.com/voyagent/voyagent/components/systemprompt"
)

func TestGenerate(t *testing.T) {
	gen := New("You answer travel questions.")
	if got := gen.Generate(); got != "You answer travel questions." {
		t.Errorf("Expect bare content, but got %q", got)
	}
}

func TestGenerateWithProviders(t *testing.T) {
	gen := New(
		"You answer travel questions.",
		WithContextProviders(systemprompt.NewProvider("Search Results", "lisbon is sunny")),
	)
	prompt := gen.Generate()
	if !strings.Contains(prompt, "# EXTRA INFORMATION AND CONTEXT") {
		t.Errorf("Expect context section, but got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "## Search Results") {
		t.Errorf("Expect provider title, but got:\n%s", prompt)
	}
}
