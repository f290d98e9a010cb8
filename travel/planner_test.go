package travel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagent/voyagent/config"
	"github.com/voyagent/voyagent/tools"
)

func TestPlannerTools(t *testing.T) {
	planner := New(&config.Config{
		Provider:     config.OpenAIProvider,
		OpenAIAPIKey: "test-key",
		Model:        "gpt-4o-mini",
	})
	belt := planner.Tools()
	require.Len(t, belt, 7)
	seen := make(map[string]bool, len(belt))
	for _, tool := range belt {
		require.NotEmpty(t, tool.Title())
		assert.False(t, seen[tool.Title()], "duplicate tool %s", tool.Title())
		seen[tool.Title()] = true
	}
}

func TestPlannerToolHookRegistration(t *testing.T) {
	planner := New(&config.Config{
		Provider:     config.OpenAIProvider,
		OpenAIAPIKey: "test-key",
		Model:        "gpt-4o-mini",
	})
	registered := make([]string, 0, 7)
	for _, tool := range planner.Tools() {
		tool.SetStartHook(func(_ context.Context, tl tools.ITool, _ any) {
			registered = append(registered, tl.Title())
		})
	}
	// The belt exposes the same instances the planner runs with, so a
	// hook set here fires during briefings.
	assert.Same(t, planner.searchTool, planner.Tools()[0])
}
