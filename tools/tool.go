package tools

import (
	"context"

	"github.com/voyagent/voyagent/schema"
)

type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
	SetStartHook(fn func(context.Context, ITool, any))
	SetEndHook(fn func(context.Context, ITool, any, any))
	SetErrorHook(fn func(context.Context, ITool, any, error))
}

type Tool[I schema.Schema, O schema.Schema] interface {
	ITool
	Run(context.Context, *I, *O) error
}

// OrchestrationTool is a tool runnable with untyped input, for tool selection
type OrchestrationTool interface {
	ITool
	RunOrchestration(context.Context, any) (any, error)
}
