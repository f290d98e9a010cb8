package agents

import (
	"testing"

	"github.com/voyagent/voyagent/components"
	"github.com/voyagent/voyagent/schema"
)

func TestCohereTurn(t *testing.T) {
	messages := []components.Message{
		*components.NewMessage(components.SystemRole, schema.String("be helpful")),
		*components.NewMessage(components.UserRole, schema.String("first question")),
		*components.NewMessage(components.AssistantRole, schema.String("first answer")),
		*components.NewMessage(components.UserRole, schema.String("second question")),
	}
	message, history := cohereTurn(messages)
	if message != "second question" {
		t.Errorf("Expect second question, but got %s", message)
	}
	if len(history) != 3 {
		t.Fatalf("Expect 3 history messages, but got %d", len(history))
	}
	if history[0].Role != "SYSTEM" || history[0].System == nil {
		t.Errorf("Expect SYSTEM first, but got %s", history[0].Role)
	}
	if history[2].Role != "CHATBOT" || history[2].Chatbot == nil || history[2].Chatbot.Message != "first answer" {
		t.Errorf("Expect CHATBOT with first answer, but got %+v", history[2])
	}
}

func TestCohereTurnSingleMessage(t *testing.T) {
	messages := []components.Message{
		*components.NewMessage(components.UserRole, schema.String("hello")),
	}
	message, history := cohereTurn(messages)
	if message != "hello" {
		t.Errorf("Expect hello, but got %s", message)
	}
	if len(history) != 0 {
		t.Errorf("Expect empty history, but got %d messages", len(history))
	}
}

func TestCohereTurnEmpty(t *testing.T) {
	message, history := cohereTurn(nil)
	if message != "" || history != nil {
		t.Errorf("Expect empty turn, but got %q and %v", message, history)
	}
}
