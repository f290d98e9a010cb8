package components

import (
	"testing"

	"github.com/voyagent/voyagent/schema"
)

func TestMemoryOverflow(t *testing.T) {
	mem := NewMemory(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		mem.NewMessage(UserRole, schema.NewString(s))
	}
	if mem.MessageCount() != 3 {
		t.Errorf("Expect 3 messages, but got %d", mem.MessageCount())
	}
	if got, ok := mem.History()[0].Content().(schema.String); !ok || got != "b" {
		t.Errorf("Expect oldest message dropped, but got %v", mem.History()[0].Content())
	}
}

func TestMemoryCopy(t *testing.T) {
	src := NewMemory(10)
	src.NewTurn()
	src.NewMessage(UserRole, schema.NewString("hello"))

	dst := NewMemory(0)
	dst.Copy(src)
	if dst.MessageCount() != 1 {
		t.Errorf("Expect 1 message after copy, but got %d", dst.MessageCount())
	}
	if dst.TurnID() != src.TurnID() {
		t.Errorf("Expect turn ID %s, but got %s", src.TurnID(), dst.TurnID())
	}

	src.NewMessage(UserRole, schema.NewString("later"))
	if dst.MessageCount() != 1 {
		t.Error("Expect copy to be independent of the source")
	}
}

func TestMemoryDeleteTurn(t *testing.T) {
	mem := NewMemory(10)
	mem.NewTurn()
	first := mem.TurnID()
	mem.NewMessage(UserRole, schema.NewString("hello"))
	mem.NewTurn()
	mem.NewMessage(AssistantRole, schema.NewString("hi"))

	if err := mem.DeleteTurn(first); err != nil {
		t.Fatalf("Error deleting turn: %v", err)
	}
	if mem.MessageCount() != 1 {
		t.Errorf("Expect 1 message, but got %d", mem.MessageCount())
	}
	if err := mem.DeleteTurn("missing"); err == nil {
		t.Error("Expect error for unknown turn, but got nil")
	}
}

func TestMemoryReset(t *testing.T) {
	mem := NewMemory(10)
	mem.NewTurn()
	mem.NewMessage(UserRole, schema.NewString("hello"))
	mem.Reset()
	if mem.MessageCount() != 0 {
		t.Errorf("Expect empty history after reset, but got %d", mem.MessageCount())
	}
}
