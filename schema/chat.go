package schema

// Input is a generic chat input schema carrying a single user message.
type Input struct {
	Base
	// ChatMessage is the message sent by the user to the assistant.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The message sent by the user to the assistant." validate:"required"`
}

func NewInput(msg string) *Input {
	return &Input{
		ChatMessage: msg,
	}
}

func (s Input) String() string {
	return s.ChatMessage
}

// Output is a generic chat output schema carrying a single assistant reply.
type Output struct {
	Base
	// ChatMessage is the response generated for the user.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The response generated for the user." validate:"required"`
}

func NewOutput(msg string) *Output {
	return &Output{
		ChatMessage: msg,
	}
}

func (s Output) String() string {
	return s.ChatMessage
}
