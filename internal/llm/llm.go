package llm

import "context"

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the language-model capability. The lifecycle of the concrete
// client is owned by the process bootstrap and injected where needed; nothing
// in the pipeline constructs one at package scope.
//
//go:generate go run go.uber.org/mock/mockgen -source=llm.go -destination=mocks/mock.go
type Client interface {
	// Complete sends the conversation and returns the assistant's reply text.
	Complete(ctx context.Context, messages []Message) (string, error)
}
