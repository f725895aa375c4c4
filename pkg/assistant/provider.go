package assistant

import "context"

// Message is a chat message in a provider-agnostic format.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Provider is one external completion backend. A provider may answer or
// fail; the chain decides what happens next.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Complete sends the conversation to the backend and returns the reply.
	Complete(ctx context.Context, history []Message) (string, error)
}
