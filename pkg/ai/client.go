package ai

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of an ordered chat prompt.
type Message struct {
	Role    string
	Content string
}

// CompletionClientInterface performs exactly one completion request per call.
// Every call costs upstream quota; callers must not invoke it speculatively.
type CompletionClientInterface interface {
	CreateChatCompletion(ctx context.Context, messages []Message) (string, error)
}
