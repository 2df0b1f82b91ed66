package llm

import "context"

// Provider sends one prompt to a hosted model and returns its text output.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string

	// Close releases the underlying client.
	Close() error
}

// Request is a single-turn completion. Chat history is flattened into
// Prompt by the caller.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

const defaultMaxTokens = 2048

func (r Request) maxTokens() int {
	if r.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return r.MaxTokens
}
