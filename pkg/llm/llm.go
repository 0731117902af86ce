package llm

import (
	"context"
	"fmt"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// APIError carries the upstream HTTP status and error message so callers can
// relay the provider's failure verbatim instead of collapsing it into a 500.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
}
