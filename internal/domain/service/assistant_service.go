package service

import "context"

// AssistantService defines the interface to the remote text-generation
// endpoint backing the in-app advice assistant.
type AssistantService interface {
	// Ask sends a prompt and returns the generated reply.
	Ask(ctx context.Context, prompt string) (string, error)
}
