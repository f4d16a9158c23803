package llm

import (
	"context"
	"fmt"
)

// Client is the single boundary to the external text generation service:
// one instruction in, generated text out, or a failure.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ClientFunc adapts a plain function to Client.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

func (f ClientFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ServiceError reports a failed call to the generation service. Network,
// authentication and quota failures all surface through it; callers treat
// them identically.
type ServiceError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: request failed (%d): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}
