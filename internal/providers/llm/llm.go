package llm

import "context"

// Provider generates free text from a prompt. Output is non-deterministic;
// callers validate shape, never content.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
