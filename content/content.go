// Package content supplies the text that reports are rendered from.
//
// The renderer never talks to a model directly; it is handed a Generator,
// so tests substitute a Static stub and the CLI wires a ChatClient.
package content

import (
	"context"
	"strings"
)

// Generator produces text for a prompt. Implementations must be safe to
// call repeatedly in sequence; results for chunked prompts are concatenated
// by GenerateAll before rendering.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Static is a Generator that always returns the same text. It exists for
// tests and offline use.
type Static struct {
	Text string
}

// Generate returns the fixed text.
func (s Static) Generate(ctx context.Context, prompt string) (string, error) {
	return s.Text, nil
}

// GenerateAll invokes g once per prompt in order and concatenates the
// results into a single blob for the renderer.
func GenerateAll(ctx context.Context, g Generator, prompts []string) (string, error) {
	parts := make([]string, 0, len(prompts))
	for _, p := range prompts {
		text, err := g.Generate(ctx, p)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}
