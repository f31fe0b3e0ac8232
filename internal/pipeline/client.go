// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"autobloggerx/internal/ai"
	"autobloggerx/internal/models"
	"autobloggerx/internal/prompt"
)

// Client sends single prompts to a text generation provider with the
// Swedish content persona as system instruction.
type Client struct {
	provider ai.Provider
}

// NewClient wraps a provider.
func NewClient(p ai.Provider) *Client {
	return &Client{provider: p}
}

// Complete sends userPrompt with the content of earlier steps as background
// and returns the cleaned reply. Provider errors are returned unchanged.
func (c *Client) Complete(ctx context.Context, userPrompt string, history models.GenerationContext) (string, error) {
	slog.Debug("generation request",
		"provider", c.provider.Name(),
		"context_entries", history.Len(),
		"prompt_chars", len(userPrompt),
	)

	reply, err := c.provider.Generate(ctx, prompt.System(history.String()), userPrompt)
	if err != nil {
		return "", err
	}
	return CleanReply(reply), nil
}

// fenceMarkers are the markdown code fence tokens the model sometimes wraps
// HTML in. The tagged form must be removed first.
var fenceMarkers = strings.NewReplacer("```html", "", "```", "")

// CleanReply strips markdown code fence markers anywhere in the reply and
// trims surrounding whitespace.
func CleanReply(reply string) string {
	return strings.TrimSpace(fenceMarkers.Replace(strings.TrimSpace(reply)))
}
