// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a small interface over the text generation APIs the
// populater can talk to (Anthropic Claude and OpenAI-compatible chat
// endpoints). The Registry picks the configured provider by name.
package ai

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// DefaultMaxTokens bounds the length of every generated reply.
const DefaultMaxTokens = 4000

// DefaultTimeout is the per-request HTTP timeout when none is configured.
const DefaultTimeout = 2 * time.Minute

// Provider defines the interface that all AI providers must implement.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the generated text.
	// systemPrompt sets the model's behaviour; userPrompt is the request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "claude", "openai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
	Timeout   time.Duration
}

func (c ProviderConfig) withDefaults(baseURL string) ProviderConfig {
	if c.BaseURL == "" {
		c.BaseURL = baseURL
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Registry holds the configured providers and the name of the one in use.
// It is built once at startup and not modified afterwards.
type Registry struct {
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry with a provider for every config that has
// a non-empty API key. Providers without keys and unknown names are skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		}
	}

	return r
}

// Generate calls the active provider's Generate method.
func (r *Registry) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, systemPrompt, userPrompt)
}

// Name returns the name of the active provider so the registry itself
// satisfies Provider.
func (r *Registry) Name() string { return r.active }

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// Available returns the sorted names of all providers with an API key.
func (r *Registry) Available() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
