// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"testing"
)

// mockProvider is a test double implementing the Provider interface.
// It records calls and returns configurable responses.
type mockProvider struct {
	name       string
	response   string
	err        error
	callCount  int
	lastSystem string
	lastUser   string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.callCount++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	return m.response, m.err
}

// ---------- Registry.Generate ----------

func TestRegistryGenerate(t *testing.T) {
	t.Run("delegates to active provider", func(t *testing.T) {
		mock := &mockProvider{name: "test", response: "Hej från mock"}
		reg := &Registry{providers: map[string]Provider{"test": mock}, active: "test"}

		result, err := reg.Generate(context.Background(), "system", "user")
		if err != nil {
			t.Fatalf("Generate: unexpected error: %v", err)
		}
		if result != "Hej från mock" {
			t.Errorf("result: got %q, want %q", result, "Hej från mock")
		}
		if mock.callCount != 1 {
			t.Errorf("callCount: got %d, want 1", mock.callCount)
		}
		if mock.lastSystem != "system" || mock.lastUser != "user" {
			t.Errorf("prompts: got (%q, %q)", mock.lastSystem, mock.lastUser)
		}
	})

	t.Run("propagates provider error", func(t *testing.T) {
		mock := &mockProvider{name: "test", err: fmt.Errorf("api failure")}
		reg := &Registry{providers: map[string]Provider{"test": mock}, active: "test"}

		_, err := reg.Generate(context.Background(), "system", "user")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "api failure" {
			t.Errorf("error: got %q, want %q", err.Error(), "api failure")
		}
	})

	t.Run("errors when active provider is missing", func(t *testing.T) {
		reg := NewRegistry("claude", map[string]ProviderConfig{})

		_, err := reg.Generate(context.Background(), "system", "user")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

// ---------- NewRegistry ----------

func TestNewRegistryProviderNames(t *testing.T) {
	for _, name := range []string{"claude", "openai"} {
		t.Run(name, func(t *testing.T) {
			reg := NewRegistry(name, map[string]ProviderConfig{
				name: {APIKey: "test-key"},
			})

			p, err := reg.Active()
			if err != nil {
				t.Fatalf("Active: unexpected error: %v", err)
			}
			if p.Name() != name {
				t.Errorf("Name: got %q, want %q", p.Name(), name)
			}
			if reg.Name() != name {
				t.Errorf("Registry.Name: got %q, want %q", reg.Name(), name)
			}
		})
	}
}

func TestNewRegistrySkipsEmptyAPIKey(t *testing.T) {
	reg := NewRegistry("claude", map[string]ProviderConfig{
		"claude": {APIKey: ""},
		"openai": {APIKey: "valid-key"},
	})

	if reg.hasProvider("claude") {
		t.Error("claude should be skipped (no API key)")
	}
	if !reg.hasProvider("openai") {
		t.Error("openai should be available (has API key)")
	}
	if got := reg.Available(); len(got) != 1 || got[0] != "openai" {
		t.Errorf("Available: got %v, want [openai]", got)
	}
}

func TestNewRegistryIgnoresUnknownProvider(t *testing.T) {
	reg := NewRegistry("unknown", map[string]ProviderConfig{
		"unknown": {APIKey: "key"},
	})

	if reg.hasProvider("unknown") {
		t.Error("unknown provider should not be registered")
	}
	if len(reg.Available()) != 0 {
		t.Errorf("Available: got %v, want none", reg.Available())
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	reg := NewRegistry("claude", map[string]ProviderConfig{
		"openai": {APIKey: "a"},
		"claude": {APIKey: "b"},
	})

	got := reg.Available()
	if len(got) != 2 || got[0] != "claude" || got[1] != "openai" {
		t.Errorf("Available: got %v, want [claude openai]", got)
	}
}

// ---------- Registry.register ----------

// register adds or replaces a provider.
func (r *Registry) register(name string, p Provider) {
	r.providers[name] = p
}

// hasProvider reports whether a named provider is configured.
func (r *Registry) hasProvider(name string) bool {
	_, ok := r.providers[name]
	return ok
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry("stub", nil)
	if reg.hasProvider("stub") {
		t.Fatal("stub should not exist before register")
	}

	reg.register("stub", &mockProvider{name: "stub", response: "stubbed"})

	got, err := reg.Generate(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if got != "stubbed" {
		t.Errorf("Generate: got %q, want %q", got, "stubbed")
	}
}
