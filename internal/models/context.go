package models

import "strings"

// GenerationContext accumulates labelled snippets of earlier generation
// steps. It is passed to later prompts as background. Values are never
// modified; With returns an extended copy.
type GenerationContext struct {
	entries []contextEntry
}

type contextEntry struct {
	label string
	text  string
}

// With returns a new context with one more entry appended.
func (c GenerationContext) With(label, text string) GenerationContext {
	entries := make([]contextEntry, len(c.entries), len(c.entries)+1)
	copy(entries, c.entries)
	return GenerationContext{entries: append(entries, contextEntry{label: label, text: text})}
}

// Len returns the number of entries.
func (c GenerationContext) Len() int { return len(c.entries) }

// String serializes the context as one "label: text" line per entry.
func (c GenerationContext) String() string {
	var sb strings.Builder
	for _, e := range c.entries {
		sb.WriteString(e.label)
		sb.WriteString(": ")
		sb.WriteString(e.text)
		sb.WriteString("\n")
	}
	return sb.String()
}
