package models

import "testing"

func TestGenerationContext_Empty(t *testing.T) {
	var c GenerationContext
	if c.String() != "" {
		t.Errorf("String: got %q, want empty", c.String())
	}
	if c.Len() != 0 {
		t.Errorf("Len: got %d, want 0", c.Len())
	}
}

func TestGenerationContext_With(t *testing.T) {
	c1 := GenerationContext{}.With("Om oss", "<p>Vi skriver om resor.</p>")
	c2 := c1.With("Kontakt", "<p>Mejla oss.</p>")

	if got, want := c1.String(), "Om oss: <p>Vi skriver om resor.</p>\n"; got != want {
		t.Errorf("c1: got %q, want %q", got, want)
	}
	want := "Om oss: <p>Vi skriver om resor.</p>\nKontakt: <p>Mejla oss.</p>\n"
	if got := c2.String(); got != want {
		t.Errorf("c2: got %q, want %q", got, want)
	}
}

// TestGenerationContext_BranchesDoNotShareState checks that appending to
// the same base twice leaves each result independent.
func TestGenerationContext_BranchesDoNotShareState(t *testing.T) {
	base := GenerationContext{}.With("a", "1").With("b", "2")
	left := base.With("c", "left")
	right := base.With("c", "right")

	if left.String() != "a: 1\nb: 2\nc: left\n" {
		t.Errorf("left: got %q", left.String())
	}
	if right.String() != "a: 1\nb: 2\nc: right\n" {
		t.Errorf("right: got %q", right.String())
	}
	if base.Len() != 2 {
		t.Errorf("base Len: got %d, want 2", base.Len())
	}
}
