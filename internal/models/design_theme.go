// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DesignTheme is the color scheme and typography of a generated blog.
// Colors are hex strings as returned by the model; they are not validated.
type DesignTheme struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	AccentColor     string `json:"accent_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	FontHeading     string `json:"font_heading"`
	FontBody        string `json:"font_body"`
}

// DefaultDesignTheme returns the blue theme used for any field the model
// leaves out.
func DefaultDesignTheme() DesignTheme {
	return DesignTheme{
		PrimaryColor:    "#2563eb",
		SecondaryColor:  "#e0e7ff",
		AccentColor:     "#7c3aed",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		FontHeading:     "Inter",
		FontBody:        "Inter",
	}
}

// WCAG AA thresholds.
const (
	MinTextContrast    = 4.5
	MinHeadingContrast = 3.0
)

// ContrastRatio returns the WCAG 2.0 contrast ratio between two hex colors,
// between 1 and 21. It returns 0 if either color is not a six digit hex.
func ContrastRatio(a, b string) float64 {
	la, ok := luminance(a)
	if !ok {
		return 0
	}
	lb, ok := luminance(b)
	if !ok {
		return 0
	}
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// ContrastWarnings lists the color pairs of the theme that fall below the
// WCAG AA thresholds. Pairs with an unparseable color are skipped.
func (t DesignTheme) ContrastWarnings() []string {
	checks := []struct {
		name     string
		fg, bg   string
		minRatio float64
	}{
		{"text/background", t.TextColor, t.BackgroundColor, MinTextContrast},
		{"text/secondary", t.TextColor, t.SecondaryColor, MinTextContrast},
		{"primary/background", t.PrimaryColor, t.BackgroundColor, MinHeadingContrast},
		{"primary/secondary", t.PrimaryColor, t.SecondaryColor, MinHeadingContrast},
	}

	var warnings []string
	for _, c := range checks {
		ratio := ContrastRatio(c.fg, c.bg)
		if ratio == 0 || ratio >= c.minRatio {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s contrast %.2f:1 below %.1f:1 (%s on %s)",
			c.name, ratio, c.minRatio, c.fg, c.bg))
	}
	return warnings
}

// luminance computes the relative luminance of a #rrggbb color.
func luminance(hex string) (float64, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}

	channel := func(c uint64) float64 {
		s := float64(c) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	r, g, b := channel(v>>16&0xff), channel(v>>8&0xff), channel(v&0xff)
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}
