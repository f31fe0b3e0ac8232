// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from Swedish names.
package slug

import (
	"regexp"
	"strings"
)

var (
	// swedishLetters folds the Swedish vowels to plain ASCII.
	swedishLetters = strings.NewReplacer("å", "a", "ä", "a", "ö", "o")
	// nonAlphanumeric matches every run of characters outside [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Resor & Äventyr på Öland" → "resor-aventyr-pa-oland"
func Generate(s string) string {
	result := strings.ToLower(s)
	result = swedishLetters.Replace(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
