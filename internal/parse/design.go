// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package parse

import (
	"strings"

	"autobloggerx/internal/models"
)

// matchKeyValue splits a line on its first colon. The key is trimmed and
// lower-cased so "PRIMARY_COLOR" and "primary_color" are the same label.
func matchKeyValue(line string) (string, string, bool) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value), true
}

// Design parses the design system reply on top of the default theme.
// Values are taken verbatim; "#zzz" or an unknown font passes through.
func Design(reply string) models.DesignTheme {
	theme := models.DefaultDesignTheme()
	merge(scanLines(reply, matchKeyValue), map[string]*string{
		"primary_color":    &theme.PrimaryColor,
		"secondary_color":  &theme.SecondaryColor,
		"accent_color":     &theme.AccentColor,
		"background_color": &theme.BackgroundColor,
		"text_color":       &theme.TextColor,
		"font_heading":     &theme.FontHeading,
		"font_body":        &theme.FontBody,
	})
	return theme
}
