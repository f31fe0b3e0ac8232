// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package parse extracts typed fields from the line-based replies the
// model is asked to produce ("LABEL: value" per line). Unknown lines are
// ignored and missing labels fall back to defaults; parsing never fails.
package parse

import "strings"

// matcher inspects a single reply line and reports the recognised label
// and its value.
type matcher func(line string) (label, value string, ok bool)

// scanLines runs match over every line of text and returns the recognised
// label → value pairs. A label seen twice keeps its last value.
func scanLines(text string, match matcher) map[string]string {
	found := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		if label, value, ok := match(line); ok {
			found[label] = value
		}
	}
	return found
}

// merge writes every scanned value into the field registered for its label.
// Fields without a scanned value keep whatever they already hold.
func merge(found map[string]string, fields map[string]*string) {
	for label, value := range found {
		if dst, ok := fields[label]; ok {
			*dst = value
		}
	}
}
