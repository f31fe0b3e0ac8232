// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package parse

import (
	"strings"

	"autobloggerx/internal/models"
)

// Labels of the hero reply, in the order the prompt asks for them.
const (
	LabelHeroTitle = "HERO_TITLE"
	LabelHeroText  = "HERO_TEXT"
	LabelOutroText = "OUTRO_TEXT"
)

var heroLabels = []string{LabelHeroTitle, LabelHeroText, LabelOutroText}

// matchHero accepts lines that start exactly with one of the hero labels
// followed by a colon.
func matchHero(line string) (string, string, bool) {
	for _, label := range heroLabels {
		if rest, ok := strings.CutPrefix(line, label+":"); ok {
			return label, strings.TrimSpace(rest), true
		}
	}
	return "", "", false
}

// Hero parses the hero section reply. Fields whose label is missing are
// left as empty strings.
func Hero(reply string) models.HeroContent {
	var hero models.HeroContent
	merge(scanLines(reply, matchHero), map[string]*string{
		LabelHeroTitle: &hero.Title,
		LabelHeroText:  &hero.Text,
		LabelOutroText: &hero.Outro,
	})
	return hero
}
