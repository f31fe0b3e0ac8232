// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package populater runs one complete generation: the five-step pipeline,
// design diagnostics, the single insert and the optional archive copy.
package populater

import (
	"context"
	"log/slog"

	"autobloggerx/internal/models"
	"autobloggerx/internal/pipeline"
	"autobloggerx/internal/prompt"
	"autobloggerx/internal/store"
)

// Archiver keeps a copy of a saved website outside the website table.
type Archiver interface {
	Put(ctx context.Context, id string, v any) error
}

// Record is the archived form of a saved website.
type Record struct {
	ID string `json:"id"`
	*models.Website
}

// Populater generates and saves one website per Run.
type Populater struct {
	pipeline *pipeline.Pipeline
	writer   *store.Writer
	archive  Archiver
}

// Option configures a Populater.
type Option func(*Populater)

// WithArchive stores a JSON copy of every saved website in a.
func WithArchive(a Archiver) Option {
	return func(p *Populater) { p.archive = a }
}

// New creates a Populater that generates with p and saves with w.
func New(p *pipeline.Pipeline, w *store.Writer, opts ...Option) *Populater {
	pop := &Populater{pipeline: p, writer: w}
	for _, opt := range opts {
		opt(pop)
	}
	return pop
}

// Run generates content for req and inserts it. It returns the id the
// store assigned. Nothing is written if any generation step fails.
func (p *Populater) Run(ctx context.Context, req models.SiteRequest) (string, error) {
	slog.Info("generating website", "website_name", req.WebsiteName, "topic", req.Topic, "host_name", req.HostName)

	content, err := p.pipeline.Run(ctx, req)
	if err != nil {
		return "", err
	}

	checkDesign(content.Design)

	site, id, err := p.writer.Save(ctx, req, content)
	if err != nil {
		return "", err
	}

	if p.archive != nil {
		if err := p.archive.Put(ctx, id, Record{ID: id, Website: site}); err != nil {
			// The row is already stored; a missing archive copy does not fail the run.
			slog.Warn("archive website failed", "id", id, "error", err)
		} else {
			slog.Debug("website archived", "id", id)
		}
	}

	return id, nil
}

// checkDesign logs weak color pairs and fonts outside the offered list.
// The theme is stored as generated either way.
func checkDesign(theme models.DesignTheme) {
	for _, w := range theme.ContrastWarnings() {
		slog.Warn("design contrast", "detail", w)
	}
	for _, font := range []string{theme.FontHeading, theme.FontBody} {
		if !prompt.KnownFont(font) {
			slog.Warn("design font not in offered list", "font", font)
		}
	}
}
