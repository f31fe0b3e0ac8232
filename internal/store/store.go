// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists generated websites to the website_data table,
// either through the hosted REST API or directly over PostgreSQL.
package store

import (
	"context"
	"errors"

	"autobloggerx/internal/models"
)

// TableName is the table every website row is written to.
const TableName = "website_data"

// ErrInsertFailed is returned when an insert succeeds at the transport level
// but the store hands back no row.
var ErrInsertFailed = errors.New("insert failed")

// WebsiteStore is a backend that can insert and list websites.
type WebsiteStore interface {
	// Insert writes one row and returns the rows the store reports back.
	Insert(ctx context.Context, w *models.Website) ([]models.WebsiteSummary, error)

	// List returns the newest websites first, at most limit rows.
	List(ctx context.Context, limit int) ([]models.WebsiteSummary, error)
}

// summaryColumns are the columns read back after an insert and when listing.
var summaryColumns = []string{
	"id", "host_name", "website_name", "topic",
	"primary_color", "background_color", "text_color",
	"font_heading", "font_body", "created_at",
}
