// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"autobloggerx/internal/models"
)

// RESTStore talks to a PostgREST endpoint such as the one Supabase exposes
// under /rest/v1.
type RESTStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// DefaultRESTTimeout bounds a single REST call when no timeout is given.
const DefaultRESTTimeout = 30 * time.Second

// NewRESTStore creates a store for the project at baseURL authenticated
// with apiKey. A timeout of zero or less uses DefaultRESTTimeout.
func NewRESTStore(baseURL, apiKey string, timeout time.Duration) *RESTStore {
	if timeout <= 0 {
		timeout = DefaultRESTTimeout
	}
	return &RESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *RESTStore) tableURL() string {
	return s.baseURL + "/rest/v1/" + TableName
}

// insertedRow is the part of the created row read back after an insert.
// Only the id is selected so column formats of the table cannot fail the
// decode of a row that is already stored.
type insertedRow struct {
	ID string `json:"id"`
}

// Insert posts the website and asks for the created row's id in the
// response. Only ID is set on the returned summaries.
func (s *RESTStore) Insert(ctx context.Context, w *models.Website) ([]models.WebsiteSummary, error) {
	payload, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("rest marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tableURL()+"?select=id", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("rest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	var inserted []insertedRow
	if err := s.do(req, &inserted); err != nil {
		return nil, fmt.Errorf("insert %s: %w", TableName, err)
	}

	rows := make([]models.WebsiteSummary, len(inserted))
	for i, r := range inserted {
		rows[i] = models.WebsiteSummary{ID: r.ID}
	}
	return rows, nil
}

// List fetches the newest websites first.
func (s *RESTStore) List(ctx context.Context, limit int) ([]models.WebsiteSummary, error) {
	q := url.Values{}
	q.Set("select", strings.Join(summaryColumns, ","))
	q.Set("order", "created_at.desc")
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.tableURL()+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("rest request: %w", err)
	}

	var rows []models.WebsiteSummary
	if err := s.do(req, &rows); err != nil {
		return nil, fmt.Errorf("list %s: %w", TableName, err)
	}
	return rows, nil
}

// do sends req with the API key headers and decodes a 2xx JSON body into out.
func (s *RESTStore) do(req *http.Request, out any) error {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("rest http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest read body: %w", err)
	}

	slog.Debug("rest response", "method", req.Method, "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("rest API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("rest unmarshal: %w", err)
	}
	return nil
}
