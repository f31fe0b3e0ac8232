package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"autobloggerx/internal/models"
)

func TestRESTStore_Insert(t *testing.T) {
	var (
		gotMethod, gotPath string
		gotQuery           string
		gotHeaders         http.Header
		gotBody            map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHeaders = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":"abc123","host_name":"testblog.se","created_at":"2026-03-01T10:00:00.123456+00:00"}]`))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL+"/", "anon-key", 0)
	site := &models.Website{
		HostName:    "testblog.se",
		WebsiteName: "TestBlog",
		Templates:   models.Templates{Header: 3},
		Features:    models.Features{SearchBar: true},
	}

	rows, err := s.Insert(context.Background(), site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotPath != "/rest/v1/website_data" {
		t.Errorf("path = %q, want /rest/v1/website_data", gotPath)
	}
	if gotQuery != "select=id" {
		t.Errorf("query = %q, want select=id", gotQuery)
	}
	for header, want := range map[string]string{
		"apikey":        "anon-key",
		"Authorization": "Bearer anon-key",
		"Content-Type":  "application/json",
		"Prefer":        "return=representation",
	} {
		if got := gotHeaders.Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if gotBody["host_name"] != "testblog.se" {
		t.Errorf("host_name = %v", gotBody["host_name"])
	}
	if gotBody["template_header"] != float64(3) {
		t.Errorf("template_header = %v, want 3", gotBody["template_header"])
	}
	if gotBody["show_search_bar"] != true {
		t.Errorf("show_search_bar = %v, want true", gotBody["show_search_bar"])
	}

	want := []models.WebsiteSummary{{ID: "abc123"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// The row is stored once the insert returns, so extra columns in the reply
// must not turn it into a failure.
func TestRESTStore_SaveIgnoresReturnedColumnFormats(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"timestamp without zone", `[{"id":"abc123","created_at":"2026-03-01T10:00:00.123456"}]`},
		{"null created_at", `[{"id":"abc123","created_at":null}]`},
		{"unexpected types", `[{"id":"abc123","template_header":"three","show_search_bar":"yes"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(tt.reply))
			}))
			defer srv.Close()

			w := NewWriter(NewRESTStore(srv.URL, "k", 0), &fixedRand{values: []int{0}})
			_, id, err := w.Save(context.Background(), testRequest, testContent)
			if err != nil {
				t.Fatalf("Save: unexpected error: %v", err)
			}
			if id != "abc123" {
				t.Errorf("id = %q, want abc123", id)
			}
		})
	}
}

func TestRESTStore_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewRESTStore(srv.URL, "k", 50*time.Millisecond).List(context.Background(), 1)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewRESTStore_DefaultTimeout(t *testing.T) {
	s := NewRESTStore("http://example.invalid", "k", 0)
	if s.client.Timeout != DefaultRESTTimeout {
		t.Errorf("timeout = %v, want %v", s.client.Timeout, DefaultRESTTimeout)
	}
}

func TestRESTStore_InsertEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rows, err := NewRESTStore(srv.URL, "k", 0).Insert(context.Background(), &models.Website{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestRESTStore_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	_, err := NewRESTStore(srv.URL, "bad", 0).Insert(context.Background(), &models.Website{})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "status 401") || !strings.Contains(err.Error(), "Invalid API key") {
		t.Errorf("error = %q, want status and body", err)
	}
}

func TestRESTStore_List(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		gotQuery = r.URL.Query()
		w.Write([]byte(`[
			{"id":"b","website_name":"Andra","created_at":"2026-03-02T00:00:00Z"},
			{"id":"a","website_name":"Första","created_at":"2026-03-01T00:00:00Z"}
		]`))
	}))
	defer srv.Close()

	rows, err := NewRESTStore(srv.URL, "k", 0).List(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantQuery := map[string][]string{
		"select": {"id,host_name,website_name,topic,primary_color,background_color,text_color,font_heading,font_body,created_at"},
		"order":  {"created_at.desc"},
		"limit":  {"10"},
	}
	if diff := cmp.Diff(wantQuery, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if len(rows) != 2 || rows[0].ID != "b" || rows[1].WebsiteName != "Första" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestRESTStore_ListWithoutLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("limit") {
			t.Errorf("limit should be omitted, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := NewRESTStore(srv.URL, "k", 0).List(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRESTStore_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewRESTStore(srv.URL, "k", 0).List(context.Background(), 5)
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("error = %v, want unmarshal error", err)
	}
}

func TestRESTStore_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRESTStore(srv.URL, "k", 0).Insert(ctx, &models.Website{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
