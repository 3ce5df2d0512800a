package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pagegrade/backend/config"
	"github.com/pagegrade/backend/fetch"
	"github.com/pagegrade/backend/logging"
	"github.com/pagegrade/backend/middleware"
	"github.com/pagegrade/backend/readability"
	"github.com/pagegrade/backend/rules"
	"github.com/pagegrade/backend/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	recStore, err := store.New(dir)
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	t.Cleanup(func() { recStore.Shutdown() })

	fetcher := fetch.New(fetch.Options{})
	t.Cleanup(fetcher.Close)

	srv := &server{
		cfg:     config.Default(),
		engine:  rules.NewEngine(rules.NewRegistry()),
		fetcher: fetcher,
		recs:    recStore,
		stats:   logging.Initialize(dir),
	}
	return newRouter(srv, middleware.NewRateLimiter(100, 100))
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAssessmentsServiceFromHTML(t *testing.T) {
	r := newTestServer(t)

	body := `{"html":"<h1>Guide</h1><h2>Steps</h2><p>A short answer paragraph sits here with plain words.</p><ul><li>first</li><li>second</li></ul>"}`
	w := postJSON(t, r, "/api/readability/assessments", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Assessments []readability.Assessment `json:"assessments"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Assessments) != 5 {
		t.Fatalf("expected 5 assessments, got %d", len(resp.Assessments))
	}

	names := make(map[string]readability.Assessment, len(resp.Assessments))
	for _, a := range resp.Assessments {
		names[a.Name] = a
		if a.Level == "" {
			t.Errorf("assessment %s has no level", a.Name)
		}
	}
	for _, want := range []string{"crawlability", "engagement", "mobileFriendliness", "voiceSearchReadiness", "snippetPotential"} {
		if _, ok := names[want]; !ok {
			t.Errorf("missing assessment %q", want)
		}
	}

	// The ul in the HTML must register as list structure.
	for _, note := range names["snippetPotential"].Notes {
		if strings.Contains(note, "lists") {
			t.Errorf("list present but snippetPotential still flags missing lists: %q", note)
		}
	}
}

func TestAssessmentsServiceFromPlainText(t *testing.T) {
	r := newTestServer(t)

	w := postJSON(t, r, "/api/readability/assessments", `{"text":"What is this about? It is a short answer."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Assessments []readability.Assessment `json:"assessments"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Assessments) != 5 {
		t.Fatalf("expected 5 assessments, got %d", len(resp.Assessments))
	}
}

func TestUnknownReadabilityService(t *testing.T) {
	r := newTestServer(t)

	if w := postJSON(t, r, "/api/readability/nope", `{"text":"x"}`); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown service, got %d", w.Code)
	}
}
