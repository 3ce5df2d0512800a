package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const samplePage = `<!DOCTYPE html>
<html><head><title>Sample Article</title></head>
<body><article><h1>Sample Article</h1>
<p>This is the first paragraph of the article with enough words to matter.</p>
<p>This is the second paragraph, also reasonably long for extraction purposes.</p>
</article></body></html>`

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	f := New(Options{Timeout: 5 * time.Second, CacheTTL: time.Minute, MaxCacheSize: 10})
	t.Cleanup(f.Close)
	return f
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("expected user agent %q, got %q", userAgent, got)
		}
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	f := newTestFetcher(t)
	page, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if page.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", page.StatusCode)
	}
	if !strings.Contains(page.HTML, "first paragraph") {
		t.Error("fetched HTML missing body content")
	}
	if page.Title != "Sample Article" {
		t.Errorf("expected extracted title, got %q", page.Title)
	}
	if page.FromCache {
		t.Error("first fetch should not come from cache")
	}
}

func TestFetchCaching(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	f := newTestFetcher(t)
	if _, err := f.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	page, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if !page.FromCache {
		t.Error("second fetch should come from cache")
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 server hit, got %d", hits.Load())
	}
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := newTestFetcher(t)
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected error for 404 response")
	}
	if f.CacheSize() != 0 {
		t.Error("failed fetches must not be cached")
	}
}

func TestFetchInvalidURL(t *testing.T) {
	f := newTestFetcher(t)
	if _, err := f.Fetch(context.Background(), "ftp://example.com"); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}

func TestFetchContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	f := newTestFetcher(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := f.Fetch(ctx, server.URL); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestCleanupEvictsOverLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	f := New(Options{Timeout: 5 * time.Second, CacheTTL: time.Hour, MaxCacheSize: 2})
	defer f.Close()

	for _, path := range []string{"/a", "/b", "/c", "/d"} {
		if _, err := f.Fetch(context.Background(), server.URL+path); err != nil {
			t.Fatalf("fetch %s failed: %v", path, err)
		}
	}
	f.cleanup()
	if f.CacheSize() != 2 {
		t.Errorf("expected cache trimmed to 2 entries, got %d", f.CacheSize())
	}
}

func TestClearCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	f := newTestFetcher(t)
	f.Fetch(context.Background(), server.URL)
	f.ClearCache()
	if f.CacheSize() != 0 {
		t.Errorf("expected empty cache, got %d entries", f.CacheSize())
	}
}
