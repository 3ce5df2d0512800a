// Package fetch retrieves remote pages for analysis. Fetched HTML is cached
// by URL for a configurable TTL so repeated analyses of the same page do not
// re-download it.
package fetch

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	shiori "github.com/go-shiori/go-readability"
)

const userAgent = "PageGrade/1.0"

// maxBodySize caps how much of a response we read (5 MB).
const maxBodySize = 5 << 20

// Page is one fetched document.
type Page struct {
	URL         string    `json:"url"`
	FinalURL    string    `json:"finalUrl"`
	StatusCode  int       `json:"statusCode"`
	HTML        string    `json:"-"`
	Title       string    `json:"title"`
	Byline      string    `json:"byline,omitempty"`
	Excerpt     string    `json:"excerpt,omitempty"`
	ArticleText string    `json:"-"`
	FetchedAt   time.Time `json:"fetchedAt"`
	FromCache   bool      `json:"fromCache"`
}

type cacheEntry struct {
	page      *Page
	timestamp time.Time
}

// Fetcher downloads pages over a pooled HTTP client and keeps a bounded
// TTL cache of results.
type Fetcher struct {
	client          *http.Client
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	cleanupInterval time.Duration
	done            chan struct{}
}

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	Timeout      time.Duration
	CacheTTL     time.Duration
	MaxCacheSize int
}

// New creates a Fetcher with connection pooling and keep-alive enabled.
func New(opts Options) *Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	if opts.MaxCacheSize == 0 {
		opts.MaxCacheSize = 1000
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	f := &Fetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		cache:           make(map[string]cacheEntry),
		cacheTTL:        opts.CacheTTL,
		maxCacheSize:    opts.MaxCacheSize,
		cleanupInterval: 5 * time.Minute,
		done:            make(chan struct{}),
	}

	go f.periodicCleanup()
	return f
}

func (f *Fetcher) periodicCleanup() {
	ticker := time.NewTicker(f.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.cleanup()
		case <-f.done:
			return
		}
	}
}

// cleanup removes expired entries, then evicts oldest entries if the cache
// is still over its size limit.
func (f *Fetcher) cleanup() {
	now := time.Now()

	f.cacheMutex.Lock()
	defer f.cacheMutex.Unlock()

	for key, entry := range f.cache {
		if now.Sub(entry.timestamp) > f.cacheTTL {
			delete(f.cache, key)
		}
	}

	if len(f.cache) > f.maxCacheSize {
		type keyed struct {
			key       string
			timestamp time.Time
		}
		entries := make([]keyed, 0, len(f.cache))
		for key, entry := range f.cache {
			entries = append(entries, keyed{key, entry.timestamp})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})
		for _, e := range entries[:len(f.cache)-f.maxCacheSize] {
			delete(f.cache, e.key)
		}
	}
}

func cacheKey(pageURL string) string {
	hash := md5.Sum([]byte(pageURL))
	return hex.EncodeToString(hash[:])
}

// Fetch downloads pageURL, serving from cache when a fresh entry exists.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", parsed.Scheme)
	}

	key := cacheKey(pageURL)
	f.cacheMutex.RLock()
	if entry, ok := f.cache[key]; ok && time.Since(entry.timestamp) < f.cacheTTL {
		f.cacheMutex.RUnlock()
		cached := *entry.page
		cached.FromCache = true
		return &cached, nil
	}
	f.cacheMutex.RUnlock()

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch failed: status %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	page := &Page{
		URL:        pageURL,
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		HTML:       string(body),
		FetchedAt:  time.Now(),
	}

	// Article extraction failing is not fatal; the raw HTML is still usable.
	if article, err := shiori.FromReader(strings.NewReader(page.HTML), resp.Request.URL); err == nil {
		page.Title = article.Title
		page.Byline = article.Byline
		page.Excerpt = article.Excerpt
		page.ArticleText = article.TextContent
	}

	f.cacheMutex.Lock()
	f.cache[key] = cacheEntry{page: page, timestamp: time.Now()}
	f.cacheMutex.Unlock()

	return page, nil
}

// CacheSize reports how many entries the cache currently holds.
func (f *Fetcher) CacheSize() int {
	f.cacheMutex.RLock()
	defer f.cacheMutex.RUnlock()
	return len(f.cache)
}

// ClearCache empties the page cache.
func (f *Fetcher) ClearCache() {
	f.cacheMutex.Lock()
	defer f.cacheMutex.Unlock()
	f.cache = make(map[string]cacheEntry)
}

// Close stops the cleanup goroutine.
func (f *Fetcher) Close() {
	close(f.done)
}
