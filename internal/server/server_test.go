package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

func testResult() feeds.Result {
	return feeds.Result{
		Posts: []feeds.Post{
			{
				Company:        "Example",
				Title:          "Example Ships A Shiny New Thing",
				Link:           "https://example.test/news/2024/shiny",
				Published:      time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC),
				Summary:        "Very shiny indeed.",
				SourceHomepage: "https://example.test",
			},
		},
		Companies: []string{"Example"},
		Errors:    []string{"Broken: HTTP error: 500 Internal Server Error"},
	}
}

func newTestServer(refreshes *int) *Server {
	cache := NewCache(10*time.Minute, func(context.Context) feeds.Result {
		*refreshes++
		return testResult()
	})
	return New(cache, nil)
}

func TestPostsEndpoint(t *testing.T) {
	var refreshes int
	router := newTestServer(&refreshes).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		FetchedAt string            `json:"fetched_at"`
		Count     int               `json:"count"`
		Companies []string          `json:"companies"`
		Errors    []string          `json:"errors"`
		Posts     []json.RawMessage `json:"posts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || len(body.Posts) != 1 {
		t.Errorf("count = %d, posts = %d, want 1", body.Count, len(body.Posts))
	}
	if len(body.Companies) != 1 || body.Companies[0] != "Example" {
		t.Errorf("companies = %v", body.Companies)
	}
	if len(body.Errors) != 1 {
		t.Errorf("errors = %v", body.Errors)
	}

	var post map[string]any
	if err := json.Unmarshal(body.Posts[0], &post); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	if post["published_iso"] != "2024-01-02T10:00:00Z" {
		t.Errorf("published_iso = %v", post["published_iso"])
	}
	if post["published_display"] != "Jan 02, 2024 10:00 UTC" {
		t.Errorf("published_display = %v", post["published_display"])
	}
}

func TestHomeRendersPosts(t *testing.T) {
	var refreshes int
	router := newTestServer(&refreshes).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	html := w.Body.String()
	for _, want := range []string{"Example Ships A Shiny New Thing", "https://example.test/news/2024/shiny", "Broken:"} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHealthz(t *testing.T) {
	var refreshes int
	router := newTestServer(&refreshes).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if refreshes != 0 {
		t.Error("health check should not trigger aggregation")
	}
}

func TestCacheServesWithinTTL(t *testing.T) {
	var refreshes int
	router := newTestServer(&refreshes).Router()

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	}
	if refreshes != 1 {
		t.Errorf("refreshes = %d, want 1 within TTL", refreshes)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts?refresh=1", nil))
	if refreshes != 2 {
		t.Errorf("refreshes = %d, want forced refresh to bypass cache", refreshes)
	}
}

func TestCacheRefreshesWhenEmpty(t *testing.T) {
	calls := 0
	cache := NewCache(10*time.Minute, func(context.Context) feeds.Result {
		calls++
		return feeds.Result{Posts: []feeds.Post{}}
	})

	cache.Get(context.Background(), false)
	cache.Get(context.Background(), false)
	if calls != 2 {
		t.Errorf("calls = %d, want empty results to stay uncached", calls)
	}
}
