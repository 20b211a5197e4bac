package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abelbrown/pressdeck/internal/feeds"
	"github.com/abelbrown/pressdeck/internal/fetch"
)

const feedBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>Example News</title>
  <item>
    <title>Example Launches New Widget Platform</title>
    <link>/news/2024/item</link>
    <pubDate>Wed, 02 Jan 2024 10:00:00 GMT</pubDate>
    <description>&lt;p&gt;A &lt;b&gt;big&lt;/b&gt; launch.&lt;/p&gt;</description>
    <media:thumbnail url="https://cdn.example.com/widget.png"/>
  </item>
  <item>
    <title>About</title>
    <link>/about</link>
    <pubDate>Wed, 02 Jan 2024 11:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Example Publishes Annual Impact Report</title>
    <link>/news/2024/impact-report</link>
    <pubDate>Thu, 04 Jan 2024 09:30:00 GMT</pubDate>
    <description>&lt;p&gt;Details inside.&lt;/p&gt;&lt;img src="/img/report.jpg"/&gt;</description>
  </item>
</channel>
</rss>`

func newTestSource(url string) feeds.Source {
	return feeds.Source{Company: "Example", FeedURL: url + "/feed", Homepage: url}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	p := New(fetch.New(5 * time.Second))
	posts, err := p.Fetch(context.Background(), newTestSource(srv.URL))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2 (nav entry filtered)", len(posts))
	}

	first := posts[0]
	if first.Title != "Example Launches New Widget Platform" {
		t.Errorf("title = %q", first.Title)
	}
	if want := srv.URL + "/news/2024/item"; first.Link != want {
		t.Errorf("link = %q, want %q", first.Link, want)
	}
	if want := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC); !first.Published.Equal(want) {
		t.Errorf("published = %v, want %v", first.Published, want)
	}
	if first.Summary != "A big launch." {
		t.Errorf("summary = %q, want plain text", first.Summary)
	}
	if first.Image != "https://cdn.example.com/widget.png" {
		t.Errorf("image = %q, want media:thumbnail url", first.Image)
	}

	second := posts[1]
	if want := srv.URL + "/img/report.jpg"; second.Image != want {
		t.Errorf("image = %q, want embedded img resolved to %q", second.Image, want)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := New(fetch.New(5 * time.Second))
	if _, err := p.Fetch(context.Background(), newTestSource(srv.URL)); err == nil {
		t.Fatal("Fetch: expected error for 500")
	}
}

func TestFetchNotAFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not a feed</body></html>"))
	}))
	defer srv.Close()

	p := New(fetch.New(5 * time.Second))
	if _, err := p.Fetch(context.Background(), newTestSource(srv.URL)); err == nil {
		t.Fatal("Fetch: expected parse error for HTML body")
	}
}
