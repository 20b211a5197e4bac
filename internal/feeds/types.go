package feeds

import (
	"encoding/json"
	"time"
)

// Source is one configured company news channel: the feed (or listing page)
// URL we poll plus the homepage used to absolutize relative links.
// Sources are defined at startup and shared read-only across fetches.
type Source struct {
	Company  string `json:"company"`
	FeedURL  string `json:"feed_url"`
	Homepage string `json:"homepage"`
}

// Post is a normalized article from any source.
// Link is always absolute; Published is always a concrete UTC instant
// (falling back to fetch time when a source gives us nothing usable).
// Image is empty when the source exposed no usable image.
type Post struct {
	Company        string
	Title          string
	Link           string
	Published      time.Time
	Summary        string
	Image          string
	SourceHomepage string
}

// DisplayTime renders Published for presentation layers, e.g. "Jan 02, 2024 15:04 UTC".
func (p Post) DisplayTime() string {
	return p.Published.UTC().Format("Jan 02, 2006 15:04 UTC")
}

// MarshalJSON emits the wire shape consumed by the API and page layers.
func (p Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Company          string `json:"company"`
		Title            string `json:"title"`
		Link             string `json:"link"`
		PublishedISO     string `json:"published_iso"`
		Summary          string `json:"summary"`
		Image            string `json:"image,omitempty"`
		SourceHomepage   string `json:"source_homepage"`
		PublishedDisplay string `json:"published_display"`
	}{
		Company:          p.Company,
		Title:            p.Title,
		Link:             p.Link,
		PublishedISO:     p.Published.UTC().Format(time.RFC3339),
		Summary:          p.Summary,
		Image:            p.Image,
		SourceHomepage:   p.SourceHomepage,
		PublishedDisplay: p.DisplayTime(),
	})
}

// Result is one aggregation run: posts sorted newest-first, the sorted set of
// companies that contributed at least one post, and one error string per
// source whose pipeline failed outright. Constructed fresh each run, owned by
// the caller.
type Result struct {
	Posts     []Post   `json:"posts"`
	Companies []string `json:"companies"`
	Errors    []string `json:"errors"`
}
