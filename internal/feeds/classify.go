package feeds

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heuristics that separate real articles from navigation chrome on corporate
// newsroom pages. Pure predicates, no I/O; the scrapers call these per
// candidate and silently drop rejects.

// sectionPaths are listing pages that look like articles but are just the
// section index itself ("/news", "/blog", ...).
var sectionPaths = map[string]bool{
	"news":     true,
	"newsroom": true,
	"blog":     true,
	"articles": true,
}

// navSegments are path segments that mark corporate chrome, not articles.
var navSegments = map[string]bool{
	"about":      true,
	"careers":    true,
	"contact":    true,
	"investors":  true,
	"privacy":    true,
	"terms":      true,
	"support":    true,
	"locations":  true,
	"brands":     true,
	"leadership": true,
	"board":      true,
	"events":     true,
	"webcasts":   true,
	"jobs":       true,
	"login":      true,
}

// articleTokens are path hints that a URL points at editorial content.
var articleTokens = []string{"news", "blog", "article", "press", "stories", "post"}

// boilerplateTitles are exact (case-insensitive) titles of nav links and
// section headers that never identify an article.
var boilerplateTitles = map[string]bool{
	"news":               true,
	"newsroom":           true,
	"about":              true,
	"company":            true,
	"careers":            true,
	"investors":          true,
	"contact":            true,
	"subscribe":          true,
	"locations":          true,
	"brands":             true,
	"board of directors": true,
	"leadership":         true,
	"events & webcasts":  true,
	"press releases":     true,
	"sec filings":        true,
	"quarterly results":  true,
}

var (
	yearToken  = regexp.MustCompile(`^20\d{2}$`)
	whitespace = regexp.MustCompile(`\s+`)
)

const (
	minTitleLen   = 12
	minTitleWords = 3
)

// NormalizeSpace collapses runs of whitespace to single spaces and trims.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// IsArticleLink reports whether link plausibly points at an article published
// by src. The link must already be absolute; same-host, deep enough, not a
// known nav path, and carrying either an editorial token or a year hint.
func IsArticleLink(link string, src Source) bool {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return false
	}

	home, err := url.Parse(src.Homepage)
	if err != nil || !strings.EqualFold(u.Host, home.Host) {
		return false
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return false
	}
	if sectionPaths[strings.ToLower(path)] {
		return false
	}

	segments := make([]string, 0, 4)
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, strings.ToLower(seg))
		}
	}
	if len(segments) < 2 {
		return false
	}
	for _, seg := range segments {
		if navSegments[seg] {
			return false
		}
	}

	for _, seg := range segments {
		for _, tok := range articleTokens {
			if strings.Contains(seg, tok) {
				return true
			}
		}
		if yearToken.MatchString(seg) {
			return true
		}
	}
	return false
}

// IsArticleTitle reports whether title reads like a headline rather than a
// nav label: non-boilerplate, at least 12 characters and 3 words after
// whitespace normalization.
func IsArticleTitle(title string) bool {
	title = NormalizeSpace(title)
	if title == "" {
		return false
	}
	if boilerplateTitles[strings.ToLower(title)] {
		return false
	}
	if utf8.RuneCountInString(title) < minTitleLen {
		return false
	}
	if len(strings.Fields(title)) < minTitleWords {
		return false
	}
	return true
}

// ResolveLink absolutizes href against the source homepage. Returns "" for
// unusable links.
func ResolveLink(href string, src Source) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	base, err := url.Parse(src.Homepage)
	if err != nil {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
