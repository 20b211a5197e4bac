package feeds

import (
	"regexp"
	"strings"
	"time"
)

// Publish timestamps arrive in wildly inconsistent encodings: parsed feed
// times, RFC-2822 strings, bare dates buried in card text. ResolveTime
// normalizes all of them to a UTC instant and never fails; ParseTextTime is
// the fallible text-only path used where undated items must be dropped
// instead of defaulted.

// rfc2822Layouts cover the date formats feeds actually emit, zoned first.
var rfc2822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// naiveLayouts have no zone information; values are taken as UTC.
var naiveLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04:05",
	"2006-01-02 15:04:05",
}

// rfc2822ZoneOffsets are the obsolete named zones RFC 2822 allows, in
// seconds east of UTC. time.Parse records an unrecognized abbreviation
// as a zero-offset zone, so the instant has to be shifted afterwards.
var rfc2822ZoneOffsets = map[string]int{
	"UT":  0,
	"GMT": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// freeTextPatterns are tried in order; the first pattern with a match wins.
var freeTextPatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2}),?\s+(\d{4})`), "Jan 2 2006"},
	{regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})`), "2006-01-02"},
	{regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})`), "1/2/2006"},
}

// ResolveTime normalizes a publish timestamp to UTC.
//
// A structured time wins outright: its UTC calendar fields are taken at
// second precision. Otherwise fallback is parsed as an RFC-2822-style date
// (missing zone means UTC) and then as free text. When nothing is
// recoverable the current instant is returned, so callers always get a
// concrete time.
func ResolveTime(structured *time.Time, fallback string) time.Time {
	if structured != nil {
		u := structured.UTC()
		return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), 0, time.UTC)
	}
	if t, ok := ParseTextTime(fallback); ok {
		return t
	}
	return time.Now().UTC()
}

// ParseTextTime parses a textual date, returning false when no date can be
// recovered. Used directly by the card scraper, which drops undated items.
func ParseTextTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return normalizeZone(t), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return extractTextDate(s)
}

// normalizeZone converts a parsed time to UTC, honoring RFC 2822's
// named zones. A zero-offset zone whose abbreviation names a real
// offset (e.g. "EST") is shifted; any other unknown name is taken as
// already UTC.
func normalizeZone(t time.Time) time.Time {
	if name, offset := t.Zone(); offset == 0 {
		if secs, ok := rfc2822ZoneOffsets[name]; ok && secs != 0 {
			return t.Add(-time.Duration(secs) * time.Second).UTC()
		}
	}
	return t.UTC()
}

// extractTextDate scans free text for a recognizable date.
func extractTextDate(s string) (time.Time, bool) {
	for _, p := range freeTextPatterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		var candidate string
		switch p.layout {
		case "Jan 2 2006":
			// Normalize "SEPTEMBER 3, 2024" to "Sep 3 2024".
			month := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
			candidate = month + " " + m[2] + " " + m[3]
		case "2006-01-02":
			candidate = m[1] + "-" + m[2] + "-" + m[3]
		default:
			candidate = m[1] + "/" + m[2] + "/" + m[3]
		}
		if t, err := time.ParseInLocation(p.layout, candidate, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
