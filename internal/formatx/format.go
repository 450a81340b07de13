// Package formatx contains pure formatting helpers for dates and user
// content. Nothing here touches the network or keeps state.
package formatx

import (
	"fmt"
	"strings"
	"time"
)

// timeNow is a test seam for relative-time formatting.
var timeNow = time.Now

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"`", "&#96;",
)

// RenderContent makes user text safe for HTML display: it escapes the
// HTML-significant characters, then converts newlines to <br/>. The order
// matters; escaping after the substitution would mangle the inserted
// markers.
func RenderContent(text string) string {
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(htmlEscaper.Replace(text), "\n", "<br/>")
}

// FormatRelativeTime buckets the elapsed time since t into 刚刚 (<1m),
// N分钟前 (<1h), N小时前 (<1d) and N天前 (<1w). Anything older renders as an
// absolute date.
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := timeNow().Sub(t).Seconds()
	switch {
	case diff < 60:
		return "刚刚"
	case diff < 3600:
		return fmt.Sprintf("%d分钟前", int(diff/60))
	case diff < 86400:
		return fmt.Sprintf("%d小时前", int(diff/3600))
	case diff < 604800:
		return fmt.Sprintf("%d天前", int(diff/86400))
	default:
		return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
	}
}

// FormatDateTime renders t as YYYY-MM-DD HH:mm:ss.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDateTimeShort renders t as YYYY-MM-DD HH:mm.
func FormatDateTimeShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// DefaultTruncateLen is the excerpt length used for post content in
// listings.
const DefaultTruncateLen = 150

// TruncateContent shortens post content to the default excerpt length.
func TruncateContent(text string) string {
	return Truncate(text, DefaultTruncateLen)
}

// Truncate cuts text to at most maxLen characters, appending "..." when
// anything was cut. Lengths are counted in runes so CJK text truncates
// where a reader expects.
func Truncate(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

// backendTimeLayouts lists the timestamp spellings the backend has been seen
// using.
var backendTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseBackendTime parses a backend timestamp string. The zero time is
// returned when nothing matches.
func ParseBackendTime(s string) time.Time {
	for _, layout := range backendTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
