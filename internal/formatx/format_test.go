package formatx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"escapes markup", `<a href="x">&'` + "`", "&lt;a href=&quot;x&quot;&gt;&amp;&#39;&#96;"},
		{"newlines become breaks", "line1\nline2", "line1<br/>line2"},
		{"escapes before breaking", "<a>\n&", "&lt;a&gt;<br/>&amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RenderContent(tt.in))
		})
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"just now", now.Add(-30 * time.Second), "刚刚"},
		{"minutes", now.Add(-5 * time.Minute), "5分钟前"},
		{"hours", now.Add(-3 * time.Hour), "3小时前"},
		{"days", now.Add(-2 * 24 * time.Hour), "2天前"},
		{"older than a week", now.Add(-10 * 24 * time.Hour), "2026/8/21"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatRelativeTime(tt.t))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 8, 31, 9, 5, 7, 0, time.Local)
	require.Equal(t, "2026-08-31 09:05:07", FormatDateTime(ts))
	require.Equal(t, "2026-08-31 09:05", FormatDateTimeShort(ts))
	require.Empty(t, FormatDateTime(time.Time{}))
	require.Empty(t, FormatDateTimeShort(time.Time{}))
}

func TestTruncate(t *testing.T) {
	require.Empty(t, Truncate("", 10))
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "exact", Truncate("exact", 5))
	require.Equal(t, "abc...", Truncate("abcdef", 3))
	// CJK counts by runes, not bytes
	require.Equal(t, "食堂的饭...", Truncate("食堂的饭太难吃了", 4))
}

func TestTruncateContent(t *testing.T) {
	require.Equal(t, "short", TruncateContent("short"))

	long := strings.Repeat("长", DefaultTruncateLen+1)
	got := TruncateContent(long)
	require.Equal(t, DefaultTruncateLen+3, len([]rune(got)))
	require.True(t, strings.HasSuffix(got, "..."))
}

func TestParseBackendTime(t *testing.T) {
	want := time.Date(2026, 8, 31, 9, 5, 7, 0, time.Local)

	require.Equal(t, want, ParseBackendTime("2026-08-31 09:05:07"))
	require.Equal(t, want, ParseBackendTime("2026-08-31T09:05:07"))

	got := ParseBackendTime("2026-08-31T09:05:07+08:00")
	require.False(t, got.IsZero())
	require.Equal(t, 2026, got.Year())

	require.True(t, ParseBackendTime("not a time").IsZero())
	require.True(t, ParseBackendTime("").IsZero())
}
