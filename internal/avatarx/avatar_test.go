package avatarx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		s    Subject
		hide bool
		want string
	}{
		{"nested wins", Subject{Avatar: "top.jpg", UserAvatar: "nested.jpg"}, false, "nested.jpg"},
		{"top level fallback", Subject{Avatar: "top.jpg"}, false, "top.jpg"},
		{"none available", Subject{}, false, ""},
		{"hidden", Subject{Avatar: "top.jpg", UserAvatar: "nested.jpg"}, true, ""},
		{"official category", Subject{Type: 1, Avatar: "top.jpg"}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.s, tt.hide))
		})
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		want     string
	}{
		{"han first", "小明123", "小"},
		{"strips decorations", "*星星", "星"},
		{"latin falls back to raw first", "Alice", "A"},
		{"digits only falls back to raw first", "123abc", "1"},
		{"whitespace skipped", " 湖边人", "湖"},
		{"empty name", "", "匿"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Letter(tt.nickname))
		})
	}
}

func TestColor(t *testing.T) {
	require.Equal(t, palette[0], Color(0))
	require.Equal(t, palette[0], Color(-5))
	require.Equal(t, palette[3], Color(3))
	require.Equal(t, palette[3], Color(13))
	require.Equal(t, palette[0], Color(10))
}
