// Package avatarx resolves which avatar to show for a post or floor, with
// letter and color fallbacks for users who have none.
package avatarx

import "strings"

// placeholderLetter is shown when a nickname yields no usable character.
const placeholderLetter = "匿"

// typeOfficial marks posts addressed to school departments, which are
// rendered without the author's avatar.
const typeOfficial = 1

// palette is the fixed set of letter-avatar background colors, indexed by
// user id.
var palette = []string{
	"#42A5F5", "#66BB6A", "#FFA726", "#AB47BC",
	"#26C6DA", "#EC407A", "#8D6E63", "#78909C",
	"#5C6BC0", "#D4E157",
}

// Subject is the slice of a post or floor the avatar helpers need.
type Subject struct {
	// Type is the item's post category; the official category suppresses
	// avatars entirely.
	Type int

	// Avatar is the item's top-level avatar field.
	Avatar string

	// UserAvatar is the avatar inside the nested user_info block; it takes
	// precedence over the top-level field.
	UserAvatar string
}

// Resolve picks the avatar reference for s, or "" when the avatar must not
// be shown (hide flag, official/anonymous items) or none is available. An
// empty result means the view falls back to a letter avatar.
func Resolve(s Subject, hide bool) string {
	if hide || s.Type == typeOfficial {
		return ""
	}
	if s.UserAvatar != "" {
		return s.UserAvatar
	}
	return s.Avatar
}

// Letter picks the character for a letter-avatar fallback. Digits,
// asterisks and whitespace are stripped first, then everything outside the
// CJK unified ideographs block; the first remaining character wins. When
// nothing remains the raw name's first character is used, and an empty name
// falls back to the fixed placeholder.
func Letter(nickname string) string {
	name := nickname
	if name == "" {
		name = placeholderLetter
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return -1
		case r == '*':
			return -1
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return -1
		case r < 0x4e00 || r > 0x9fa5:
			return -1
		}
		return r
	}, name)

	if cleaned != "" {
		return string([]rune(cleaned)[0])
	}
	return string([]rune(name)[0])
}

// Color picks the letter-avatar background for a user id. Ids map onto the
// palette by modulo; missing ids get the first entry.
func Color(userID int) string {
	if userID <= 0 {
		return palette[0]
	}
	return palette[userID%len(palette)]
}
