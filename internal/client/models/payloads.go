package models

// Payload shapes for the unwrapped "data" member of backend envelopes.
// Listing endpoints wrap their items in a "list" key with an optional total.

// TokenData is returned by auth/passwd and auth/token.
type TokenData struct {
	Token string `json:"token"`
	UID   int    `json:"uid"`
}

// UserData is returned by GET user.
type UserData struct {
	User *User `json:"user"`
}

// PostData is returned by GET post.
type PostData struct {
	Post *Post `json:"post"`
}

// PostList is returned by the paged post listings.
type PostList struct {
	List  []Post `json:"list"`
	Total int    `json:"total"`
}

// FloorData is returned by GET floor.
type FloorData struct {
	Floor *Floor `json:"floor"`
}

// FloorList is returned by GET floors and GET floor/replys.
type FloorList struct {
	List  []Floor `json:"list"`
	Total int     `json:"total"`
}

// PostTypeList is returned by GET posttypes.
type PostTypeList struct {
	List []PostType `json:"list"`
}

// TagList is returned by the tag listing and search endpoints.
type TagList struct {
	List []Tag `json:"list"`
}

// TagData is returned by GET tag/recommend.
type TagData struct {
	Tag *Tag `json:"tag"`
}

// DepartmentList is returned by GET departments.
type DepartmentList struct {
	List []Department `json:"list"`
}

// BannerList is returned by GET banners.
type BannerList struct {
	List []Banner `json:"list"`
}

// NoticeList is returned by GET message/notices/department.
type NoticeList struct {
	List []Notice `json:"list"`
}

// MessageCount is returned by GET message/count.
type MessageCount struct {
	Floor  int `json:"floor"`
	Reply  int `json:"reply"`
	Notice int `json:"notice"`
	Like   int `json:"like"`
}

// Setting is returned by GET setting.
type Setting struct {
	HideAvatar bool `json:"hide_avatar"`
}
