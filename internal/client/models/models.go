// Package models contains the data transfer objects exchanged with the
// forum backend. All of them are transient view models; the client never
// keeps an authoritative copy and re-fetches on every listing.
package models

// UserInfo is the nested author block attached to posts and floors.
type UserInfo struct {
	UserID   int    `json:"uid"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Level    int    `json:"level"`
}

// Post is a single forum post as returned by the backend. Image URLs are
// bare filenames; expanding them to full URLs is the presentation layer's
// job (imagex).
type Post struct {
	ID           int       `json:"id"`
	UserID       int       `json:"uid"`
	Type         int       `json:"type"`
	Campus       int       `json:"campus"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURLs    []string  `json:"image_urls"`
	VisitCount   int       `json:"visit_count"`
	ReplyCount   int       `json:"reply_count"`
	LikeCount    int       `json:"like_count"`
	DisCount     int       `json:"dis_count"`
	FavCount     int       `json:"fav_count"`
	IsLike       bool      `json:"is_like"`
	IsDis        bool      `json:"is_dis"`
	IsFav        bool      `json:"is_fav"`
	IsOwner      bool      `json:"is_owner"`
	Avatar       string    `json:"avatar"`
	Tag          *Tag      `json:"tag"`
	Department   *Department `json:"department"`
	UserInfo     *UserInfo `json:"user_info"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// Floor is a reply directly under a post. Replies to floors reuse the same
// shape with ReplyTo/ReplyToName set.
type Floor struct {
	ID          int       `json:"id"`
	PostID      int       `json:"post_id"`
	UserID      int       `json:"uid"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	ReplyTo     int       `json:"reply_to"`
	ReplyToName string    `json:"reply_to_name"`
	LikeCount   int       `json:"like_count"`
	DisCount    int       `json:"dis_count"`
	ReplyCount  int       `json:"reply_count"`
	IsLike      bool      `json:"is_like"`
	IsDis       bool      `json:"is_dis"`
	IsOwner     bool      `json:"is_owner"`
	Avatar      string    `json:"avatar"`
	UserInfo    *UserInfo `json:"user_info"`
	SubFloors   []Floor   `json:"sub_floors"`
	CreatedAt   string    `json:"created_at"`
}

// User is the current user's profile.
type User struct {
	ID         int    `json:"id"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	Level      int    `json:"level"`
	LevelName  string `json:"level_name"`
	Score      int    `json:"score"`
	Telephone  string `json:"telephone"`
	Department string `json:"department"`
}

// Tag is a topic tag attachable to a post.
type Tag struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	PointID int    `json:"point_id"`
	Point   int    `json:"point"`
}

// Department is an organizational unit posts can be addressed to.
type Department struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Introduction string `json:"introduction"`
}

// PostType is a post category ("校务", "湖底" and friends).
type PostType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Banner is a rotating banner shown on the home view.
type Banner struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	URL     string `json:"url"`
}

// Notice is a department announcement delivered through the message feed.
type Notice struct {
	ID        int    `json:"id"`
	Sender    string `json:"sender"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
