package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/lakeforum/lakecli/internal/client/models"
	"github.com/lakeforum/lakecli/internal/imagex"
)

const (
	defaultPage     = 1
	defaultPageSize = 10

	// defaultFeedType is the post category the backend serves when callers
	// do not pick one.
	defaultFeedType = 2
)

// PageQuery carries pagination arguments. Zero values fall back to page 1
// and a page size of 10.
type PageQuery struct {
	Page     int
	PageSize int
}

func (p PageQuery) normalize() (page, size int) {
	page, size = p.Page, p.PageSize
	if page <= 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultPageSize
	}
	return page, size
}

func (p PageQuery) values() url.Values {
	page, size := p.normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(size))
	return q
}

// PostsService covers the post feed, single posts, post actions and the
// forum's lookup lists.
type PostsService struct {
	t *Transport
}

// ListPostsOptions filters the main post feed. Empty filters are still sent
// as empty query values; the backend requires the keys to exist.
type ListPostsOptions struct {
	Type         int    // post category; zero selects the default feed
	Page         int    // 1-based; zero means page 1
	Keyword      string // free-text search term
	TagID        string
	DepartmentID string
	ETag         string

	// SearchMode overrides the derived mode; when nil it is 1 exactly when
	// Keyword is non-empty.
	SearchMode *int
}

func (s *PostsService) List(ctx context.Context, opts ListPostsOptions) (*models.PostList, error) {
	postType := opts.Type
	if postType == 0 {
		postType = defaultFeedType
	}
	page := opts.Page
	if page <= 0 {
		page = defaultPage
	}
	searchMode := 0
	switch {
	case opts.SearchMode != nil:
		searchMode = *opts.SearchMode
	case opts.Keyword != "":
		searchMode = 1
	}

	q := url.Values{}
	q.Set("type", strconv.Itoa(postType))
	q.Set("search_mode", strconv.Itoa(searchMode))
	q.Set("etag", opts.ETag)
	q.Set("content", opts.Keyword)
	q.Set("tag_id", opts.TagID)
	q.Set("department_id", opts.DepartmentID)
	q.Set("page_size", strconv.Itoa(defaultPageSize))
	q.Set("page", strconv.Itoa(page))

	var list models.PostList
	if err := s.t.Get(ctx, "posts", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *PostsService) Get(ctx context.Context, id int) (*models.PostData, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	var data models.PostData
	if err := s.t.Get(ctx, "post", q, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CreatePost is the payload for a new post. Images may be bare filenames or
// full URLs as returned by the upload endpoint; they are reduced to bare
// filenames before submission because that is all the write endpoint
// accepts.
type CreatePost struct {
	Type         int
	Title        string
	Content      string
	DepartmentID string
	TagID        string
	Tag          string // legacy alias for TagID; TagID wins when both are set
	Campus       int
	Masked       []string
	Images       []string
}

func (s *PostsService) Create(ctx context.Context, p CreatePost) error {
	tagID := p.TagID
	if tagID == "" {
		tagID = p.Tag
	}

	form := NewForm().
		AddInt("type", p.Type).
		Add("title", p.Title).
		Add("content", p.Content).
		Add("department_id", p.DepartmentID).
		Add("tag_id", tagID).
		AddInt("campus", p.Campus).
		Add("masked", strings.Join(p.Masked, ","))
	for _, img := range p.Images {
		form.Add("images", imagex.ExtractImageName(img))
	}

	return s.t.PostForm(ctx, "post", form, nil)
}

func (s *PostsService) Delete(ctx context.Context, id int) error {
	q := url.Values{}
	q.Set("post_id", strconv.Itoa(id))
	return s.t.Get(ctx, "post/delete", q, nil)
}

// Visit records a view of the post.
func (s *PostsService) Visit(ctx context.Context, id int) error {
	form := NewForm().AddInt("post_id", id)
	return s.t.PostForm(ctx, "post/visit", form, nil)
}

// toggleOp encodes the backend's inverted-flag contract for like/dislike/
// favorite actions: engaging sends "0", undoing sends "1".
func toggleOp(engaged bool) string {
	if engaged {
		return "0"
	}
	return "1"
}

func (s *PostsService) toggle(ctx context.Context, path string, id int, engaged bool) error {
	form := NewForm().
		AddInt("post_id", id).
		Add("op", toggleOp(engaged))
	return s.t.PostForm(ctx, path, form, nil)
}

func (s *PostsService) Like(ctx context.Context, id int, like bool) error {
	return s.toggle(ctx, "post/like", id, like)
}

func (s *PostsService) Dislike(ctx context.Context, id int, dislike bool) error {
	return s.toggle(ctx, "post/dis", id, dislike)
}

func (s *PostsService) Favorite(ctx context.Context, id int, favorite bool) error {
	return s.toggle(ctx, "post/fav", id, favorite)
}

func (s *PostsService) Types(ctx context.Context) (*models.PostTypeList, error) {
	var list models.PostTypeList
	if err := s.t.Get(ctx, "posttypes", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *PostsService) HotTags(ctx context.Context) (*models.TagList, error) {
	var list models.TagList
	if err := s.t.Get(ctx, "tags/hot", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *PostsService) RecommendTag(ctx context.Context) (*models.TagData, error) {
	var data models.TagData
	if err := s.t.Get(ctx, "tag/recommend", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *PostsService) SearchTags(ctx context.Context, name string) (*models.TagList, error) {
	q := url.Values{}
	q.Set("name", name)

	var list models.TagList
	if err := s.t.Get(ctx, "tags", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *PostsService) Banners(ctx context.Context) (*models.BannerList, error) {
	var list models.BannerList
	if err := s.t.Get(ctx, "banners", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *PostsService) Departments(ctx context.Context) (*models.DepartmentList, error) {
	var list models.DepartmentList
	if err := s.t.Get(ctx, "departments", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *PostsService) paged(ctx context.Context, path string, pq PageQuery) (*models.PostList, error) {
	var list models.PostList
	if err := s.t.Get(ctx, path, pq.values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Mine lists the current user's own posts.
func (s *PostsService) Mine(ctx context.Context, pq PageQuery) (*models.PostList, error) {
	return s.paged(ctx, "posts/user", pq)
}

// Favorites lists the posts the current user has favorited.
func (s *PostsService) Favorites(ctx context.Context, pq PageQuery) (*models.PostList, error) {
	return s.paged(ctx, "posts/fav", pq)
}

// History lists the posts the current user has visited.
func (s *PostsService) History(ctx context.Context, pq PageQuery) (*models.PostList, error) {
	return s.paged(ctx, "posts/history", pq)
}
