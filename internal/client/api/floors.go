package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/lakeforum/lakecli/internal/client/models"
)

// FloorsService covers floors (direct replies under a post) and replies to
// floors.
type FloorsService struct {
	t *Transport
}

// ListFloorsOptions selects the floors of one post. Page is 1-based; zero
// means page 1. Order and OnlyOwner are passed through as the backend
// expects them (0 is the default for both).
type ListFloorsOptions struct {
	PostID    int
	Page      int
	Order     int
	OnlyOwner int
}

func (s *FloorsService) List(ctx context.Context, opts ListFloorsOptions) (*models.FloorList, error) {
	page := opts.Page
	if page <= 0 {
		page = defaultPage
	}

	q := url.Values{}
	q.Set("post_id", strconv.Itoa(opts.PostID))
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(defaultPageSize))
	q.Set("order", strconv.Itoa(opts.Order))
	q.Set("only_owner", strconv.Itoa(opts.OnlyOwner))

	var list models.FloorList
	if err := s.t.Get(ctx, "floors", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *FloorsService) Get(ctx context.Context, floorID int) (*models.FloorData, error) {
	q := url.Values{}
	q.Set("floor_id", strconv.Itoa(floorID))

	var data models.FloorData
	if err := s.t.Get(ctx, "floor", q, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Replies lists the replies under one floor.
func (s *FloorsService) Replies(ctx context.Context, floorID, page int) (*models.FloorList, error) {
	if page <= 0 {
		page = defaultPage
	}

	q := url.Values{}
	q.Set("floor_id", strconv.Itoa(floorID))
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(defaultPageSize))
	q.Set("pageBase", "0")

	var list models.FloorList
	if err := s.t.Get(ctx, "floor/replys", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// OfficialReplies lists the department's official replies to a post.
func (s *FloorsService) OfficialReplies(ctx context.Context, postID int) (*models.FloorList, error) {
	q := url.Values{}
	q.Set("post_id", strconv.Itoa(postID))

	var list models.FloorList
	if err := s.t.Get(ctx, "post/replys", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// addImages appends image fields to a form. The backend requires the images
// key to exist even when there are none, so an empty entry is written in
// that case.
func addImages(form *Form, images []string) {
	if len(images) == 0 {
		form.Add("images", "")
		return
	}
	for _, img := range images {
		form.Add("images", img)
	}
}

// Create posts a new floor under a post.
func (s *FloorsService) Create(ctx context.Context, postID int, content string, images []string) error {
	form := NewForm().
		AddInt("post_id", postID).
		Add("content", content)
	addImages(form, images)
	return s.t.PostForm(ctx, "floor", form, nil)
}

// Reply posts a reply to an existing floor.
func (s *FloorsService) Reply(ctx context.Context, floorID int, content string, images []string) error {
	form := NewForm().
		AddInt("reply_to_floor", floorID).
		Add("content", content)
	addImages(form, images)
	return s.t.PostForm(ctx, "floor/reply", form, nil)
}

func (s *FloorsService) toggle(ctx context.Context, path string, floorID int, engaged bool) error {
	form := NewForm().
		AddInt("floor_id", floorID).
		Add("op", toggleOp(engaged))
	return s.t.PostForm(ctx, path, form, nil)
}

func (s *FloorsService) Like(ctx context.Context, floorID int, like bool) error {
	return s.toggle(ctx, "floor/like", floorID, like)
}

func (s *FloorsService) Dislike(ctx context.Context, floorID int, dislike bool) error {
	return s.toggle(ctx, "floor/dis", floorID, dislike)
}

func (s *FloorsService) Delete(ctx context.Context, floorID int) error {
	q := url.Values{}
	q.Set("floor_id", strconv.Itoa(floorID))
	return s.t.Get(ctx, "floor/delete", q, nil)
}
