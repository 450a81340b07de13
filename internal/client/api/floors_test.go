package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFloorsService(t *testing.T) (*FloorsService, *recordingHandler) {
	t.Helper()
	h := &recordingHandler{}
	tr, _ := newTestTransport(t, h)
	return &FloorsService{t: tr}, h
}

func TestFloorsList(t *testing.T) {
	s, h := newFloorsService(t)

	_, err := s.List(context.Background(), ListFloorsOptions{PostID: 12})
	require.NoError(t, err)
	require.Equal(t, "/floors", h.path)
	require.Equal(t, "12", h.query.Get("post_id"))
	require.Equal(t, "1", h.query.Get("page"))
	require.Equal(t, "10", h.query.Get("page_size"))
	require.Equal(t, "0", h.query.Get("order"))
	require.Equal(t, "0", h.query.Get("only_owner"))

	_, err = s.List(context.Background(), ListFloorsOptions{PostID: 12, Page: 2, Order: 1, OnlyOwner: 1})
	require.NoError(t, err)
	require.Equal(t, "2", h.query.Get("page"))
	require.Equal(t, "1", h.query.Get("order"))
	require.Equal(t, "1", h.query.Get("only_owner"))
}

func TestFloorsReplies(t *testing.T) {
	s, h := newFloorsService(t)

	_, err := s.Replies(context.Background(), 34, 0)
	require.NoError(t, err)
	require.Equal(t, "/floor/replys", h.path)
	require.Equal(t, "34", h.query.Get("floor_id"))
	require.Equal(t, "1", h.query.Get("page"))
	require.Equal(t, "0", h.query.Get("pageBase"))
}

func TestFloorsOfficialReplies(t *testing.T) {
	s, h := newFloorsService(t)

	_, err := s.OfficialReplies(context.Background(), 12)
	require.NoError(t, err)
	require.Equal(t, "/post/replys", h.path)
	require.Equal(t, "12", h.query.Get("post_id"))
}

func TestFloorCreate_EmptyImagesMarker(t *testing.T) {
	s, h := newFloorsService(t)

	require.NoError(t, s.Create(context.Background(), 12, "顶一下", nil))
	require.Equal(t, "/floor", h.path)
	require.Equal(t, "12", h.form.values.Get("post_id"))
	require.Equal(t, "顶一下", h.form.values.Get("content"))
	// the field must exist even without images
	require.Equal(t, []string{""}, h.form.values["images"])
}

func TestFloorCreate_WithImages(t *testing.T) {
	s, h := newFloorsService(t)

	require.NoError(t, s.Create(context.Background(), 12, "图", []string{"a.jpg", "b.jpg"}))
	require.Equal(t, []string{"a.jpg", "b.jpg"}, h.form.values["images"])
}

func TestFloorReply(t *testing.T) {
	s, h := newFloorsService(t)

	require.NoError(t, s.Reply(context.Background(), 56, "回复", nil))
	require.Equal(t, "/floor/reply", h.path)
	require.Equal(t, "56", h.form.values.Get("reply_to_floor"))
	require.Equal(t, "回复", h.form.values.Get("content"))
	require.Equal(t, []string{""}, h.form.values["images"])
}

func TestFloorToggles(t *testing.T) {
	s, h := newFloorsService(t)

	require.NoError(t, s.Like(context.Background(), 9, true))
	require.Equal(t, "/floor/like", h.path)
	require.Equal(t, "9", h.form.values.Get("floor_id"))
	require.Equal(t, "0", h.form.values.Get("op"))

	require.NoError(t, s.Dislike(context.Background(), 9, false))
	require.Equal(t, "/floor/dis", h.path)
	require.Equal(t, "1", h.form.values.Get("op"))
}

func TestFloorDelete(t *testing.T) {
	s, h := newFloorsService(t)

	require.NoError(t, s.Delete(context.Background(), 9))
	require.Equal(t, "/floor/delete", h.path)
	require.Equal(t, "9", h.query.Get("floor_id"))
}
