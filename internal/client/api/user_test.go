package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *recordingHandler) {
	t.Helper()
	h := &recordingHandler{}
	tr, _ := newTestTransport(t, h)
	return &UserService{t: tr}, h
}

func TestUserInfo(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)
		w.Write([]byte(`{"code":200,"data":{"user":{"id":7,"nickname":"小北","level":3}}}`))
	}))
	s := &UserService{t: tr}

	data, err := s.Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, data.User.ID)
	require.Equal(t, "小北", data.User.Nickname)
	require.Equal(t, 3, data.User.Level)
}

func TestChangeNickname(t *testing.T) {
	s, h := newUserService(t)

	require.NoError(t, s.ChangeNickname(context.Background(), "新名字"))
	require.Equal(t, "/user/name", h.path)
	require.Equal(t, "新名字", h.form.values.Get("name"))
}

func TestMessageCount(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/message/count", r.URL.Path)
		w.Write([]byte(`{"code":200,"data":{"floor":1,"reply":2,"notice":3,"like":4}}`))
	}))
	s := &UserService{t: tr}

	count, err := s.MessageCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count.Floor)
	require.Equal(t, 2, count.Reply)
	require.Equal(t, 3, count.Notice)
	require.Equal(t, 4, count.Like)
}

func TestNoticesAndSetting(t *testing.T) {
	s, h := newUserService(t)

	_, err := s.Notices(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/message/notices/department", h.path)

	_, err = s.Setting(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/setting", h.path)
}

func TestReport(t *testing.T) {
	s, h := newUserService(t)

	require.NoError(t, s.Report(context.Background(), Report{ID: 12, Reason: "广告"}))
	require.Equal(t, "/report", h.path)
	require.Equal(t, "12", h.form.values.Get("id"))
	require.Equal(t, "0", h.form.values.Get("is_question"))
	require.Equal(t, "广告", h.form.values.Get("reason"))
	// no floor was named, so the field stays out of the form
	require.NotContains(t, h.form.values, "floor_id")

	require.NoError(t, s.Report(context.Background(), Report{ID: 12, FloorID: 3, IsQuestion: true, Reason: "不实"}))
	require.Equal(t, "3", h.form.values.Get("floor_id"))
	require.Equal(t, "1", h.form.values.Get("is_question"))
}
