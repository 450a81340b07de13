package api

import (
	"context"

	"github.com/lakeforum/lakecli/internal/client/models"
)

// UserService covers the current user's profile, messages and settings.
type UserService struct {
	t *Transport
}

func (s *UserService) Info(ctx context.Context) (*models.UserData, error) {
	var data models.UserData
	if err := s.t.Get(ctx, "user", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *UserService) ChangeNickname(ctx context.Context, name string) error {
	form := NewForm().Add("name", name)
	return s.t.PostForm(ctx, "user/name", form, nil)
}

func (s *UserService) MessageCount(ctx context.Context) (*models.MessageCount, error) {
	var data models.MessageCount
	if err := s.t.Get(ctx, "message/count", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *UserService) Notices(ctx context.Context) (*models.NoticeList, error) {
	var list models.NoticeList
	if err := s.t.Get(ctx, "message/notices/department", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *UserService) Setting(ctx context.Context) (*models.Setting, error) {
	var data models.Setting
	if err := s.t.Get(ctx, "setting", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Report files a complaint about a post, or about one floor of it when
// FloorID is set.
type Report struct {
	ID         int
	FloorID    int
	IsQuestion bool
	Reason     string
}

func (s *UserService) Report(ctx context.Context, r Report) error {
	form := NewForm().AddInt("id", r.ID)
	if r.FloorID != 0 {
		form.AddInt("floor_id", r.FloorID)
	}
	isQuestion := "0"
	if r.IsQuestion {
		isQuestion = "1"
	}
	form.Add("is_question", isQuestion)
	form.Add("reason", r.Reason)
	return s.t.PostForm(ctx, "report", form, nil)
}
