package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginByPassword(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/passwd", r.URL.Path)
		require.Equal(t, "student1", r.URL.Query().Get("user"))
		require.Equal(t, "secret", r.URL.Query().Get("password"))
		w.Write([]byte(`{"code":200,"data":{"token":"tok-1","uid":42}}`))
	}))
	s := &AuthService{t: tr}

	data, err := s.LoginByPassword(context.Background(), "student1", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", data.Token)
	require.Equal(t, 42, data.UID)
}

func TestLoginByPassword_WrongCredentials(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":{"error":"账号或密码错误"}}`))
	}))
	s := &AuthService{t: tr}

	_, err := s.LoginByPassword(context.Background(), "student1", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "账号或密码错误", apiErr.Message)
}

func TestLoginByToken(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/token", r.URL.Path)
		require.Equal(t, "old-tok", r.URL.Query().Get("token"))
		w.Write([]byte(`{"code":200,"data":{"token":"fresh-tok"}}`))
	}))
	s := &AuthService{t: tr}

	data, err := s.LoginByToken(context.Background(), "old-tok")
	require.NoError(t, err)
	require.Equal(t, "fresh-tok", data.Token)
}
