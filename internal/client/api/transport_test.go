package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lakeforum/lakecli/internal/client/credstore"
)

func newTestTransport(t *testing.T, handler http.Handler) (*Transport, *credstore.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credstore.NewMemoryStore()
	tr := NewTransport(srv.URL, 5*time.Second, creds, FallbackRequestFailed)
	return tr, creds
}

func TestTransport_GetUnwrapsPayload(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posttypes", r.URL.Path)
		w.Write([]byte(`{"code":200,"data":{"list":[{"id":1,"name":"校务"}]}}`))
	}))

	var out struct {
		List []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"list"`
	}
	err := tr.Get(context.Background(), "posttypes", nil, &out)
	require.NoError(t, err)
	require.Len(t, out.List, 1)
	require.Equal(t, "校务", out.List[0].Name)
}

func TestTransport_AttachesTokenHeader(t *testing.T) {
	var gotToken string
	tr, creds := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(TokenHeaderName)
		w.Write([]byte(`{"code":200}`))
	}))

	// anonymous request carries no token header
	require.NoError(t, tr.Get(context.Background(), "posts", nil, nil))
	require.Empty(t, gotToken)

	require.NoError(t, creds.Save(context.Background(), "tok-123"))
	require.NoError(t, tr.Get(context.Background(), "posts", nil, nil))
	require.Equal(t, "tok-123", gotToken)
}

func TestTransport_ContentTypeDefaults(t *testing.T) {
	var gotContentType string
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"code":200}`))
	}))

	require.NoError(t, tr.Get(context.Background(), "posts", nil, nil))
	require.Equal(t, "application/json", gotContentType)

	form := NewForm().Add("post_id", "1")
	require.NoError(t, tr.PostForm(context.Background(), "post/visit", form, nil))
	require.Contains(t, gotContentType, "multipart/form-data; boundary=")
}

func TestTransport_QueryEncoding(t *testing.T) {
	var gotQuery url.Values
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"code":200}`))
	}))

	q := url.Values{}
	q.Set("user", "u1")
	q.Set("password", "p1")
	require.NoError(t, tr.Get(context.Background(), "auth/passwd", q, nil))
	require.Equal(t, "u1", gotQuery.Get("user"))
	require.Equal(t, "p1", gotQuery.Get("password"))
}

func TestTransport_UnauthorizedClearsCredentialAndFiresHook(t *testing.T) {
	tr, creds := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	hookCalls := 0
	tr.SetAuthFailureHook(func() { hookCalls++ })

	require.NoError(t, creds.Save(context.Background(), "stale"))

	err := tr.Get(context.Background(), "user", nil, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 1, hookCalls)

	token, err := creds.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestTransport_ServerErrorIsUnavailable(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := tr.Get(context.Background(), "posts", nil, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTransport_NetworkErrorIsUnavailable(t *testing.T) {
	creds := credstore.NewMemoryStore()
	tr := NewTransport("http://127.0.0.1:1", 500*time.Millisecond, creds, FallbackRequestFailed)

	err := tr.Get(context.Background(), "posts", nil, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTransport_EnvelopeFailurePropagates(t *testing.T) {
	tr, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":403,"msg":"无权限"}`))
	}))

	err := tr.Get(context.Background(), "post/delete", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.Code)
	require.Equal(t, "无权限", apiErr.Message)
}
