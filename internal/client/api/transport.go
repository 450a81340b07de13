// Package api implements the HTTP layer of the forum client: a transport
// that attaches the session credential and normalizes the backend's response
// envelope, plus one thin service per backend resource.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lakeforum/lakecli/internal/client/credstore"
)

// TokenHeaderName is the request header carrying the session credential.
// The backend uses a bare header, not a bearer scheme.
const TokenHeaderName = "token"

// Transport performs HTTP calls against one backend base URL. Two instances
// exist in a running client: one for the general API and one for the
// image-upload endpoint, which has a longer timeout and its own fallback
// failure message.
//
// Request stages: read the current credential and attach it as the token
// header, then default the content type to JSON unless the body already set
// one (multipart bodies carry their boundary-bearing type). Response stages:
// map HTTP 401 to credential teardown, then decode and unwrap the envelope.
type Transport struct {
	baseURL  string
	http     *http.Client
	creds    credstore.Store
	fallback string

	onAuthFailure func()
}

func NewTransport(baseURL string, timeout time.Duration, creds credstore.Store, fallback string) *Transport {
	return &Transport{
		baseURL:  strings.TrimSuffix(baseURL, "/") + "/",
		http:     &http.Client{Timeout: timeout},
		creds:    creds,
		fallback: fallback,
	}
}

// SetAuthFailureHook registers a callback invoked after an HTTP 401 has
// cleared the stored credential. The hook is the transport's equivalent of
// the browser redirect to the login page.
func (t *Transport) SetAuthFailureHook(fn func()) {
	t.onAuthFailure = fn
}

// Get issues a GET request and decodes the unwrapped payload into out.
func (t *Transport) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return t.do(req, out)
}

// PostForm issues a POST with a multipart body and decodes the unwrapped
// payload into out. All write endpoints of this backend expect multipart,
// even for single scalar fields.
func (t *Transport) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return t.do(req, out)
}

func (t *Transport) do(req *http.Request, out any) error {
	// Each request reads its own credential snapshot at dispatch time;
	// concurrent requests share no other state here.
	if token, err := t.creds.Token(req.Context()); err == nil && token != "" {
		req.Header.Set(TokenHeaderName, token)
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		_ = t.creds.Clear(req.Context())
		if t.onAuthFailure != nil {
			t.onAuthFailure()
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected http status %s", ErrUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	data, err := decodeEnvelope(body, t.fallback)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: t.fallback}
	}
	return nil
}

// Client groups the per-resource services over the two transports.
type Client struct {
	Auth   *AuthService
	Posts  *PostsService
	Floors *FloorsService
	User   *UserService
	Upload *UploadService
}

// NewClient wires the resource services. api serves the general endpoints,
// pic the image-upload endpoint.
func NewClient(api, pic *Transport) *Client {
	return &Client{
		Auth:   &AuthService{t: api},
		Posts:  &PostsService{t: api},
		Floors: &FloorsService{t: api},
		User:   &UserService{t: api},
		Upload: &UploadService{t: pic},
	}
}
