package api

import (
	"context"

	"github.com/google/uuid"
)

// UploadService talks to the separate image-upload endpoint.
type UploadService struct {
	t *Transport
}

// uploadData mirrors the shapes the upload endpoint has been observed
// returning. Pointer slices distinguish a key that is present but empty
// from one that is absent.
type uploadData struct {
	URLs   *[]string   `json:"urls"`
	List   *[]string   `json:"list"`
	Images *[]string   `json:"images"`
	Nested *uploadData `json:"data"`
}

// uploadRules is the documented precedence for locating uploaded image
// identifiers in the response: urls, list, images, then the same three
// nested one level deeper under data. The first present key wins, even if
// its list is empty.
var uploadRules = []func(d *uploadData) *[]string{
	func(d *uploadData) *[]string { return d.URLs },
	func(d *uploadData) *[]string { return d.List },
	func(d *uploadData) *[]string { return d.Images },
	func(d *uploadData) *[]string {
		if d.Nested == nil {
			return nil
		}
		return d.Nested.URLs
	},
	func(d *uploadData) *[]string {
		if d.Nested == nil {
			return nil
		}
		return d.Nested.List
	},
	func(d *uploadData) *[]string {
		if d.Nested == nil {
			return nil
		}
		return d.Nested.Images
	},
}

func extractUploaded(d *uploadData) []string {
	for _, rule := range uploadRules {
		if urls := rule(d); urls != nil {
			return *urls
		}
	}
	return nil
}

// Images uploads the given image files and returns the identifiers the
// backend assigned, flattened to a string slice. A transport-successful
// upload that yields no identifiers returns ErrNoUploadResult.
//
// Each file is sent under the "images" field with a generated unique
// filename; the backend derives the stored name itself.
func (s *UploadService) Images(ctx context.Context, files [][]byte) ([]string, error) {
	form := NewForm()
	for _, data := range files {
		form.AddFile("images", uuid.NewString()+".jpg", data)
	}

	var data uploadData
	if err := s.t.PostForm(ctx, "upload/image", form, &data); err != nil {
		return nil, err
	}

	urls := extractUploaded(&data)
	if len(urls) == 0 {
		return nil, ErrNoUploadResult
	}
	return urls, nil
}
