package api

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoUploadResult reports an upload that succeeded at the transport
	// level but yielded no image identifiers.
	ErrNoUploadResult = errors.New("未获取到图片地址")
)

const (
	// FallbackRequestFailed is the generic failure message for the main API.
	FallbackRequestFailed = "请求失败"
	// FallbackUploadFailed is the generic failure message for the image-upload API.
	FallbackUploadFailed = "上传失败"
)

// Error is an application-level failure reported by the backend: either a
// non-OK envelope code, or an error message embedded in the payload of an
// otherwise successful envelope. Message is the most specific text the
// response carried and is suitable for direct display.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
