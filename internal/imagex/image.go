// Package imagex builds display URLs for backend image references and
// reduces image references to the bare filenames the write endpoints accept.
//
// Read endpoints return relative filenames (e.g. "abc123.jpg"); the origin
// server serves them at /download/origin/{filename} (thumbnails under
// /download/thumb/). Values that already are full URLs on a known host are
// rewritten onto the local proxy prefixes instead.
package imagex

import (
	"net/url"
	"strings"
)

const picProxyBase = "/qnhdpic/download/"

// known image hosts and the proxy prefixes they map to
const (
	picHost    = "qnhdpic.twt.edu.cn"
	staticHost = "qnhd.twt.edu.cn"

	picProxyPrefix    = "/qnhdpic"
	staticProxyPrefix = "/qnhd-static"
)

// OriginURL maps a relative filename to its full-size image path. Full URLs
// are proxied instead.
func OriginURL(filename string) string {
	if filename == "" {
		return ""
	}
	if strings.HasPrefix(filename, "http") {
		return proxyFullURL(filename)
	}
	return picProxyBase + "origin/" + filename
}

// ThumbURL maps a relative filename to its thumbnail path. Full URLs are
// proxied instead.
func ThumbURL(filename string) string {
	if filename == "" {
		return ""
	}
	if strings.HasPrefix(filename, "http") {
		return proxyFullURL(filename)
	}
	return picProxyBase + "thumb/" + filename
}

// AvatarURL maps an avatar reference to its image path.
func AvatarURL(avatar string) string {
	if avatar == "" {
		return ""
	}
	if strings.HasPrefix(avatar, "http") {
		return proxyFullURL(avatar)
	}
	return picProxyBase + "origin/" + avatar
}

// proxyFullURL rewrites a full URL on a recognized host onto the matching
// proxy prefix, keeping path and query. Unrecognized hosts pass through
// unchanged, as do values that are already local paths.
func proxyFullURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	suffix := u.Path
	if u.RawQuery != "" {
		suffix += "?" + u.RawQuery
	}
	switch u.Hostname() {
	case picHost:
		return picProxyPrefix + suffix
	case staticHost:
		return staticProxyPrefix + suffix
	}
	return raw
}

// OriginURLs maps a slice of filenames to full-size URLs.
func OriginURLs(filenames []string) []string {
	urls := make([]string, 0, len(filenames))
	for _, f := range filenames {
		urls = append(urls, OriginURL(f))
	}
	return urls
}

// ThumbURLs maps a slice of filenames to thumbnail URLs.
func ThumbURLs(filenames []string) []string {
	urls := make([]string, 0, len(filenames))
	for _, f := range filenames {
		urls = append(urls, ThumbURL(f))
	}
	return urls
}

// ExtractImageName reduces an image reference to its bare filename: the
// last non-empty path segment. Bare filenames pass through unchanged, and
// strings that do not parse as URLs fall back to naive slash splitting
// rather than failing. The function is idempotent.
func ExtractImageName(ref string) string {
	if ref == "" {
		return ""
	}
	if !strings.Contains(ref, "/") {
		return ref
	}
	if u, err := url.Parse(ref); err == nil {
		return lastSegment(u.Path)
	}
	if name := lastSegment(ref); name != "" {
		return name
	}
	return ref
}

func lastSegment(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
