package utils

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidRedditURL is returned for links that don't point to Reddit.
var ErrInvalidRedditURL = errors.New("not a valid Reddit URL")

// ParseRedditURL parses and normalizes a Reddit link. It returns the path
// of the post, with a trailing slash the way Blossom stores it.
func ParseRedditURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrInvalidRedditURL
	}

	if !strings.Contains(parsed.Host, "reddit") {
		return "", ErrInvalidRedditURL
	}

	// On Blossom, all URLs end with a slash
	path := parsed.Path
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	return path, nil
}

// NormalizeRedditURL rewrites a Reddit path to the canonical URL form used
// by Blossom.
func NormalizeRedditURL(path string) string {
	return "https://reddit.com" + path
}

// IsTORPath reports whether the path points to the r/TranscribersOfReddit
// mirror of a post.
func IsTORPath(path string) bool {
	return strings.Contains(path, "/r/TranscribersOfReddit")
}

// IsCommentPath reports whether the path points to a comment rather than a
// post. Comment links carry an extra ID segment, which makes the path
// longer.
func IsCommentPath(path string) bool {
	return len(strings.Split(path, "/")) >= 8
}
