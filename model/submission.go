package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Submission represents a submission record returned by the Blossom API.
type Submission struct {
	ID          int64      `json:"id"`
	CreateTime  time.Time  `json:"create_time"`
	ClaimTime   *time.Time `json:"claim_time"`
	ClaimedBy   *string    `json:"claimed_by"`
	CompletedBy *string    `json:"completed_by"`
	Archived    bool       `json:"archived"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	TORURL      string     `json:"tor_url"`
	ContentURL  string     `json:"content_url"`
	Source      string     `json:"source"`
}

var subredditPattern = regexp.MustCompile(`/r/([^/]+)`)

// NormalizeSource rewrites Source to the subreddit the submission came from,
// derived from its Reddit URL. Blossom itself only stores "reddit" here.
func (s *Submission) NormalizeSource() {
	for _, u := range []string{s.URL, s.TORURL} {
		if matches := subredditPattern.FindStringSubmatch(u); len(matches) == 2 {
			s.Source = matches[1]
			return
		}
	}
}

// ClaimantID extracts the volunteer ID from the claimed_by reference URL,
// e.g. "https://example.org/api/volunteer/123/" yields 123.
func (s *Submission) ClaimantID() (int64, bool) {
	if s.ClaimedBy == nil {
		return 0, false
	}

	parts := strings.Split(strings.TrimSuffix(*s.ClaimedBy, "/"), "/")
	if len(parts) == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
