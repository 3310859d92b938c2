package blossom

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/TimJentzsch/buttercup/model"
)

// pageSize is the number of records requested per page.
const pageSize = 500

// SubmissionFilter describes the query parameters for a submission fetch.
type SubmissionFilter struct {
	CompletedByIsNull bool
	ClaimedByIsNull   bool
	Archived          bool
	// CreatedAfter restricts results to submissions created at or after
	// this instant. Sent as create_time__gte in ISO-8601 UTC.
	CreatedAfter time.Time
	// Ordering is an optional ordering expression, e.g. "-claim_time".
	Ordering string
}

func (f SubmissionFilter) params(page int) url.Values {
	params := url.Values{}
	params.Set("page_size", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(page))
	params.Set("completed_by__isnull", capitalBool(f.CompletedByIsNull))
	params.Set("claimed_by__isnull", capitalBool(f.ClaimedByIsNull))
	params.Set("archived", capitalBool(f.Archived))
	params.Set("create_time__gte", f.CreatedAfter.UTC().Format(time.RFC3339))
	if f.Ordering != "" {
		params.Set("ordering", f.Ordering)
	}
	return params
}

// capitalBool renders a bool the way the Django-style API expects it.
func capitalBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// FetchAllSubmissions pages through the submission endpoint with the given
// filter and returns every matching record in page order. Each record's
// source is normalized on ingest. Paging stops at the first page that comes
// back shorter than the page size. A non-ok response on any page aborts the
// whole fetch with a *FetchError; no partial result is returned.
func (c *Client) FetchAllSubmissions(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error) {
	var results []model.Submission

	for page := 1; ; page++ {
		var envelope resultsPage[model.Submission]
		if err := c.get(ctx, "submission/", filter.params(page), &envelope); err != nil {
			return nil, err
		}

		for i := range envelope.Results {
			envelope.Results[i].NormalizeSource()
		}
		results = append(results, envelope.Results...)

		if len(envelope.Results) < pageSize {
			return results, nil
		}
	}
}

// GetSubmission fetches a single submission matching the given query
// parameters. Returns nil if nothing matched.
func (c *Client) GetSubmission(ctx context.Context, params url.Values) (*model.Submission, error) {
	var envelope resultsPage[model.Submission]
	if err := c.get(ctx, "submission/", params, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Results) == 0 {
		return nil, nil
	}

	submission := envelope.Results[0]
	submission.NormalizeSource()
	return &submission, nil
}

// GetSubmissionByID fetches a submission by its Blossom ID.
func (c *Client) GetSubmissionByID(ctx context.Context, id string) (*model.Submission, error) {
	return c.GetSubmission(ctx, url.Values{"id": {id}})
}

// GetSubmissionByURL fetches a submission by the URL of the post on the
// partner subreddit.
func (c *Client) GetSubmissionByURL(ctx context.Context, postURL string) (*model.Submission, error) {
	return c.GetSubmission(ctx, url.Values{"url": {postURL}})
}

// GetSubmissionByTORURL fetches a submission by the URL of the mirror post
// on r/TranscribersOfReddit.
func (c *Client) GetSubmissionByTORURL(ctx context.Context, torURL string) (*model.Submission, error) {
	return c.GetSubmission(ctx, url.Values{"tor_url": {torURL}})
}

// GetTranscription fetches a transcription by the URL of the transcription
// comment. Returns nil if nothing matched.
func (c *Client) GetTranscription(ctx context.Context, trURL string) (*model.Transcription, error) {
	var envelope resultsPage[model.Transcription]
	if err := c.get(ctx, "transcription/", url.Values{"url": {trURL}}, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Results) == 0 {
		return nil, nil
	}
	return &envelope.Results[0], nil
}
