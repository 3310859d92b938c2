package blossom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submissionPage builds a JSON results page with count sequential IDs
// starting at firstID.
func submissionPage(firstID int64, count int) []byte {
	results := make([]map[string]any, count)
	for i := range results {
		id := firstID + int64(i)
		results[i] = map[string]any{
			"id":          id,
			"create_time": time.Now().UTC().Format(time.RFC3339),
			"url":         fmt.Sprintf("https://reddit.com/r/CuratedTumblr/comments/p%d/title/", id),
			"archived":    false,
		}
	}
	body, _ := json.Marshal(map[string]any{"results": results})
	return body
}

func TestFetchAllSubmissionsPagination(t *testing.T) {
	var pagesServed []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/submission/", r.URL.Path)
		require.Equal(t, "Api-Key test-key", r.Header.Get("Authorization"))
		require.Equal(t, "500", r.URL.Query().Get("page_size"))
		require.Equal(t, "True", r.URL.Query().Get("completed_by__isnull"))
		require.Equal(t, "True", r.URL.Query().Get("claimed_by__isnull"))
		require.Equal(t, "False", r.URL.Query().Get("archived"))
		require.NotEmpty(t, r.URL.Query().Get("create_time__gte"))

		page := r.URL.Query().Get("page")
		pagesServed = append(pagesServed, page)

		switch page {
		case "1":
			w.Write(submissionPage(1, 500))
		case "2":
			// Short page ends the fetch.
			w.Write(submissionPage(501, 3))
		default:
			t.Errorf("unexpected page requested: %s", page)
		}
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "", "")
	results, err := client.FetchAllSubmissions(context.Background(), SubmissionFilter{
		CompletedByIsNull: true,
		ClaimedByIsNull:   true,
		CreatedAfter:      time.Now().Add(-18 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pagesServed)
	require.Len(t, results, 503)
	// Records arrive in page order.
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, int64(503), results[502].ID)
	// The source is normalized on ingest.
	assert.Equal(t, "CuratedTumblr", results[0].Source)
}

func TestFetchAllSubmissionsStopsAtFirstShortPage(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write(submissionPage(1, 7))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "", "")
	results, err := client.FetchAllSubmissions(context.Background(), SubmissionFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Len(t, results, 7)
}

func TestFetchAllSubmissionsNonOkAbortsWithoutPartialResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			w.Write(submissionPage(1, 500))
			return
		}
		http.Error(w, "server exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "", "")
	results, err := client.FetchAllSubmissions(context.Background(), SubmissionFilter{})

	require.Error(t, err)
	assert.Nil(t, results)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Body, "server exploded")
}

func TestFetchAllSubmissionsOrderingParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "-claim_time", r.URL.Query().Get("ordering"))
		require.Equal(t, "False", r.URL.Query().Get("claimed_by__isnull"))
		w.Write(submissionPage(1, 0))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "", "")
	_, err := client.FetchAllSubmissions(context.Background(), SubmissionFilter{
		CompletedByIsNull: true,
		Ordering:          "-claim_time",
	})
	require.NoError(t, err)
}

func TestGetSubmissionReturnsNilWhenNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "", "")
	submission, err := client.GetSubmissionByURL(context.Background(), "https://reddit.com/r/Art/comments/abc/def/")

	require.NoError(t, err)
	assert.Nil(t, submission)
}

func TestGetTranscription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transcription/", r.URL.Path)
		w.Write([]byte(`{"results": [{"id": 42, "url": "https://reddit.com/r/Art/comments/abc/comment/xyz/", "submission": "https://grafeas.org/api/submission/1337/"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "", "")
	transcription, err := client.GetTranscription(context.Background(), "https://reddit.com/r/Art/comments/abc/comment/xyz/")

	require.NoError(t, err)
	require.NotNil(t, transcription)
	assert.Equal(t, "https://grafeas.org/api/submission/1337/", transcription.Submission)
}
