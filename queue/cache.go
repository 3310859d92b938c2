package queue

import (
	"context"
	"sync"
	"time"

	"github.com/TimJentzsch/buttercup/blossom"
	"github.com/TimJentzsch/buttercup/model"
)

const (
	// unclaimedWindow is how far back unclaimed posts are fetched.
	// Posts older than 18 hours are archived by the platform.
	unclaimedWindow = 18 * time.Hour
	// claimedWindow is how far back claimed posts are fetched.
	claimedWindow = 48 * time.Hour
	// maxTrackedClaimants caps how many claimants user info is kept for.
	maxTrackedClaimants = 5
)

// API is the part of the Blossom client the cache depends on.
type API interface {
	FetchAllSubmissions(ctx context.Context, filter blossom.SubmissionFilter) ([]model.Submission, error)
	GetVolunteer(ctx context.Context, id int64) (model.Volunteer, error)
}

// Snapshot is a consistent view of the queue at one refresh. It is never
// mutated after publication; a refresh builds a new one and swaps it in.
type Snapshot struct {
	// Unclaimed holds the open submissions in the queue, indexed by ID.
	Unclaimed map[int64]model.Submission
	// Claimed holds the in-progress submissions, ordered by claim time
	// descending.
	Claimed []model.Submission
	// Users maps volunteer IDs to their info, for the claimants of the
	// top entries of Claimed.
	Users map[int64]model.Volunteer
	// LastUpdate is when this snapshot was fetched.
	LastUpdate time.Time
}

// Cache owns the queue snapshot. Refresh is the only writer; any number of
// readers may call Current concurrently.
type Cache struct {
	api API

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCache creates an empty cache backed by the given API.
func NewCache(api API) *Cache {
	return &Cache{api: api}
}

// Current returns the last successfully committed snapshot, or nil if no
// refresh has succeeded yet.
func (c *Cache) Current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Refresh fetches the queue state from Blossom and atomically replaces the
// snapshot. If any fetch fails, the previous snapshot stays committed and
// the error is returned.
func (c *Cache) Refresh(ctx context.Context) error {
	now := time.Now().UTC()

	unclaimed, err := c.api.FetchAllSubmissions(ctx, blossom.SubmissionFilter{
		CompletedByIsNull: true,
		ClaimedByIsNull:   true,
		Archived:          false,
		CreatedAfter:      now.Add(-unclaimedWindow),
	})
	if err != nil {
		return err
	}

	claimed, err := c.api.FetchAllSubmissions(ctx, blossom.SubmissionFilter{
		CompletedByIsNull: true,
		ClaimedByIsNull:   false,
		Archived:          false,
		CreatedAfter:      now.Add(-claimedWindow),
		Ordering:          "-claim_time",
	})
	if err != nil {
		return err
	}

	users, err := c.rebuildUsers(ctx, claimed)
	if err != nil {
		return err
	}

	unclaimedByID := make(map[int64]model.Submission, len(unclaimed))
	for _, submission := range unclaimed {
		unclaimedByID[submission.ID] = submission
	}

	next := &Snapshot{
		Unclaimed:  unclaimedByID,
		Claimed:    claimed,
		Users:      users,
		LastUpdate: now,
	}

	c.mu.Lock()
	c.snap = next
	c.mu.Unlock()
	return nil
}

// rebuildUsers builds the user cache for the claimants of the top claimed
// submissions. Entries still known from the previous snapshot are carried
// forward, then unconditionally refreshed from the API.
func (c *Cache) rebuildUsers(ctx context.Context, claimed []model.Submission) (map[int64]model.Volunteer, error) {
	prev := c.Current()

	users := make(map[int64]model.Volunteer, maxTrackedClaimants)
	for i, submission := range claimed {
		if i >= maxTrackedClaimants {
			break
		}

		id, ok := submission.ClaimantID()
		if !ok {
			continue
		}
		if prev != nil {
			if cached, ok := prev.Users[id]; ok {
				users[id] = cached
			}
		}

		volunteer, err := c.api.GetVolunteer(ctx, id)
		if err != nil {
			return nil, err
		}
		users[id] = volunteer
	}
	return users, nil
}
