package handler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimJentzsch/buttercup/model"
	"github.com/TimJentzsch/buttercup/queue"
)

func snapshotWithSources(counts map[string]int) *queue.Snapshot {
	snap := &queue.Snapshot{
		Unclaimed:  make(map[int64]model.Submission),
		LastUpdate: time.Now(),
	}
	id := int64(1)
	for source, count := range counts {
		for i := 0; i < count; i++ {
			snap.Unclaimed[id] = model.Submission{ID: id, Source: source}
			id++
		}
	}
	return snap
}

func snapshotWithClaimed(count int) *queue.Snapshot {
	snap := &queue.Snapshot{
		Users:      make(map[int64]model.Volunteer),
		LastUpdate: time.Now(),
	}
	for i := 0; i < count; i++ {
		claimantID := int64(100 + i)
		claimedBy := fmt.Sprintf("https://grafeas.org/api/volunteer/%d/", claimantID)
		claimTime := time.Now().Add(-time.Duration(i) * time.Minute)
		snap.Claimed = append(snap.Claimed, model.Submission{
			ID:        int64(i + 1),
			Source:    "CuratedTumblr",
			ClaimedBy: &claimedBy,
			ClaimTime: &claimTime,
		})
		snap.Users[claimantID] = model.Volunteer{ID: claimantID, Username: fmt.Sprintf("volunteer%d", claimantID)}
	}
	return snap
}

func TestFormatUnclaimedSectionEmptyQueue(t *testing.T) {
	snap := snapshotWithSources(nil)
	text := FormatUnclaimedSection(snap)
	assert.Contains(t, text, "queue is cleared")
}

func TestFormatClaimedSectionEmpty(t *testing.T) {
	snap := &queue.Snapshot{LastUpdate: time.Now()}
	text := FormatClaimedSection(snap)
	assert.Equal(t, "Nobody is working on a post right now.", text)
}

func TestFormatUnclaimedSectionFewSourcesHasNoRemainder(t *testing.T) {
	// 7 posts across 3 sources: everything fits in the list.
	snap := snapshotWithSources(map[string]int{"Art": 4, "CuratedTumblr": 2, "MemeEconomy": 1})
	text := FormatUnclaimedSection(snap)

	assert.Contains(t, text, "**7** unclaimed")
	assert.Contains(t, text, "- 4 from **Art**")
	assert.Contains(t, text, "- 2 from **CuratedTumblr**")
	assert.Contains(t, text, "- 1 from **MemeEconomy**")
	assert.NotContains(t, text, "other source")
}

func TestFormatUnclaimedSectionManySourcesGetRemainder(t *testing.T) {
	counts := map[string]int{}
	for i := 0; i < 8; i++ {
		counts[fmt.Sprintf("sub%d", i)] = i + 1
	}
	snap := snapshotWithSources(counts)
	text := FormatUnclaimedSection(snap)

	// The 3 smallest sources (1+2+3 posts) collapse into the remainder.
	assert.Contains(t, text, "...and 6 from 3 other source(s).")
	assert.Contains(t, text, "- 8 from **sub7**")
	assert.NotContains(t, text, "**sub0**")
}

func TestFormatClaimedSectionRemainder(t *testing.T) {
	snap := snapshotWithClaimed(6)
	text := FormatClaimedSection(snap)

	assert.Contains(t, text, "**6** posts")
	assert.Contains(t, text, "u/volunteer100")
	assert.Contains(t, text, "u/volunteer104")
	assert.NotContains(t, text, "u/volunteer105")
	assert.Contains(t, text, "...and 1 other(s).")
}

func TestBuildQueueEmbed(t *testing.T) {
	snap := snapshotWithSources(map[string]int{"Art": 2})
	embed := BuildQueueEmbed(snap)

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Unclaimed", embed.Fields[0].Name)
	assert.Equal(t, "In Progress", embed.Fields[1].Name)
	assert.Contains(t, embed.Description, "Last updated")
	assert.Contains(t, embed.Description, fmt.Sprintf("<t:%d:R>", snap.LastUpdate.Unix()))
}
