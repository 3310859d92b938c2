package handler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/TimJentzsch/buttercup/queue"
	"github.com/TimJentzsch/buttercup/utils"
)

// maxListedEntries is how many sources / claimed posts are listed before
// the rest is collapsed into a remainder notice.
const maxListedEntries = 5

// BuildQueueEmbed renders a snapshot into the queue status embed.
func BuildQueueEmbed(snap *queue.Snapshot) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Queue Status",
		Color: 0x00BCD4,
		Description: fmt.Sprintf(
			"Last updated %s.",
			utils.FormatDiscordTimestamp(snap.LastUpdate, "R"),
		),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Unclaimed", Value: FormatUnclaimedSection(snap)},
			{Name: "In Progress", Value: FormatClaimedSection(snap)},
		},
	}
}

// FormatUnclaimedSection renders the unclaimed count and the breakdown of
// the top sources.
func FormatUnclaimedSection(snap *queue.Snapshot) string {
	if len(snap.Unclaimed) == 0 {
		return "The queue is cleared, there is nothing to transcribe. Great job! 💚"
	}

	counts := make(map[string]int)
	for _, submission := range snap.Unclaimed {
		counts[submission.Source]++
	}

	sources := make([]string, 0, len(counts))
	for source := range counts {
		sources = append(sources, source)
	}
	// Highest count first, name as tie-breaker to keep the output stable.
	sort.Slice(sources, func(i, j int) bool {
		if counts[sources[i]] != counts[sources[j]] {
			return counts[sources[i]] > counts[sources[j]]
		}
		return sources[i] < sources[j]
	})

	lines := []string{fmt.Sprintf("There are **%d** unclaimed posts in the queue:", len(snap.Unclaimed))}
	for i, source := range sources {
		if i >= maxListedEntries {
			break
		}
		lines = append(lines, fmt.Sprintf("- %d from **%s**", counts[source], source))
	}

	if len(sources) > maxListedEntries {
		postCount := 0
		for _, source := range sources[maxListedEntries:] {
			postCount += counts[source]
		}
		lines = append(lines, fmt.Sprintf("...and %d from %d other source(s).", postCount, len(sources)-maxListedEntries))
	}

	return strings.Join(lines, "\n")
}

// FormatClaimedSection renders the in-progress count and the most recently
// claimed posts with their claimants.
func FormatClaimedSection(snap *queue.Snapshot) string {
	if len(snap.Claimed) == 0 {
		return "Nobody is working on a post right now."
	}

	lines := []string{fmt.Sprintf("**%d** posts are being worked on:", len(snap.Claimed))}
	for i, submission := range snap.Claimed {
		if i >= maxListedEntries {
			break
		}

		username := "an unknown volunteer"
		if id, ok := submission.ClaimantID(); ok {
			if volunteer, found := snap.Users[id]; found {
				username = fmt.Sprintf("u/%s", volunteer.Username)
			}
		}

		claimed := ""
		if submission.ClaimTime != nil {
			claimed = ", claimed " + utils.FormatDiscordTimestamp(*submission.ClaimTime, "R")
		}

		lines = append(lines, fmt.Sprintf("- **%s** by %s%s", submission.Source, username, claimed))
	}

	if rest := len(snap.Claimed) - maxListedEntries; rest > 0 {
		lines = append(lines, fmt.Sprintf("...and %d other(s).", rest))
	}

	return strings.Join(lines, "\n")
}
