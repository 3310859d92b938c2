package handler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/TimJentzsch/buttercup/model"
	"github.com/TimJentzsch/buttercup/utils"
)

// LookupCommandHandler handles the /lookup command: find a Blossom
// submission given any of its Reddit URLs.
func LookupCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("Error sending deferred response: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		options := i.ApplicationCommandData().Options
		if len(options) == 0 {
			return
		}
		redditURL := options[0].StringValue()

		path, err := utils.ParseRedditURL(redditURL)
		if err != nil {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf(
					"I don't recognize <%s> as a valid Reddit URL. Please provide a link to either a post on "+
						"r/TranscribersOfReddit, on a partner sub or to a transcription.", redditURL)),
			})
			return
		}

		normalizedURL := utils.NormalizeRedditURL(path)
		submission, err := findSubmission(ctx, path, normalizedURL)
		if err != nil {
			log.Printf("Error looking up submission for %s: %v", normalizedURL, err)
		}
		if err != nil || submission == nil {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf("Sorry, I couldn't find a post with the URL <%s>.", normalizedURL)),
			})
			return
		}

		embed := BuildSubmissionEmbed(submission)
		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: utils.StringPtr("I found your post!"),
			Embeds:  &[]*discordgo.MessageEmbed{embed},
		})
	}()
}

// findSubmission resolves a normalized Reddit URL to a submission. The URL
// can point to the ToR mirror, the post on the partner sub, or a
// transcription comment.
func findSubmission(ctx context.Context, path, normalizedURL string) (*model.Submission, error) {
	switch {
	case utils.IsTORPath(path):
		return api.GetSubmissionByTORURL(ctx, normalizedURL)
	case utils.IsCommentPath(path):
		// A comment on a partner sub, i.e. a transcription. The submission
		// ID has to be extracted from the transcription's reference URL.
		transcription, err := api.GetTranscription(ctx, normalizedURL)
		if err != nil || transcription == nil {
			return nil, err
		}

		parts := strings.Split(strings.TrimSuffix(transcription.Submission, "/"), "/")
		if len(parts) == 0 {
			return nil, nil
		}
		return api.GetSubmissionByID(ctx, parts[len(parts)-1])
	default:
		return api.GetSubmissionByURL(ctx, normalizedURL)
	}
}

// BuildSubmissionEmbed renders a single submission for the lookup result.
func BuildSubmissionEmbed(submission *model.Submission) *discordgo.MessageEmbed {
	status := "Unclaimed"
	switch {
	case submission.CompletedBy != nil:
		status = "Completed"
	case submission.ClaimedBy != nil:
		status = "In progress"
	case submission.Archived:
		status = "Archived"
	}

	links := []string{}
	if submission.URL != "" {
		links = append(links, fmt.Sprintf("[Post](%s)", submission.URL))
	}
	if submission.TORURL != "" {
		links = append(links, fmt.Sprintf("[ToR mirror](%s)", submission.TORURL))
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Status", Value: status, Inline: true},
		{Name: "Posted", Value: utils.FormatDiscordTimestamp(submission.CreateTime, "f"), Inline: true},
	}
	// Discord rejects embed fields with an empty value.
	if len(links) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Links", Value: strings.Join(links, " | ")})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Post on r/%s", submission.Source),
		Color:  0x00BCD4,
		Fields: fields,
	}
}
