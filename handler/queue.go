package handler

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/TimJentzsch/buttercup/utils"
)

// QueueCommandHandler handles the /queue command. It answers with the
// current queue snapshot and registers the resulting message as a live
// target, so the scheduler keeps editing it with fresh data.
func QueueCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Defer the response first, fetching the queue can take a while.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("Error sending deferred response: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		snap := queueCache.Current()
		if snap == nil {
			// First command before the scheduler got a snapshot in.
			if err := queueCache.Refresh(ctx); err != nil {
				log.Printf("Error fetching initial queue snapshot: %v", err)
				s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
					Content: utils.StringPtr("Sorry, I couldn't reach the queue right now. Please try again later."),
				})
				return
			}
			snap = queueCache.Current()
		}

		embed := BuildQueueEmbed(snap)
		msg, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		})
		if err != nil {
			log.Printf("Error editing queue response: %v", err)
			return
		}

		targets.Register(NewMessageTarget(s, msg.ChannelID, msg.ID))
	}()
}
