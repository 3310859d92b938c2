package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/TimJentzsch/buttercup/handler"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)

	// Only slash commands are handled, no message events needed.
	s.Identify.Intents = discordgo.IntentsGuilds
}
