package handler

import (
	"github.com/bwmarrin/discordgo"
)

var commandHandlers = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(name string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	commandHandlers[name] = handler
}

// OnInteractionCreate is the main interaction router.
// It should be registered as the primary interaction handler on the session.
func OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if handler, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
		handler(s, i)
	}
}
