package def

import "github.com/bwmarrin/discordgo"

var QueueCommand = &discordgo.ApplicationCommand{
	Name:        "queue",
	Description: "Display the current status of the transcription queue.",
}
