package def

import "github.com/bwmarrin/discordgo"

var LookupCommand = &discordgo.ApplicationCommand{
	Name:        "lookup",
	Description: "Find a post given a Reddit URL.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reddit_url",
			Description: "A Reddit URL, either to the post on ToR, the partner sub or the transcription.",
			Required:    true,
		},
	},
}
