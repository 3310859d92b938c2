package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/TimJentzsch/buttercup/command/def"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.QueueCommand,
	def.LookupCommand,
}
