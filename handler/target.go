package handler

import (
	"github.com/bwmarrin/discordgo"

	"github.com/TimJentzsch/buttercup/queue"
)

// MessageTarget is a live queue display: a previously sent Discord message
// that gets edited in place whenever a new snapshot arrives.
type MessageTarget struct {
	session   *discordgo.Session
	channelID string
	messageID string
}

var _ queue.Target = (*MessageTarget)(nil)

// NewMessageTarget creates a target for the given message.
func NewMessageTarget(s *discordgo.Session, channelID, messageID string) *MessageTarget {
	return &MessageTarget{
		session:   s,
		channelID: channelID,
		messageID: messageID,
	}
}

// ID identifies the target by its destination message, so registering the
// same message again replaces the old entry instead of burning a slot.
func (t *MessageTarget) ID() string {
	return t.channelID + "/" + t.messageID
}

// Push renders the snapshot into the message. Fails if the message has been
// deleted in the meantime; the registry logs that and moves on.
func (t *MessageTarget) Push(snap *queue.Snapshot) error {
	_, err := t.session.ChannelMessageEditEmbed(t.channelID, t.messageID, BuildQueueEmbed(snap))
	return err
}
