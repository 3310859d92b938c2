package utils

import (
	"fmt"
	"time"
)

// StringPtr returns a pointer to the given string.
// This is a helper function for discordgo fields that require a *string.
func StringPtr(s string) *string {
	return &s
}

// FormatDiscordTimestamp renders a time as a Discord timestamp tag.
// Style "R" gives a relative time ("3 minutes ago"), "f" a full date.
func FormatDiscordTimestamp(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}
