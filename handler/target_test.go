package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimJentzsch/buttercup/queue"
)

func TestMessageTargetIDDerivedFromDestination(t *testing.T) {
	first := NewMessageTarget(nil, "channel-1", "message-1")
	second := NewMessageTarget(nil, "channel-1", "message-1")
	other := NewMessageTarget(nil, "channel-1", "message-2")

	assert.Equal(t, first.ID(), second.ID())
	assert.NotEqual(t, first.ID(), other.ID())
}

func TestRegisteringSameMessageTwiceKeepsOneTarget(t *testing.T) {
	registry := queue.NewRegistry()

	registry.Register(NewMessageTarget(nil, "channel-1", "message-1"))
	registry.Register(NewMessageTarget(nil, "channel-1", "message-1"))

	require.Equal(t, 1, registry.Len())

	registry.Register(NewMessageTarget(nil, "channel-1", "message-2"))
	assert.Equal(t, 2, registry.Len())
}
