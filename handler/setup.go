package handler

import (
	"github.com/TimJentzsch/buttercup/blossom"
	"github.com/TimJentzsch/buttercup/queue"
)

var (
	api        *blossom.Client
	queueCache *queue.Cache
	targets    *queue.Registry
)

// Setup wires the handlers to their collaborators and registers the slash
// command handlers. Must be called before the session is opened.
func Setup(client *blossom.Client, cache *queue.Cache, registry *queue.Registry) {
	api = client
	queueCache = cache
	targets = registry

	AddCommandHandler("queue", QueueCommandHandler)
	AddCommandHandler("lookup", LookupCommandHandler)
}
