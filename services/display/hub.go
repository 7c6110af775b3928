// File: services/display/hub.go
package display

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"campusroom/utils"
)

// Hub relays board updates from the Redis pub/sub channel to connected SSE
// display clients. Every app instance runs one hub; publishing through Redis
// keeps multi-instance deployments consistent.
type Hub struct {
	cache  *redis.Client
	logger *zap.Logger

	mu      sync.Mutex
	clients map[chan []byte]struct{}
}

// NewHub constructs a display hub over the given Redis client.
func NewHub(cache *redis.Client, logger *zap.Logger) *Hub {
	return &Hub{
		cache:   cache,
		logger:  logger,
		clients: make(map[chan []byte]struct{}),
	}
}

// Subscribe registers a display client. The returned cancel function must be
// called when the client disconnects.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 8)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.clients[ch]; ok {
			delete(h.clients, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// broadcast fans a payload out to all connected clients. Slow clients are
// skipped rather than blocking the hub.
func (h *Hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- payload:
		default:
		}
	}
}

// Run consumes the Redis board channel and pushes updates to clients until
// the context is canceled. The subscription is reopened on failure.
func (h *Hub) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		sub := h.cache.Subscribe(ctx, utils.BoardChannel)
		ch := sub.Channel()

		h.logger.Info("display hub: subscribed to board updates")
	recv:
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case msg, ok := <-ch:
				if !ok {
					break recv
				}
				h.broadcast([]byte(msg.Payload))
			}
		}

		_ = sub.Close()
		h.logger.Warn("display hub: subscription lost, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}
