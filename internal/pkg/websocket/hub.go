// Package websocket streams placement events to connected dashboard clients.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/pkg/events"
)

// ErrHubClosed is returned when publishing to a stopped hub
var ErrHubClosed = errors.New("websocket: hub closed")

// Hub maintains the set of active clients and broadcasts events to them.
// All client bookkeeping happens on the Run goroutine.
type Hub struct {
	clients map[*Client]struct{}
	count   atomic.Int64

	broadcast  chan events.Event
	register   chan *Client
	unregister chan *Client

	done      chan struct{}
	closeOnce sync.Once

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan events.Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until Close is called
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.count.Store(int64(len(h.clients)))
			h.logger.Debug().Str("addr", client.addr).Msg("Client registered")

		case client := <-h.unregister:
			h.remove(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)

		case <-h.done:
			for client := range h.clients {
				h.remove(client)
			}
			return
		}
	}
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.count.Store(int64(len(h.clients)))
	h.logger.Debug().Str("addr", client.addr).Msg("Client unregistered")
}

func (h *Hub) broadcastEvent(event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event.Type).Msg("Failed to marshal event for broadcast")
		return
	}

	for client := range h.clients {
		if !client.wants(event.Type) {
			continue
		}
		select {
		case client.send <- data:
		default:
			// slow consumer; drop it rather than stall every other client
			h.remove(client)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Publish implements events.Publisher
func (h *Hub) Publish(ctx context.Context, event events.Event) error {
	select {
	case h.broadcast <- event:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the hub and disconnects every client
func (h *Hub) Close() error {
	h.closeOnce.Do(func() { close(h.done) })
	return nil
}

func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
