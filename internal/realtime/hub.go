// Package realtime pushes state events to websocket clients.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/polkiloo/mentorcrm/internal/state"
)

const broadcastBuffer = 64

var errHubStopped = errors.New("realtime hub stopped")

// Source publishes state events.
type Source interface {
	Subscribe(state.Listener) func()
}

// Hub fans broadcast messages out to registered clients.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	upgrader   websocket.Upgrader
	connected  atomic.Int64
	logger     *slog.Logger
}

// NewHub creates a hub accepting connections from origins. An empty list
// accepts any origin.
func NewHub(origins []string, logger *slog.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(origins),
	}
	return h
}

func originChecker(origins []string) func(*http.Request) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		if _, ok := allowed["*"]; ok {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}

// Run serves registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			h.drop(client)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.connected.Store(int64(len(h.clients)))
			h.logger.Debug("websocket client connected",
				slog.String("client_id", client.ID.String()),
				slog.String("operator_id", client.OperatorID),
			)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Debug("websocket client disconnected", slog.String("client_id", client.ID.String()))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.logger.Warn("websocket client too slow, dropping", slog.String("client_id", client.ID.String()))
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.connected.Store(int64(len(h.clients)))
}

// Len reports the number of registered clients.
func (h *Hub) Len() int {
	return int(h.connected.Load())
}

// Publish encodes event and queues it for every client. Events are dropped
// when the queue is full.
func (h *Hub) Publish(event state.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", slog.String("error", err.Error()))
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("websocket broadcast queue full", slog.String("type", event.Kind))
	}
}

// Follow forwards every event of src to the clients and returns the
// unsubscribe function.
func (h *Hub) Follow(src Source) func() {
	return src.Subscribe(h.Publish)
}

// Serve upgrades the request and attaches a client for operatorID.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, operatorID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	client := &Client{
		ID:         uuid.New(),
		OperatorID: operatorID,
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return errHubStopped
	case <-r.Context().Done():
		conn.Close()
		return r.Context().Err()
	}

	go client.writePump()
	go client.readPump()
	return nil
}
