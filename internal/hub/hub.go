package hub

import (
	"sync"

	"github.com/goccy/go-json"
)

const (
	TopicGame  = "game"
	TopicGenre = "genre"
	// TopicAll receives the events of every topic.
	TopicAll = "*"
)

// Event represents a change to a catalog resource sent to subscribers.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single subscriber.
// It's a channel that the SSE handler listens to.
type Client chan []byte

// Hub fans out change events to subscribed clients, grouped by topic.
type Hub struct {
	topics map[string]map[Client]bool
	mu     sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a client to a topic.
func (h *Hub) Subscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[Client]bool)
	}
	h.topics[topic][client] = true
}

// Unsubscribe removes a client from a topic and closes its channel.
func (h *Hub) Unsubscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.topics[topic]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.topics, topic)
			}
		}
	}
}

// Subscribers returns the number of clients listening on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Publish sends "<topic>.<action>" with payload to the subscribers of topic
// and of TopicAll. A full client channel drops the event instead of blocking
// the writer.
func (h *Hub) Publish(topic, action string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.topics[topic]) == 0 && len(h.topics[TopicAll]) == 0 {
		return
	}

	messageBytes, err := json.Marshal(Event{Type: topic + "." + action, Payload: payload})
	if err != nil {
		return
	}

	for _, name := range []string{topic, TopicAll} {
		for client := range h.topics[name] {
			select {
			case client <- messageBytes:
			default:
			}
		}
	}
}

// Close disconnects every subscriber. Streams blocked on a client channel
// see it closed and return.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, clients := range h.topics {
		for client := range clients {
			close(client)
		}
		delete(h.topics, topic)
	}
}
