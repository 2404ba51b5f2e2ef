package server

import (
	"encoding/json"
	"sync"
)

// Event is the payload published to stream subscribers whenever state
// changes in a way the UI should reflect.
type Event struct {
	Type     string `json:"type"`
	PlaceID  int    `json:"placeId,omitempty"`
	ReviewID int64  `json:"reviewId,omitempty"`
	Favorite bool   `json:"favorite,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Broker is an in-process pub/sub for UI events. The profile is
// single-user, so there is one stream and every subscriber sees every
// event.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish sends an event to all subscribers.
func (b *Broker) Publish(event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
