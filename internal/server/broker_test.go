package server

import (
	"encoding/json"
	"testing"
)

func TestBrokerFanOut(t *testing.T) {
	b := NewBroker()
	a := b.Subscribe()
	c := b.Subscribe()
	defer b.Unsubscribe(a)
	defer b.Unsubscribe(c)

	b.Publish(Event{Type: "favorite_toggled", PlaceID: 3, Favorite: true})

	for _, ch := range []chan []byte{a, c} {
		select {
		case data := <-ch:
			var ev Event
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("decoding event: %v", err)
			}
			if ev.Type != "favorite_toggled" || ev.PlaceID != 3 || !ev.Favorite {
				t.Errorf("event = %+v", ev)
			}
		default:
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestBrokerDropsOnUnsubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	b.Publish(Event{Type: "notification"})

	select {
	case <-ch:
		t.Fatal("unsubscribed channel received an event")
	default:
	}
}
