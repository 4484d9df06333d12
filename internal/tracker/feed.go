package tracker

import (
	"sync"

	"github.com/Bloodcipher/Amara/internal/realtime"
)

// FeedCapacity bounds the activity feed. Older events fall off the end.
const FeedCapacity = 50

// Feed is a bounded, newest-first list of change events.
type Feed struct {
	mu       sync.Mutex
	capacity int
	events   []realtime.ChangeEvent
}

func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = FeedCapacity
	}
	return &Feed{
		capacity: capacity,
		events:   make([]realtime.ChangeEvent, 0, capacity),
	}
}

// Prepend records ev as the newest entry, evicting the oldest when full.
func (f *Feed) Prepend(ev realtime.ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.events) == f.capacity {
		f.events = f.events[:f.capacity-1]
	}
	f.events = append([]realtime.ChangeEvent{ev}, f.events...)
}

// Snapshot returns a copy of the feed, newest first.
func (f *Feed) Snapshot() []realtime.ChangeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]realtime.ChangeEvent, len(f.events))
	copy(out, f.events)
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}
