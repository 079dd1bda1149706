package pos

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Notification struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

const (
	// FeedCapacity is sized so a full stack of toasts fits above the total
	// line on the register screen.
	FeedCapacity = 13
	FeedTTL      = 3500 * time.Millisecond
)

// Feed is a bounded FIFO of transient operator messages. Entries expire on
// their own after the TTL and are evicted oldest-first when the feed is over
// capacity. Oldest entries sit at the front; render order maps the most
// recent N to stacked positions.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
	counter int64
	lastID  int64
	cap     int
	ttl     time.Duration
}

func NewFeed() *Feed { return &Feed{cap: FeedCapacity, ttl: FeedTTL} }

// NewFeedWith builds a feed with explicit capacity and TTL. A zero ttl
// disables the expiry timers, which keeps tests deterministic.
func NewFeedWith(capacity int, ttl time.Duration) *Feed {
	return &Feed{cap: capacity, ttl: ttl}
}

// Push appends a notification and schedules its expiry. IDs combine a
// millisecond timestamp with a feed-owned increasing counter; the lastID
// floor keeps them distinct even under same-millisecond bursts.
func (f *Feed) Push(message string, severity Severity) Notification {
	f.mu.Lock()
	f.counter++
	id := time.Now().UnixMilli()*1000 + f.counter%1000
	if id <= f.lastID {
		id = f.lastID + 1
	}
	f.lastID = id

	n := Notification{ID: id, Message: message, Severity: severity}
	f.entries = append(f.entries, n)
	if len(f.entries) > f.cap {
		f.entries = f.entries[len(f.entries)-f.cap:]
	}
	f.mu.Unlock()

	if f.ttl > 0 {
		time.AfterFunc(f.ttl, func() { f.Remove(id) })
	}
	return n
}

// Remove drops the entry with the given id. Expiry timers for entries that
// were already evicted land here and no-op.
func (f *Feed) Remove(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}

func (f *Feed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
