package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fitstack/fittrack/internal/env"
)

// Kind names the entity collection a change event belongs to.
type Kind string

const (
	KindProfiles      Kind = "profiles"
	KindExercises     Kind = "exercises"
	KindPlans         Kind = "plans"
	KindPlanExercises Kind = "plan_exercises"
	KindSessions      Kind = "sessions"
	KindLogs          Kind = "logs"
	KindMetrics       Kind = "metrics"
)

// Action is the mutation type that produced an event.
type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event describes one committed mutation. Seq is strictly increasing
// per process, so subscribers can detect dropped or duplicate
// deliveries without trusting channel ordering.
type Event struct {
	Seq      uint64    `json:"seq"`
	Kind     Kind      `json:"kind"`
	Action   Action    `json:"action"`
	Tier     env.Tier  `json:"tier"`
	OwnerID  string    `json:"ownerId,omitempty"`
	EntityID string    `json:"entityId"`
	At       time.Time `json:"at"`
}

type subscriber struct {
	kinds map[Kind]struct{} // empty means all kinds
	owner string            // empty means all owners
	tier  env.Tier
	ch    chan Event
}

// Bus is an in-process change-event fan-out. Publish never blocks: a
// subscriber that cannot keep up loses events, which its Seq gap makes
// visible.
type Bus struct {
	mu      sync.RWMutex
	seq     atomic.Uint64
	nextID  int
	subs    map[int]*subscriber
	dropped atomic.Uint64
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe registers interest in change events for the given owner
// and tier. kinds narrows the subscription; nil or empty subscribes to
// every entity kind. The returned cancel func closes the channel and
// must be called exactly once.
func (b *Bus) Subscribe(owner string, tier env.Tier, buffer int, kinds ...Kind) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}

	sub := &subscriber{
		kinds: make(map[Kind]struct{}, len(kinds)),
		owner: owner,
		tier:  tier,
		ch:    make(chan Event, buffer),
	}
	for _, k := range kinds {
		sub.kinds[k] = struct{}{}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// Publish stamps the event with the next sequence number and delivers
// it to every matching subscriber.
func (b *Bus) Publish(ev Event) {
	ev.Seq = b.seq.Add(1)
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.tier != ev.Tier {
			continue
		}
		if sub.owner != "" && ev.OwnerID != "" && sub.owner != ev.OwnerID {
			continue
		}
		if len(sub.kinds) > 0 {
			if _, ok := sub.kinds[ev.Kind]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- ev:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped returns the number of events discarded because a subscriber
// channel was full.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

// Seq returns the last sequence number issued.
func (b *Bus) Seq() uint64 {
	return b.seq.Load()
}
