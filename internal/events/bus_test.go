package events_test

import (
	"testing"

	"github.com/fitstack/fittrack/internal/env"
	"github.com/fitstack/fittrack/internal/events"
)

func TestPublishDeliversToMatchingSubscriber(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe("user-1", env.TierDev, 4)
	defer cancel()

	bus.Publish(events.Event{
		Kind:     events.KindPlans,
		Action:   events.ActionInsert,
		Tier:     env.TierDev,
		OwnerID:  "user-1",
		EntityID: "plan-1",
	})

	ev := <-ch
	if ev.Kind != events.KindPlans || ev.EntityID != "plan-1" {
		t.Errorf("Unexpected event: %+v", ev)
	}
	if ev.Seq == 0 {
		t.Error("Expected a non-zero sequence number")
	}
	if ev.At.IsZero() {
		t.Error("Expected a stamped timestamp")
	}
}

func TestSequenceNumbersStrictlyIncrease(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe("user-1", env.TierDev, 8)
	defer cancel()

	for i := 0; i < 5; i++ {
		bus.Publish(events.Event{
			Kind:     events.KindMetrics,
			Action:   events.ActionInsert,
			Tier:     env.TierDev,
			OwnerID:  "user-1",
			EntityID: "m",
		})
	}

	var last uint64
	for i := 0; i < 5; i++ {
		ev := <-ch
		if ev.Seq <= last {
			t.Fatalf("Sequence not strictly increasing: %d after %d", ev.Seq, last)
		}
		last = ev.Seq
	}
}

func TestTierAndOwnerFiltering(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe("user-1", env.TierDev, 4)
	defer cancel()

	// Wrong tier
	bus.Publish(events.Event{Kind: events.KindPlans, Tier: env.TierStage, OwnerID: "user-1", EntityID: "a"})
	// Wrong owner
	bus.Publish(events.Event{Kind: events.KindPlans, Tier: env.TierDev, OwnerID: "user-2", EntityID: "b"})
	// Match
	bus.Publish(events.Event{Kind: events.KindPlans, Tier: env.TierDev, OwnerID: "user-1", EntityID: "c"})

	ev := <-ch
	if ev.EntityID != "c" {
		t.Errorf("Expected only the matching event, got %+v", ev)
	}
	select {
	case extra := <-ch:
		t.Errorf("Unexpected extra event: %+v", extra)
	default:
	}
}

func TestKindFiltering(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe("user-1", env.TierDev, 4, events.KindSessions)
	defer cancel()

	bus.Publish(events.Event{Kind: events.KindPlans, Tier: env.TierDev, OwnerID: "user-1", EntityID: "p"})
	bus.Publish(events.Event{Kind: events.KindSessions, Tier: env.TierDev, OwnerID: "user-1", EntityID: "s"})

	ev := <-ch
	if ev.Kind != events.KindSessions {
		t.Errorf("Expected only sessions events, got %+v", ev)
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := events.NewBus()
	_, cancel := bus.Subscribe("user-1", env.TierDev, 1)
	defer cancel()

	for i := 0; i < 3; i++ {
		bus.Publish(events.Event{Kind: events.KindLogs, Tier: env.TierDev, OwnerID: "user-1", EntityID: "l"})
	}

	if bus.Dropped() != 2 {
		t.Errorf("Expected 2 dropped events, got %d", bus.Dropped())
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	bus := events.NewBus()
	_, cancel := bus.Subscribe("user-1", env.TierDev, 1)
	cancel()
	cancel() // must not panic

	// Publishing after cancel must not panic either
	bus.Publish(events.Event{Kind: events.KindLogs, Tier: env.TierDev, OwnerID: "user-1", EntityID: "l"})
}
