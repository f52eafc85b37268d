package services

import (
	"errors"

	"github.com/fitstack/fittrack/internal/env"
	"github.com/fitstack/fittrack/internal/events"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no row in the
	// store's tier.
	ErrNotFound = errors.New("not found")

	// ErrSessionEnded is returned when ending a session that already
	// has an end time.
	ErrSessionEnded = errors.New("session already ended")

	// ErrTierMismatch is returned when a write references a row that
	// does not exist in the store's tier.
	ErrTierMismatch = errors.New("referenced row not found in this tier")

	// ErrSetMismatch is returned when the per-set reps and weights
	// sequences of an exercise log disagree in length.
	ErrSetMismatch = errors.New("reps and weights must have one entry per completed set")
)

// Store is a per-tier handle over the entity tables. Every read it
// issues is filtered by the store's tier and every write is stamped
// with it, so callers cannot touch another tier's rows by omission.
type Store struct {
	db   *gorm.DB
	tier env.Tier
	bus  *events.Bus
}

// NewStore binds a database connection to a tier. bus may be nil when
// no subscriber will ever listen (operational commands).
func NewStore(db *gorm.DB, tier env.Tier, bus *events.Bus) *Store {
	return &Store{db: db, tier: tier, bus: bus}
}

// Tier returns the tier this store reads and writes.
func (s *Store) Tier() env.Tier {
	return s.tier
}

// DB exposes the underlying connection for migrations and health
// checks. Entity access must go through the Store methods.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// scoped starts a query filtered to the store's tier.
func (s *Store) scoped() *gorm.DB {
	return env.Scope(s.db, s.tier)
}

// scopedTx is scoped for use inside a transaction.
func (s *Store) scopedTx(tx *gorm.DB) *gorm.DB {
	return env.Scope(tx, s.tier)
}

// publish emits a change event for a committed mutation.
func (s *Store) publish(kind events.Kind, action events.Action, ownerID, entityID string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Kind:     kind,
		Action:   action,
		Tier:     s.tier,
		OwnerID:  ownerID,
		EntityID: entityID,
	})
}

// notFound maps gorm's record-not-found to the service sentinel.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
