package env

import (
	"fmt"
	"os"

	"gorm.io/gorm"
)

// Tier identifies the deployment tier a row of data belongs to.
// All tiers share one physical schema; rows are partitioned logically
// by the environment column.
type Tier string

const (
	TierDev   Tier = "dev"
	TierStage Tier = "stage"
	TierProd  Tier = "prod"
)

// Column is the name of the environment column on every tagged table.
const Column = "environment"

// Resolve determines the active tier from APP_ENV. Unset or
// unrecognized values fall back to dev so a bare checkout never
// touches stage or prod data.
func Resolve() Tier {
	tier, err := Parse(os.Getenv("APP_ENV"))
	if err != nil {
		return TierDev
	}
	return tier
}

// Parse converts a string to a Tier, rejecting anything outside the
// fixed enumeration. Operational commands use this instead of Resolve
// so a typo fails loudly rather than silently targeting dev.
func Parse(s string) (Tier, error) {
	switch Tier(s) {
	case TierDev, TierStage, TierProd:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown tier %q (want dev, stage, or prod)", s)
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	return string(t)
}

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	_, err := Parse(string(t))
	return err == nil
}

// Scope appends an equality predicate on the environment column to an
// in-flight query. Idempotent: applying it twice adds a redundant but
// harmless duplicate predicate.
func Scope(db *gorm.DB, t Tier) *gorm.DB {
	return db.Where(Column+" = ?", string(t))
}
