package env_test

import (
	"testing"

	"github.com/fitstack/fittrack/internal/env"
)

func TestResolveDefaultsToDev(t *testing.T) {
	t.Setenv("APP_ENV", "")
	if got := env.Resolve(); got != env.TierDev {
		t.Errorf("Expected dev for unset APP_ENV, got %q", got)
	}

	t.Setenv("APP_ENV", "production") // not a known tier name
	if got := env.Resolve(); got != env.TierDev {
		t.Errorf("Expected dev for unknown APP_ENV, got %q", got)
	}
}

func TestResolveKnownTiers(t *testing.T) {
	for _, tier := range []env.Tier{env.TierDev, env.TierStage, env.TierProd} {
		t.Setenv("APP_ENV", tier.String())
		if got := env.Resolve(); got != tier {
			t.Errorf("Expected %q, got %q", tier, got)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	if _, err := env.Parse("staging"); err == nil {
		t.Error("Expected error for unknown tier name")
	}
	if _, err := env.Parse(""); err == nil {
		t.Error("Expected error for empty tier name")
	}

	tier, err := env.Parse("stage")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tier != env.TierStage {
		t.Errorf("Expected stage, got %q", tier)
	}
}

func TestValid(t *testing.T) {
	if !env.TierProd.Valid() {
		t.Error("Expected prod to be valid")
	}
	if env.Tier("qa").Valid() {
		t.Error("Expected qa to be invalid")
	}
}
