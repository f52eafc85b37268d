package services

import (
	"fmt"

	"github.com/fitstack/fittrack/internal/env"
	"github.com/fitstack/fittrack/internal/models"
	"gorm.io/gorm"
)

// Check is one verification probe against a target tier. Failures
// counts offending rows; a non-nil Err means the probe itself could
// not run, which also fails the check.
type Check struct {
	Name     string
	Failures int64
	Err      error
}

// Passed reports whether the check found nothing wrong.
func (c Check) Passed() bool {
	return c.Err == nil && c.Failures == 0
}

// Report is the outcome of a full verification pass.
type Report struct {
	Tier   env.Tier
	Checks []Check
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

func (r *Report) add(name string, failures int64, err error) {
	r.Checks = append(r.Checks, Check{Name: name, Failures: failures, Err: err})
}

// verifiedTables lists every environment-tagged table with its model,
// in dependency order.
var verifiedTables = []struct {
	name  string
	model interface{}
}{
	{models.Profile{}.TableName(), &models.Profile{}},
	{models.Exercise{}.TableName(), &models.Exercise{}},
	{models.WorkoutPlan{}.TableName(), &models.WorkoutPlan{}},
	{models.WorkoutPlanExercise{}.TableName(), &models.WorkoutPlanExercise{}},
	{models.WorkoutSession{}.TableName(), &models.WorkoutSession{}},
	{models.ExerciseLog{}.TableName(), &models.ExerciseLog{}},
	{models.ProgressMetric{}.TableName(), &models.ProgressMetric{}},
}

// foreignKeys lists the child→parent relationships that must resolve
// within one tier.
var foreignKeys = []struct {
	name        string
	child       string
	childKey    string
	parent      string
	nullableKey bool
}{
	{"exercise_log->exercise", "exercise_logs", "exercise_id", "exercises", false},
	{"plan_exercise->exercise", "workout_plan_exercises", "exercise_id", "exercises", false},
	{"plan_exercise->plan", "workout_plan_exercises", "plan_id", "workout_plans", false},
	{"exercise_log->session", "exercise_logs", "session_id", "workout_sessions", false},
	{"session->plan", "workout_sessions", "plan_id", "workout_plans", true},
	{"plan->profile", "workout_plans", "profile_id", "profiles", false},
	{"session->profile", "workout_sessions", "profile_id", "profiles", false},
	{"metric->profile", "progress_metrics", "profile_id", "profiles", false},
}

// testNamePatterns are the reserved naming patterns of synthetic data.
var testNamePatterns = []string{"Test%", "Mock%", "Dummy%"}

// testEmailSubstrings flag accounts that should never exist in prod.
var testEmailSubstrings = []string{"test", "seed", "example.com"}

// Verify runs the full consistency check suite for the target tier.
// It only observes: nothing is repaired. The tag check scans whole
// tables: every row in the database pair serving the target tier must
// carry the target's tag, so leakage from any other tier surfaces as
// a failure.
func Verify(db *gorm.DB, tier env.Tier) *Report {
	report := &Report{Tier: tier}

	for _, t := range verifiedTables {
		var count int64
		err := db.Table(t.name).
			Where(env.Column+" <> ?", tier.String()).
			Count(&count).Error
		report.add(fmt.Sprintf("environment tag [%s]", t.name), count, err)
	}

	for _, fk := range foreignKeys {
		var count int64
		join := fmt.Sprintf(
			"LEFT JOIN %s parent ON parent.id = child.%s AND parent.environment = child.environment",
			fk.parent, fk.childKey,
		)
		query := db.Table(fk.child+" child").
			Joins(join).
			Where("child.environment = ?", tier.String()).
			Where("parent.id IS NULL")
		if fk.nullableKey {
			query = query.Where(fmt.Sprintf("child.%s IS NOT NULL", fk.childKey))
		}
		err := query.Count(&count).Error
		report.add(fmt.Sprintf("referential integrity [%s]", fk.name), count, err)
	}

	if tier == env.TierStage || tier == env.TierProd {
		var count int64
		err := env.Scope(db.Table("profiles"), tier).
			Where("id = ?", SeedProfileID).
			Count(&count).Error
		report.add("seed identifiers [profiles]", count, err)

		for _, table := range []string{"exercises", "workout_plans"} {
			var patternCount int64
			query := env.Scope(db.Table(table), tier)
			patterns := db.Where("name LIKE ?", testNamePatterns[0])
			for _, p := range testNamePatterns[1:] {
				patterns = patterns.Or("name LIKE ?", p)
			}
			err := query.Where(patterns).Count(&patternCount).Error
			report.add(fmt.Sprintf("test name patterns [%s]", table), patternCount, err)
		}
	}

	if tier == env.TierProd {
		for _, t := range verifiedTables {
			indexName := fmt.Sprintf("idx_%s_environment", t.name)
			if db.Migrator().HasIndex(t.model, indexName) {
				report.add(fmt.Sprintf("environment index [%s]", t.name), 0, nil)
			} else {
				report.add(fmt.Sprintf("environment index [%s]", t.name), 1, nil)
			}
		}

		var count int64
		query := env.Scope(db.Table("profiles"), tier)
		emails := db.Where("email LIKE ?", "%"+testEmailSubstrings[0]+"%")
		for _, sub := range testEmailSubstrings[1:] {
			emails = emails.Or("email LIKE ?", "%"+sub+"%")
		}
		err := query.Where(emails).Count(&count).Error
		report.add("test emails [profiles]", count, err)
	}

	return report
}
