package services_test

import (
	"errors"
	"testing"

	"github.com/fitstack/fittrack/internal/env"
	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.Profile{},
		&models.Exercise{},
		&models.WorkoutPlan{},
		&models.WorkoutPlanExercise{},
		&models.WorkoutSession{},
		&models.ExerciseLog{},
		&models.ProgressMetric{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func createExercise(t *testing.T, store *services.Store, name string) *models.Exercise {
	exercise, err := store.CreateExercise(services.ExerciseInput{
		Name:         strPtr(name),
		MuscleGroups: []string{"chest"},
		Difficulty:   strPtr("beginner"),
	})
	if err != nil {
		t.Fatalf("Failed to create exercise %q: %v", name, err)
	}
	return exercise
}

func createPlan(t *testing.T, store *services.Store, ownerID, name string) *models.WorkoutPlan {
	plan, err := store.CreatePlan(ownerID, services.PlanInput{
		Name:             strPtr(name),
		FrequencyPerWeek: intPtr(3),
	})
	if err != nil {
		t.Fatalf("Failed to create plan %q: %v", name, err)
	}
	return plan
}

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore(db, env.TierDev, nil)

	profile, err := store.UpsertProfile("acct-1", services.ProfileInput{
		Email:       strPtr("a@example.com"),
		DisplayName: strPtr("Alex"),
		Goals:       []string{"strength"},
	})
	if err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}
	if profile.Environment != "dev" {
		t.Errorf("Expected dev tag, got %q", profile.Environment)
	}
	if profile.DisplayName != "Alex" {
		t.Errorf("Expected display name Alex, got %q", profile.DisplayName)
	}

	// Partial update leaves untouched fields alone
	profile, err = store.UpsertProfile("acct-1", services.ProfileInput{
		FitnessLevel: strPtr("intermediate"),
	})
	if err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}
	if profile.DisplayName != "Alex" {
		t.Errorf("Partial update clobbered display name: %q", profile.DisplayName)
	}
	if profile.FitnessLevel != "intermediate" {
		t.Errorf("Expected intermediate, got %q", profile.FitnessLevel)
	}

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly one profile row, got %d", count)
	}
}

func TestTierIsolation(t *testing.T) {
	db := setupTestDB(t)
	devStore := services.NewStore(db, env.TierDev, nil)
	stageStore := services.NewStore(db, env.TierStage, nil)

	exercise := createExercise(t, devStore, "Deadlift")

	if _, err := stageStore.GetExercise(exercise.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound from the stage store, got %v", err)
	}

	stageList, err := stageStore.ListExercises(services.ExerciseFilter{})
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(stageList) != 0 {
		t.Errorf("Stage store sees dev rows: %d", len(stageList))
	}

	devList, err := devStore.ListExercises(services.ExerciseFilter{})
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(devList) != 1 {
		t.Errorf("Expected 1 dev exercise, got %d", len(devList))
	}
}

func TestListExercisesFilters(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore(db, env.TierDev, nil)

	createExercise(t, store, "Barbell Bench Press")
	createExercise(t, store, "Barbell Squat")
	hard, err := store.CreateExercise(services.ExerciseInput{
		Name:         strPtr("Muscle Up"),
		MuscleGroups: []string{"back", "shoulders"},
		Difficulty:   strPtr("advanced"),
	})
	if err != nil {
		t.Fatalf("Failed to create exercise: %v", err)
	}

	byName, err := store.ListExercises(services.ExerciseFilter{NameLike: "Barbell"})
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("Expected 2 barbell exercises, got %d", len(byName))
	}

	byDifficulty, err := store.ListExercises(services.ExerciseFilter{Difficulty: "advanced"})
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(byDifficulty) != 1 || byDifficulty[0].ID != hard.ID {
		t.Errorf("Expected only the advanced exercise, got %v", byDifficulty)
	}

	byGroup, err := store.ListExercises(services.ExerciseFilter{MuscleGroups: []string{"back"}})
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(byGroup) != 1 || byGroup[0].ID != hard.ID {
		t.Errorf("Expected only the back exercise, got %v", byGroup)
	}

	limited, err := store.ListExercises(services.ExerciseFilter{Limit: 2})
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected limit 2, got %d", len(limited))
	}
}

func TestReplacePlanExercises(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore(db, env.TierDev, nil)

	e1 := createExercise(t, store, "Bench Press")
	e2 := createExercise(t, store, "Cable Row")
	plan := createPlan(t, store, "acct-1", "Push Pull")

	slots, err := store.ReplacePlanExercises("acct-1", plan.ID, []services.PlanExerciseInput{
		{ExerciseID: e1.ID, DayOfWeek: 1, Sets: 3, Reps: 10, RestSeconds: 90},
		{ExerciseID: e2.ID, DayOfWeek: 3, Sets: 3, Reps: 12, RestSeconds: 60},
	})
	if err != nil {
		t.Fatalf("Failed to replace slots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("Expected 2 slots, got %d", len(slots))
	}
	if slots[0].OrderIndex != 0 || slots[1].OrderIndex != 1 {
		t.Errorf("Order indexes not assigned positionally: %d, %d", slots[0].OrderIndex, slots[1].OrderIndex)
	}

	// A second replace swaps the set out entirely
	slots, err = store.ReplacePlanExercises("acct-1", plan.ID, []services.PlanExerciseInput{
		{ExerciseID: e2.ID, DayOfWeek: 2, Sets: 5, Reps: 5, RestSeconds: 120},
	})
	if err != nil {
		t.Fatalf("Failed to replace slots again: %v", err)
	}
	if len(slots) != 1 {
		t.Errorf("Expected 1 slot after replace, got %d", len(slots))
	}

	listed, err := store.ListPlanExercises("acct-1", plan.ID)
	if err != nil {
		t.Fatalf("Failed to list slots: %v", err)
	}
	if len(listed) != 1 || listed[0].ExerciseID != e2.ID {
		t.Errorf("Unexpected slots after replace: %v", listed)
	}
}

func TestReplacePlanExercisesRejectsForeignTierExercise(t *testing.T) {
	db := setupTestDB(t)
	devStore := services.NewStore(db, env.TierDev, nil)
	stageStore := services.NewStore(db, env.TierStage, nil)

	stageExercise := createExercise(t, stageStore, "Stage Only")
	plan := createPlan(t, devStore, "acct-1", "Starter")

	_, err := devStore.ReplacePlanExercises("acct-1", plan.ID, []services.PlanExerciseInput{
		{ExerciseID: stageExercise.ID, DayOfWeek: 1, Sets: 3, Reps: 10},
	})
	if !errors.Is(err, services.ErrTierMismatch) {
		t.Errorf("Expected ErrTierMismatch, got %v", err)
	}

	// The failed replace must not have deleted anything or left partial state
	slots, err := devStore.ListPlanExercises("acct-1", plan.ID)
	if err != nil {
		t.Fatalf("Failed to list slots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("Expected no slots after rolled-back replace, got %d", len(slots))
	}
}

func TestDeletePlanRemovesSlots(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore(db, env.TierDev, nil)

	e1 := createExercise(t, store, "Bench Press")
	plan := createPlan(t, store, "acct-1", "Starter")
	if _, err := store.ReplacePlanExercises("acct-1", plan.ID, []services.PlanExerciseInput{
		{ExerciseID: e1.ID, DayOfWeek: 1, Sets: 3, Reps: 10},
	}); err != nil {
		t.Fatalf("Failed to add slots: %v", err)
	}

	if err := store.DeletePlan("acct-1", plan.ID); err != nil {
		t.Fatalf("Failed to delete plan: %v", err)
	}

	var count int64
	db.Model(&models.WorkoutPlanExercise{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected slots deleted with plan, got %d rows", count)
	}
}

func TestSessionEndsExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore(db, env.TierDev, nil)

	session, err := store.StartSession("acct-1", services.SessionStartInput{Notes: "leg day"})
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	if session.EndedAt != nil {
		t.Fatal("New session must be active")
	}

	ended, err := store.EndSession("acct-1", session.ID, services.SessionUpdateInput{Feeling: strPtr("good")})
	if err != nil {
		t.Fatalf("Failed to end session: %v", err)
	}
	if ended.EndedAt == nil {
		t.Fatal("Ended session must carry an end time")
	}
	if ended.Feeling != "good" {
		t.Errorf("Expected feeling good, got %q", ended.Feeling)
	}

	if _, err := store.EndSession("acct-1", session.ID, services.SessionUpdateInput{}); !errors.Is(err, services.ErrSessionEnded) {
		t.Errorf("Expected ErrSessionEnded on double end, got %v", err)
	}

	if _, err := store.EndSession("acct-1", "no-such-id", services.SessionUpdateInput{}); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown session, got %v", err)
	}
}

func TestStartSessionValidatesPlanTier(t *testing.T) {
	db := setupTestDB(t)
	devStore := services.NewStore(db, env.TierDev, nil)
	stageStore := services.NewStore(db, env.TierStage, nil)

	stagePlan := createPlan(t, stageStore, "acct-1", "Stage Plan")

	_, err := devStore.StartSession("acct-1", services.SessionStartInput{PlanID: &stagePlan.ID})
	if !errors.Is(err, services.ErrTierMismatch) {
		t.Errorf("Expected ErrTierMismatch, got %v", err)
	}
}

func TestCreateLogValidations(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore(db, env.TierDev, nil)

	exercise := createExercise(t, store, "Bench Press")
	session, err := store.StartSession("acct-1", services.SessionStartInput{})
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	// Reps and weights must describe the same set count
	_, err = store.CreateLog("acct-1", session.ID, services.LogInput{
		ExerciseID:    exercise.ID,
		SetsCompleted: 3,
		RepsCompleted: types.FlexList[int]{10, 8, 6},
		WeightsUsed:   types.FlexList[float64]{40, 45},
	})
	if !errors.Is(err, services.ErrSetMismatch) {
		t.Errorf("Expected ErrSetMismatch, got %v", err)
	}

	// Unknown session is reported as a tier mismatch
	_, err = store.CreateLog("acct-1", "no-such-session", services.LogInput{
		ExerciseID:    exercise.ID,
		RepsCompleted: types.FlexList[int]{10},
		WeightsUsed:   types.FlexList[float64]{40},
	})
	if !errors.Is(err, services.ErrTierMismatch) {
		t.Errorf("Expected ErrTierMismatch for unknown session, got %v", err)
	}

	// Set count derives from the reps sequence when omitted
	logRow, err := store.CreateLog("acct-1", session.ID, services.LogInput{
		ExerciseID:    exercise.ID,
		RepsCompleted: types.FlexList[int]{10, 8},
		WeightsUsed:   types.FlexList[float64]{40, 45},
	})
	if err != nil {
		t.Fatalf("Failed to create log: %v", err)
	}
	if logRow.SetsCompleted != 2 {
		t.Errorf("Expected derived set count 2, got %d", logRow.SetsCompleted)
	}

	logs, err := store.ListLogs("acct-1", session.ID)
	if err != nil {
		t.Fatalf("Failed to list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("Expected 1 log, got %d", len(logs))
	}
}

func TestResetAccountIsCompleteAndScoped(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore(db, env.TierDev, nil)

	// Target account with a full data set
	if _, err := store.UpsertProfile("acct-1", services.ProfileInput{Email: strPtr("a@example.com")}); err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}
	exercise := createExercise(t, store, "Bench Press")
	plan := createPlan(t, store, "acct-1", "Starter")
	if _, err := store.ReplacePlanExercises("acct-1", plan.ID, []services.PlanExerciseInput{
		{ExerciseID: exercise.ID, DayOfWeek: 1, Sets: 3, Reps: 10},
	}); err != nil {
		t.Fatalf("Failed to add slots: %v", err)
	}
	session, err := store.StartSession("acct-1", services.SessionStartInput{PlanID: &plan.ID})
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	if _, err := store.CreateLog("acct-1", session.ID, services.LogInput{
		ExerciseID:    exercise.ID,
		RepsCompleted: types.FlexList[int]{10},
		WeightsUsed:   types.FlexList[float64]{40},
	}); err != nil {
		t.Fatalf("Failed to create log: %v", err)
	}
	if _, err := store.CreateMetric("acct-1", services.MetricInput{MetricType: "weight", Value: 80}); err != nil {
		t.Fatalf("Failed to create metric: %v", err)
	}

	// Bystander account that must survive the reset
	otherPlan := createPlan(t, store, "acct-2", "Other Plan")

	result, err := store.ResetAccount("acct-1")
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if result.Plans != 1 || result.Sessions != 1 || result.ExerciseLogs != 1 ||
		result.PlanExercises != 1 || result.ProgressMetrics != 1 || result.Profile != 1 {
		t.Errorf("Unexpected reset counts: %+v", result)
	}

	if _, err := store.GetProfile("acct-1"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected profile gone, got %v", err)
	}
	if _, err := store.GetPlan("acct-2", otherPlan.ID); err != nil {
		t.Errorf("Bystander plan lost: %v", err)
	}
	// The shared exercise library is untouched by an account reset
	if _, err := store.GetExercise(exercise.ID); err != nil {
		t.Errorf("Library exercise lost: %v", err)
	}
}

func TestMutationsPublishSequencedEvents(t *testing.T) {
	db := setupTestDB(t)
	bus := events.NewBus()
	store := services.NewStore(db, env.TierDev, bus)

	ch, cancel := bus.Subscribe("", env.TierDev, 16)
	defer cancel()

	exercise := createExercise(t, store, "Bench Press")
	if err := store.DeleteExercise(exercise.ID); err != nil {
		t.Fatalf("Failed to delete exercise: %v", err)
	}

	first := <-ch
	second := <-ch
	if first.Action != events.ActionInsert || second.Action != events.ActionDelete {
		t.Errorf("Unexpected actions: %s, %s", first.Action, second.Action)
	}
	if second.Seq <= first.Seq {
		t.Errorf("Sequence not increasing: %d then %d", first.Seq, second.Seq)
	}
	if first.Kind != events.KindExercises || first.EntityID != exercise.ID {
		t.Errorf("Unexpected event payload: %+v", first)
	}
}
