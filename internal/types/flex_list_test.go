package types_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/fitstack/fittrack/internal/types"
)

func TestFlexListNativeArray(t *testing.T) {
	var reps types.FlexList[int]
	if err := json.Unmarshal([]byte(`[10,8,6]`), &reps); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(reps.Slice(), []int{10, 8, 6}) {
		t.Errorf("Expected [10 8 6], got %v", reps.Slice())
	}
}

func TestFlexListStringEncodedArray(t *testing.T) {
	var reps types.FlexList[int]
	if err := json.Unmarshal([]byte(`"[10,8,6]"`), &reps); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(reps.Slice(), []int{10, 8, 6}) {
		t.Errorf("Expected [10 8 6], got %v", reps.Slice())
	}
}

func TestFlexListCommaSeparatedString(t *testing.T) {
	var weights types.FlexList[float64]
	if err := json.Unmarshal([]byte(`"40, 45.5, 50"`), &weights); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(weights.Slice(), []float64{40, 45.5, 50}) {
		t.Errorf("Expected [40 45.5 50], got %v", weights.Slice())
	}
}

func TestFlexListSingleValue(t *testing.T) {
	var reps types.FlexList[int]
	if err := json.Unmarshal([]byte(`12`), &reps); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(reps.Slice(), []int{12}) {
		t.Errorf("Expected [12], got %v", reps.Slice())
	}
}

func TestFlexListNullAndEmpty(t *testing.T) {
	var reps types.FlexList[int]
	if err := json.Unmarshal([]byte(`null`), &reps); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(reps) != 0 {
		t.Errorf("Expected empty list for null, got %v", reps)
	}

	if err := json.Unmarshal([]byte(`""`), &reps); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(reps.Slice()) != 0 {
		t.Errorf("Expected empty list for empty string, got %v", reps)
	}
}

func TestFlexListGarbage(t *testing.T) {
	var reps types.FlexList[int]
	if err := json.Unmarshal([]byte(`"ten,eight"`), &reps); err == nil {
		t.Error("Expected error for non-numeric string values")
	}
}
