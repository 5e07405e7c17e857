package bookstore

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseExplanation_Classic(t *testing.T) {
	raw := mustMarshal(t, bson.D{
		{Key: "queryPlanner", Value: bson.D{
			{Key: "winningPlan", Value: bson.D{
				{Key: "stage", Value: "FETCH"},
				{Key: "inputStage", Value: bson.D{{Key: "stage", Value: "IXSCAN"}}},
			}},
		}},
		{Key: "executionStats", Value: bson.D{
			{Key: "executionSuccess", Value: true},
			{Key: "nReturned", Value: int32(0)},
			{Key: "executionTimeMillis", Value: int32(1)},
			{Key: "totalKeysExamined", Value: int32(0)},
			{Key: "totalDocsExamined", Value: int32(0)},
		}},
	})

	ex, err := parseExplanation(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.WinningStage != "FETCH" {
		t.Fatalf("expected FETCH, got %q", ex.WinningStage)
	}
	if !ex.Stats.ExecutionSuccess || ex.Stats.ExecutionTimeMillis != 1 {
		t.Fatalf("unexpected stats: %+v", ex.Stats)
	}
	if _, err := ex.RawStats.LookupErr("totalDocsExamined"); err != nil {
		t.Fatalf("raw stats missing totalDocsExamined: %v", err)
	}
}

func TestParseExplanation_SlotBasedEngine(t *testing.T) {
	raw := mustMarshal(t, bson.D{
		{Key: "queryPlanner", Value: bson.D{
			{Key: "winningPlan", Value: bson.D{
				{Key: "queryPlan", Value: bson.D{{Key: "stage", Value: "COLLSCAN"}}},
			}},
		}},
		{Key: "executionStats", Value: bson.D{
			{Key: "nReturned", Value: int32(0)},
			{Key: "totalDocsExamined", Value: int32(12)},
		}},
	})

	ex, err := parseExplanation(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.WinningStage != "COLLSCAN" {
		t.Fatalf("expected COLLSCAN, got %q", ex.WinningStage)
	}
	if ex.Stats.TotalDocsExamined != 12 {
		t.Fatalf("expected 12 docs examined, got %d", ex.Stats.TotalDocsExamined)
	}
}

func TestParseExplanation_NoStats(t *testing.T) {
	raw := mustMarshal(t, bson.D{{Key: "queryPlanner", Value: bson.D{}}})
	if _, err := parseExplanation(raw); err == nil {
		t.Fatal("expected error when executionStats is absent")
	}
}
