package services

import (
	"testing"

	"github.com/lunara-app/lunara/internal/models"
)

func TestRecalculateKeepsActiveBleedingCycle(t *testing.T) {
	service, _, logs := newCycleServiceForTest()

	created, err := service.CreateCycle(7, mustParseDay("2025-06-01"), 28, 5, models.FlowModerate, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logs.addLog(7, "2025-06-10", true)

	result, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatalf("expected the active cycle back")
	}
	if result.ID != created.ID || result.IsPredicted {
		t.Fatalf("expected the confirmed cycle unchanged, got id %d predicted %v", result.ID, result.IsPredicted)
	}
	if !result.StartDate.Equal(created.StartDate) || !result.EndDate.Equal(created.EndDate) {
		t.Fatalf("expected dates untouched")
	}
}

func TestRecalculateTrimsEndedMenstruation(t *testing.T) {
	service, cycles, logs := newCycleServiceForTest()

	created, err := service.CreateCycle(7, mustParseDay("2025-06-01"), 28, 5, models.FlowModerate, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logs.addLog(7, "2025-06-02", true)
	logs.addLog(7, "2025-06-03", false)

	result, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.ID != created.ID {
		t.Fatalf("expected the same cycle updated in place")
	}
	if result.IsPredicted {
		t.Fatalf("trimming must not mark the cycle predicted")
	}

	for _, phaseDay := range result.Phases {
		day := phaseDay.Date.Format(DayFormat)
		switch day {
		case "2025-06-01", "2025-06-02":
			if phaseDay.Phase != models.PhaseMenstruation {
				t.Fatalf("%s: expected menstruation kept, got %s", day, phaseDay.Phase)
			}
		case "2025-06-03", "2025-06-04", "2025-06-05":
			if phaseDay.Phase != models.PhaseFollicular {
				t.Fatalf("%s: expected follicular after bleeding ended, got %s", day, phaseDay.Phase)
			}
		}
	}

	stored, found, _ := cycles.FindByID(created.ID)
	if !found {
		t.Fatalf("expected trimmed cycle persisted")
	}
	if stored.Phases[2].Phase != models.PhaseFollicular {
		t.Fatalf("expected persisted phases trimmed")
	}
}

func TestRecalculateSteadyStateInsideConfirmedCycle(t *testing.T) {
	service, _, _ := newCycleServiceForTest()

	created, err := service.CreateCycle(7, mustParseDay("2025-06-01"), 28, 5, models.FlowModerate, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == nil || second == nil {
		t.Fatalf("expected the confirmed cycle back both times")
	}
	if first.ID != created.ID || second.ID != created.ID {
		t.Fatalf("expected the same cycle back")
	}
	if !first.StartDate.Equal(second.StartDate) || !first.EndDate.Equal(second.EndDate) || len(first.Phases) != len(second.Phases) {
		t.Fatalf("expected value-equal results on repeated calls")
	}
}

func TestRecalculateSpawnsPredictionAfterCycleEnd(t *testing.T) {
	service, cycles, _ := newCycleServiceForTest()

	created, err := service.CreateCycle(7, mustParseDay("2025-05-10"), 28, 5, models.FlowModerate, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.EndDate.Format(DayFormat) != "2025-06-06" {
		t.Fatalf("fixture: expected end 2025-06-06, got %s", created.EndDate.Format(DayFormat))
	}

	result, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a fresh predicted cycle")
	}
	if !result.IsPredicted {
		t.Fatalf("expected predicted flag set")
	}
	if result.StartDate.Format(DayFormat) != "2025-06-11" {
		t.Fatalf("expected start today+1 = 2025-06-11, got %s", result.StartDate.Format(DayFormat))
	}
	if result.EndDate.Format(DayFormat) != "2025-07-08" {
		t.Fatalf("expected end 2025-07-08, got %s", result.EndDate.Format(DayFormat))
	}
	if len(result.LogIDs) != 0 {
		t.Fatalf("expected no log references on a forecast")
	}
	if cycles.predictedCount(7) != 1 {
		t.Fatalf("expected exactly one predicted cycle, got %d", cycles.predictedCount(7))
	}
}

func TestRecalculateStartsTodayWhenBleedingNearby(t *testing.T) {
	service, _, logs := newCycleServiceForTest()

	if _, err := service.CreateCycle(7, mustParseDay("2025-05-10"), 28, 5, models.FlowModerate, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logs.addLog(7, "2025-06-09", true)

	result, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsPredicted {
		t.Fatalf("expected a predicted cycle")
	}
	if result.StartDate.Format(DayFormat) != "2025-06-10" {
		t.Fatalf("expected start today when bleeding was seen yesterday, got %s", result.StartDate.Format(DayFormat))
	}
}

func TestRecalculateReplacesStalePredictions(t *testing.T) {
	service, cycles, _ := newCycleServiceForTest()

	if _, err := service.CreateCycle(7, mustParseDay("2025-05-10"), 28, 5, models.FlowModerate, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cycles.predictedCount(7) != 1 {
		t.Fatalf("repeated recalculation must converge to one prediction, got %d", cycles.predictedCount(7))
	}
	if !first.StartDate.Equal(second.StartDate) || !first.EndDate.Equal(second.EndDate) {
		t.Fatalf("expected value-idempotent predictions")
	}
}

func TestRecalculateWithoutHistory(t *testing.T) {
	service, _, _ := newCycleServiceForTest()

	result, err := service.RecalculateIfNoBleeding(7, mustParseDay("2025-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil for a user without cycles")
	}
}
