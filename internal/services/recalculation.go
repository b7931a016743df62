package services

import (
	"sync"
	"time"

	"github.com/lunara-app/lunara/internal/models"
)

// userLocks serializes recalculation per user. Without it, two
// concurrent recalculations for the same user can both take the
// delete-then-insert path and leave duplicate predicted cycles behind.
// Entries are never evicted: the map holds one mutex per user seen
// since process start.
type userLocks struct {
	mu    sync.Mutex
	users map[uint]*sync.Mutex
}

func (locks *userLocks) lock(userID uint) func() {
	locks.mu.Lock()
	if locks.users == nil {
		locks.users = make(map[uint]*sync.Mutex)
	}
	userLock, ok := locks.users[userID]
	if !ok {
		userLock = &sync.Mutex{}
		locks.users[userID] = userLock
	}
	locks.mu.Unlock()

	userLock.Lock()
	return userLock.Unlock
}

// RecalculateIfNoBleeding re-evaluates the user's current cycle against
// the bleeding observations for today and yesterday. An active
// confirmed cycle is authoritative: it is returned untouched while
// bleeding confirms it, and only its menstruation window is trimmed
// when bleeding just ended. Outside a confirmed window the forecast is
// refreshed: stale predictions are dropped and a new predicted cycle is
// spawned from the last cycle's parameters. Returns nil when the user
// has no cycle history.
func (service *CycleService) RecalculateIfNoBleeding(userID uint, today time.Time) (*models.Cycle, error) {
	unlock := service.locks.lock(userID)
	defer unlock()

	day := DateOnly(today)

	lastCycle, found, err := service.cycles.FindMostRecentByUser(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	todayLog, todayFound, err := service.logs.FindByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}
	yesterdayLog, yesterdayFound, err := service.logs.FindByUserAndDate(userID, day.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	hasBleedingToday := todayFound && todayLog.HasMenstruation
	hadBleedingYesterday := yesterdayFound && yesterdayLog.HasMenstruation
	inCurrentCycle := betweenCalendarDaysInclusive(day, DateOnly(lastCycle.StartDate), DateOnly(lastCycle.EndDate))

	if inCurrentCycle && !lastCycle.IsPredicted {
		if hasBleedingToday {
			return &lastCycle, nil
		}
		if hadBleedingYesterday {
			return service.trimMenstruationWindow(lastCycle, day)
		}
		return &lastCycle, nil
	}

	return service.refreshPrediction(lastCycle, day, hasBleedingToday || hadBleedingYesterday)
}

// trimMenstruationWindow ends the menstruation window before the given
// day: every menstruation phase-day dated on or after it becomes
// follicular. The cycle is replaced wholesale, never edited in place.
func (service *CycleService) trimMenstruationWindow(cycle models.Cycle, day time.Time) (*models.Cycle, error) {
	trimmed := make([]models.CyclePhaseDay, len(cycle.Phases))
	for index, phaseDay := range cycle.Phases {
		if phaseDay.Phase == models.PhaseMenstruation && !DateOnly(phaseDay.Date).Before(day) {
			phaseDay.Phase = models.PhaseFollicular
		}
		trimmed[index] = phaseDay
	}

	updated := cycle
	updated.Phases = trimmed
	if err := service.cycles.Save(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// refreshPrediction replaces the forecast with a single predicted cycle
// anchored on today: starting today when bleeding was observed today or
// yesterday, tomorrow otherwise. The new record carries the last
// cycle's parameters but a fresh identity and no log references.
func (service *CycleService) refreshPrediction(lastCycle models.Cycle, day time.Time, bleedingNearby bool) (*models.Cycle, error) {
	if err := service.DeletePredictedCycles(lastCycle.UserID); err != nil {
		return nil, err
	}

	newStart := day.AddDate(0, 0, 1)
	if bleedingNearby {
		newStart = day
	}

	phases, err := GeneratePhases(newStart, lastCycle.CycleLength, lastCycle.BleedingDuration)
	if err != nil {
		return nil, err
	}

	predicted := models.Cycle{
		UserID:           lastCycle.UserID,
		StartDate:        newStart,
		EndDate:          newStart.AddDate(0, 0, lastCycle.CycleLength-1),
		CycleLength:      lastCycle.CycleLength,
		BleedingDuration: lastCycle.BleedingDuration,
		AverageFlow:      lastCycle.AverageFlow,
		IsPredicted:      true,
		Phases:           phases,
		LogIDs:           []uint{},
	}
	if err := service.cycles.Save(&predicted); err != nil {
		return nil, err
	}
	return &predicted, nil
}
