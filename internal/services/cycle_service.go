package services

import (
	"errors"
	"time"

	"github.com/lunara-app/lunara/internal/models"
)

var (
	ErrCycleNotFound  = errors.New("cycle not found")
	ErrNoCycleHistory = errors.New("no cycle history to extrapolate from")
)

// predictionHorizon is how many future cycles a forecast covers.
const predictionHorizon = 6

type CycleRepository interface {
	Save(cycle *models.Cycle) error
	SaveAll(cycles []*models.Cycle) error
	FindByID(id uint) (models.Cycle, bool, error)
	FindByUser(userID uint) ([]models.Cycle, error)
	FindMostRecentByUser(userID uint) (models.Cycle, bool, error)
	FindPredictedByUser(userID uint) ([]models.Cycle, error)
	ExistsByID(id uint) (bool, error)
	DeleteByID(id uint) error
	DeleteAll(cycles []models.Cycle) error
}

// CycleDailyLogLookup is the engine's read-only view of daily logs.
type CycleDailyLogLookup interface {
	FindByUserAndDate(userID uint, day time.Time) (models.DailyLog, bool, error)
}

type CycleService struct {
	cycles CycleRepository
	logs   CycleDailyLogLookup
	locks  userLocks
}

func NewCycleService(cycles CycleRepository, logs CycleDailyLogLookup) *CycleService {
	return &CycleService{cycles: cycles, logs: logs}
}

// CreateCycle persists a confirmed or predicted cycle with its phase
// calendar. Several cycles per user may coexist chronologically; no
// duplicate-date validation happens at this layer.
func (service *CycleService) CreateCycle(userID uint, startDate time.Time, cycleLength int, bleedingDuration int, averageFlow string, isPredicted bool) (models.Cycle, error) {
	start := DateOnly(startDate)
	phases, err := GeneratePhases(start, cycleLength, bleedingDuration)
	if err != nil {
		return models.Cycle{}, err
	}

	cycle := models.Cycle{
		UserID:           userID,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, cycleLength-1),
		CycleLength:      cycleLength,
		BleedingDuration: bleedingDuration,
		AverageFlow:      averageFlow,
		IsPredicted:      isPredicted,
		Phases:           phases,
		LogIDs:           []uint{},
	}
	if err := service.cycles.Save(&cycle); err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

func (service *CycleService) ListCyclesForUser(userID uint) ([]models.Cycle, error) {
	return service.cycles.FindByUser(userID)
}

func (service *CycleService) GetCycleByID(id uint) (models.Cycle, error) {
	cycle, found, err := service.cycles.FindByID(id)
	if err != nil {
		return models.Cycle{}, err
	}
	if !found {
		return models.Cycle{}, ErrCycleNotFound
	}
	return cycle, nil
}

// UpdateCycle replaces the parameters of a persisted cycle. End date
// and phase calendar are recomputed from the supplied start date, cycle
// length and bleeding duration; the supplied log references are kept
// as-is. The stored owner is authoritative: the supplied UserID is
// ignored.
func (service *CycleService) UpdateCycle(cycle models.Cycle) (models.Cycle, error) {
	existing, found, err := service.cycles.FindByID(cycle.ID)
	if err != nil {
		return models.Cycle{}, err
	}
	if !found {
		return models.Cycle{}, ErrCycleNotFound
	}

	start := DateOnly(cycle.StartDate)
	phases, err := GeneratePhases(start, cycle.CycleLength, cycle.BleedingDuration)
	if err != nil {
		return models.Cycle{}, err
	}

	updated := existing
	updated.StartDate = start
	updated.EndDate = start.AddDate(0, 0, cycle.CycleLength-1)
	updated.CycleLength = cycle.CycleLength
	updated.BleedingDuration = cycle.BleedingDuration
	updated.AverageFlow = cycle.AverageFlow
	updated.IsPredicted = cycle.IsPredicted
	updated.Phases = phases
	updated.LogIDs = cycle.LogIDs
	if updated.LogIDs == nil {
		updated.LogIDs = []uint{}
	}
	if err := service.cycles.Save(&updated); err != nil {
		return models.Cycle{}, err
	}
	return updated, nil
}

// DeleteCycle removes one cycle by id. Storage failures surface as
// errors rather than being collapsed into a boolean.
func (service *CycleService) DeleteCycle(id uint) error {
	exists, err := service.cycles.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCycleNotFound
	}
	return service.cycles.DeleteByID(id)
}

// PredictNextCycles regenerates the six-cycle forecast from the most
// recent cycle. Stale predictions are dropped first; the fresh ones
// chain sequentially, each starting one cycle length after the
// previous start, all reusing the anchor's parameters.
func (service *CycleService) PredictNextCycles(userID uint) ([]models.Cycle, error) {
	if err := service.DeletePredictedCycles(userID); err != nil {
		return nil, err
	}

	anchor, found, err := service.cycles.FindMostRecentByUser(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoCycleHistory
	}

	predicted := make([]*models.Cycle, 0, predictionHorizon)
	baseStart := DateOnly(anchor.StartDate)
	for i := 0; i < predictionHorizon; i++ {
		nextStart := baseStart.AddDate(0, 0, anchor.CycleLength)
		phases, err := GeneratePhases(nextStart, anchor.CycleLength, anchor.BleedingDuration)
		if err != nil {
			return nil, err
		}

		predicted = append(predicted, &models.Cycle{
			UserID:           userID,
			StartDate:        nextStart,
			EndDate:          nextStart.AddDate(0, 0, anchor.CycleLength-1),
			CycleLength:      anchor.CycleLength,
			BleedingDuration: anchor.BleedingDuration,
			AverageFlow:      anchor.AverageFlow,
			IsPredicted:      true,
			Phases:           phases,
			LogIDs:           []uint{},
		})
		baseStart = nextStart
	}

	if err := service.cycles.SaveAll(predicted); err != nil {
		return nil, err
	}

	stored := make([]models.Cycle, 0, len(predicted))
	for _, cycle := range predicted {
		stored = append(stored, *cycle)
	}
	return stored, nil
}

// DeletePredictedCycles drops every forecast cycle for the user.
func (service *CycleService) DeletePredictedCycles(userID uint) error {
	stale, err := service.cycles.FindPredictedByUser(userID)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}
	return service.cycles.DeleteAll(stale)
}
