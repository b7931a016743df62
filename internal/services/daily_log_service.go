package services

import (
	"errors"
	"time"

	"github.com/lunara-app/lunara/internal/models"
)

var (
	ErrLogNotFound        = errors.New("daily log not found")
	ErrLogAlreadyExists   = errors.New("a log already exists for that day")
	ErrInvalidFlowLevel   = errors.New("unknown menstrual flow level")
	ErrInvalidWaterIntake = errors.New("water intake must not be negative")
	ErrInvalidWeight      = errors.New("weight must be positive")
)

type DailyLogRepository interface {
	FindByID(id uint) (models.DailyLog, bool, error)
	FindByUserAndDate(userID uint, day time.Time) (models.DailyLog, bool, error)
	ListByUser(userID uint) ([]models.DailyLog, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
	DeleteByID(id uint) error
}

type DailyLogInput struct {
	Date             time.Time
	HasMenstruation  bool
	MenstrualFlow    string
	SexualActivity   []string
	Mood             []string
	Symptoms         []string
	VaginalDischarge []string
	PhysicalActivity []string
	PillsTaken       []string
	WaterIntake      *float64
	Weight           *float64
	Notes            string
}

type DailyLogService struct {
	logs   DailyLogRepository
	cycles *CycleService
}

func NewDailyLogService(logs DailyLogRepository, cycles *CycleService) *DailyLogService {
	return &DailyLogService{logs: logs, cycles: cycles}
}

// CreateLog stores the observation for one day, rejecting a second log
// for the same (user, date). A log reporting no bleeding triggers
// recalculation of the user's cycle for that day.
func (service *DailyLogService) CreateLog(userID uint, input DailyLogInput) (models.DailyLog, error) {
	if err := validateLogInput(input); err != nil {
		return models.DailyLog{}, err
	}

	day := DateOnly(input.Date)
	_, found, err := service.logs.FindByUserAndDate(userID, day)
	if err != nil {
		return models.DailyLog{}, err
	}
	if found {
		return models.DailyLog{}, ErrLogAlreadyExists
	}

	entry := models.DailyLog{UserID: userID}
	applyLogInput(&entry, day, input)
	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, err
	}

	if !entry.HasMenstruation {
		if _, err := service.cycles.RecalculateIfNoBleeding(userID, day); err != nil {
			return models.DailyLog{}, err
		}
	}
	return entry, nil
}

func (service *DailyLogService) ListLogsForUser(userID uint) ([]models.DailyLog, error) {
	return service.logs.ListByUser(userID)
}

func (service *DailyLogService) GetLogByUserAndDate(userID uint, day time.Time) (models.DailyLog, error) {
	entry, found, err := service.logs.FindByUserAndDate(userID, DateOnly(day))
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.DailyLog{}, ErrLogNotFound
	}
	return entry, nil
}

func (service *DailyLogService) GetLogByID(id uint) (models.DailyLog, error) {
	entry, found, err := service.logs.FindByID(id)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.DailyLog{}, ErrLogNotFound
	}
	return entry, nil
}

// UpdateLog replaces the fields of an existing log in place, keeping
// its identity. Moving the log onto a day that already has one is
// rejected like a duplicate create. The write may change today's
// bleeding status, so a no-bleeding result re-triggers recalculation.
func (service *DailyLogService) UpdateLog(id uint, input DailyLogInput) (models.DailyLog, error) {
	if err := validateLogInput(input); err != nil {
		return models.DailyLog{}, err
	}

	entry, found, err := service.logs.FindByID(id)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.DailyLog{}, ErrLogNotFound
	}

	day := DateOnly(input.Date)
	if !day.Equal(DateOnly(entry.Date)) {
		_, taken, err := service.logs.FindByUserAndDate(entry.UserID, day)
		if err != nil {
			return models.DailyLog{}, err
		}
		if taken {
			return models.DailyLog{}, ErrLogAlreadyExists
		}
	}
	applyLogInput(&entry, day, input)
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, err
	}

	if !entry.HasMenstruation {
		if _, err := service.cycles.RecalculateIfNoBleeding(entry.UserID, day); err != nil {
			return models.DailyLog{}, err
		}
	}
	return entry, nil
}

func (service *DailyLogService) DeleteLog(id uint) error {
	_, found, err := service.logs.FindByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrLogNotFound
	}
	return service.logs.DeleteByID(id)
}

func validateLogInput(input DailyLogInput) error {
	if input.MenstrualFlow != "" && input.MenstrualFlow != models.FlowNone && !models.IsValidFlowLevel(input.MenstrualFlow) {
		return ErrInvalidFlowLevel
	}
	if input.WaterIntake != nil && *input.WaterIntake < 0 {
		return ErrInvalidWaterIntake
	}
	if input.Weight != nil && *input.Weight <= 0 {
		return ErrInvalidWeight
	}
	return nil
}

func applyLogInput(entry *models.DailyLog, day time.Time, input DailyLogInput) {
	entry.Date = day
	entry.HasMenstruation = input.HasMenstruation
	entry.MenstrualFlow = normalizeFlow(input.HasMenstruation, input.MenstrualFlow)
	entry.SexualActivity = emptyIfNil(input.SexualActivity)
	entry.Mood = emptyIfNil(input.Mood)
	entry.Symptoms = emptyIfNil(input.Symptoms)
	entry.VaginalDischarge = emptyIfNil(input.VaginalDischarge)
	entry.PhysicalActivity = emptyIfNil(input.PhysicalActivity)
	entry.PillsTaken = emptyIfNil(input.PillsTaken)
	entry.WaterIntake = input.WaterIntake
	entry.Weight = input.Weight
	entry.Notes = input.Notes
}

// Flow is only meaningful while menstruating.
func normalizeFlow(hasMenstruation bool, flow string) string {
	if !hasMenstruation || flow == "" {
		return models.FlowNone
	}
	return flow
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
