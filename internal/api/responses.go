package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunara-app/lunara/internal/models"
	"github.com/lunara-app/lunara/internal/services"
)

type userView struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type phaseDayView struct {
	Date  string `json:"date"`
	Phase string `json:"phase"`
}

type cycleView struct {
	ID               uint           `json:"id"`
	UserID           uint           `json:"user_id"`
	StartDate        string         `json:"start_date"`
	EndDate          string         `json:"end_date"`
	CycleLength      int            `json:"cycle_length"`
	BleedingDuration int            `json:"bleeding_duration"`
	AverageFlow      string         `json:"average_flow"`
	IsPredicted      bool           `json:"is_predicted"`
	Phases           []phaseDayView `json:"phases"`
	LogIDs           []uint         `json:"log_ids"`
}

type dailyLogView struct {
	ID               uint     `json:"id"`
	UserID           uint     `json:"user_id"`
	Date             string   `json:"date"`
	HasMenstruation  bool     `json:"has_menstruation"`
	MenstrualFlow    string   `json:"menstrual_flow"`
	SexualActivity   []string `json:"sexual_activity"`
	Mood             []string `json:"mood"`
	Symptoms         []string `json:"symptoms"`
	VaginalDischarge []string `json:"vaginal_discharge"`
	PhysicalActivity []string `json:"physical_activity"`
	PillsTaken       []string `json:"pills_taken"`
	WaterIntake      *float64 `json:"water_intake"`
	Weight           *float64 `json:"weight"`
	Notes            string   `json:"notes"`
}

func buildCycleView(cycle models.Cycle) cycleView {
	phases := make([]phaseDayView, 0, len(cycle.Phases))
	for _, phaseDay := range cycle.Phases {
		phases = append(phases, phaseDayView{
			Date:  phaseDay.Date.Format(services.DayFormat),
			Phase: phaseDay.Phase,
		})
	}
	logIDs := cycle.LogIDs
	if logIDs == nil {
		logIDs = []uint{}
	}
	return cycleView{
		ID:               cycle.ID,
		UserID:           cycle.UserID,
		StartDate:        cycle.StartDate.Format(services.DayFormat),
		EndDate:          cycle.EndDate.Format(services.DayFormat),
		CycleLength:      cycle.CycleLength,
		BleedingDuration: cycle.BleedingDuration,
		AverageFlow:      cycle.AverageFlow,
		IsPredicted:      cycle.IsPredicted,
		Phases:           phases,
		LogIDs:           logIDs,
	}
}

func buildCycleViews(cycles []models.Cycle) []cycleView {
	views := make([]cycleView, 0, len(cycles))
	for _, cycle := range cycles {
		views = append(views, buildCycleView(cycle))
	}
	return views
}

func buildDailyLogView(entry models.DailyLog) dailyLogView {
	return dailyLogView{
		ID:               entry.ID,
		UserID:           entry.UserID,
		Date:             entry.Date.Format(services.DayFormat),
		HasMenstruation:  entry.HasMenstruation,
		MenstrualFlow:    entry.MenstrualFlow,
		SexualActivity:   entry.SexualActivity,
		Mood:             entry.Mood,
		Symptoms:         entry.Symptoms,
		VaginalDischarge: entry.VaginalDischarge,
		PhysicalActivity: entry.PhysicalActivity,
		PillsTaken:       entry.PillsTaken,
		WaterIntake:      entry.WaterIntake,
		Weight:           entry.Weight,
		Notes:            entry.Notes,
	}
}

// renderServiceError translates the service error taxonomy into HTTP
// statuses; anything unrecognized is a storage failure.
func (handler *Handler) renderServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCycleNotFound),
		errors.Is(err, services.ErrLogNotFound),
		errors.Is(err, services.ErrNoCycleHistory):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrLogAlreadyExists),
		errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCycleLength),
		errors.Is(err, services.ErrInvalidBleedingDuration),
		errors.Is(err, services.ErrInvalidFlowLevel),
		errors.Is(err, services.ErrInvalidWaterIntake),
		errors.Is(err, services.ErrInvalidWeight):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		handler.log.WithError(err).Error("storage failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
