package services

import (
	"errors"
	"time"

	"github.com/lunara-app/lunara/internal/models"
)

var (
	ErrInvalidCycleLength      = errors.New("cycle length must be at least 1 day")
	ErrInvalidBleedingDuration = errors.New("bleeding duration must be between 0 and the cycle length")
)

// Ovulation is pinned to day offset 14 regardless of cycle length.
const ovulationOffset = 14

// GeneratePhases maps every day of a cycle to its phase: menstruation
// while bleeding lasts, follicular up to ovulation day, luteal after.
// The result covers exactly cycleLength consecutive days starting at
// startDate.
func GeneratePhases(startDate time.Time, cycleLength int, bleedingDuration int) ([]models.CyclePhaseDay, error) {
	if cycleLength < 1 {
		return nil, ErrInvalidCycleLength
	}
	if bleedingDuration < 0 || bleedingDuration > cycleLength {
		return nil, ErrInvalidBleedingDuration
	}

	start := DateOnly(startDate)
	phases := make([]models.CyclePhaseDay, 0, cycleLength)
	for offset := 0; offset < cycleLength; offset++ {
		phase := models.PhaseLuteal
		switch {
		case offset < bleedingDuration:
			phase = models.PhaseMenstruation
		case offset < ovulationOffset:
			phase = models.PhaseFollicular
		case offset == ovulationOffset:
			phase = models.PhaseOvulation
		}
		phases = append(phases, models.CyclePhaseDay{
			Date:  start.AddDate(0, 0, offset),
			Phase: phase,
		})
	}
	return phases, nil
}
