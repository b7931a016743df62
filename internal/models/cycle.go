package models

import "time"

const (
	PhaseMenstruation = "menstruation"
	PhaseFollicular   = "follicular"
	PhaseOvulation    = "ovulation"
	PhaseLuteal       = "luteal"
)

const (
	FlowLight    = "light"
	FlowModerate = "moderate"
	FlowHeavy    = "heavy"
	FlowClots    = "clots"
)

// CyclePhaseDay pins one calendar day to its phase. Values are never
// mutated once generated; recalculation builds a fresh slice.
type CyclePhaseDay struct {
	Date  time.Time `json:"date"`
	Phase string    `json:"phase"`
}

// Cycle is a confirmed or predicted menstrual cycle. EndDate is always
// StartDate + CycleLength - 1 days, and Phases covers exactly
// CycleLength consecutive days starting at StartDate.
type Cycle struct {
	ID               uint            `gorm:"primaryKey"`
	UserID           uint            `gorm:"not null;index"`
	StartDate        time.Time       `gorm:"type:date;not null;index"`
	EndDate          time.Time       `gorm:"type:date;not null"`
	CycleLength      int             `gorm:"not null"`
	BleedingDuration int             `gorm:"not null"`
	AverageFlow      string          `gorm:"not null;default:moderate"`
	IsPredicted      bool            `gorm:"not null;default:false"`
	Phases           []CyclePhaseDay `gorm:"serializer:json"`
	LogIDs           []uint          `gorm:"serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func IsValidFlowLevel(value string) bool {
	switch value {
	case FlowLight, FlowModerate, FlowHeavy, FlowClots:
		return true
	}
	return false
}
