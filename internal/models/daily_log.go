package models

import "time"

// FlowNone marks a day without menstrual flow; the other levels are
// shared with Cycle.AverageFlow and declared in cycle.go.
const FlowNone = "none"

// DailyLog is one user's self-reported observations for one calendar
// date. At most one log exists per user per day.
type DailyLog struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"not null;uniqueIndex:uidx_user_date"`
	Date             time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date"`
	HasMenstruation  bool      `gorm:"not null;default:false"`
	MenstrualFlow    string    `gorm:"not null;default:none"`
	SexualActivity   []string  `gorm:"serializer:json"`
	Mood             []string  `gorm:"serializer:json"`
	Symptoms         []string  `gorm:"serializer:json"`
	VaginalDischarge []string  `gorm:"serializer:json"`
	PhysicalActivity []string  `gorm:"serializer:json"`
	PillsTaken       []string  `gorm:"serializer:json"`
	WaterIntake      *float64
	Weight           *float64
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
