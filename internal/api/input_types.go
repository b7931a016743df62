package api

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type cycleRequest struct {
	StartDate        string `json:"start_date" validate:"required,datetime=2006-01-02"`
	CycleLength      int    `json:"cycle_length" validate:"required,min=1,max=120"`
	BleedingDuration int    `json:"bleeding_duration" validate:"min=0"`
	AverageFlow      string `json:"average_flow" validate:"omitempty,oneof=light moderate heavy clots"`
	IsPredicted      bool   `json:"is_predicted"`
	LogIDs           []uint `json:"log_ids"`
}

type dailyLogRequest struct {
	Date             string   `json:"date" validate:"required,datetime=2006-01-02"`
	HasMenstruation  bool     `json:"has_menstruation"`
	MenstrualFlow    string   `json:"menstrual_flow" validate:"omitempty,oneof=none light moderate heavy clots"`
	SexualActivity   []string `json:"sexual_activity"`
	Mood             []string `json:"mood"`
	Symptoms         []string `json:"symptoms"`
	VaginalDischarge []string `json:"vaginal_discharge"`
	PhysicalActivity []string `json:"physical_activity"`
	PillsTaken       []string `json:"pills_taken"`
	WaterIntake      *float64 `json:"water_intake" validate:"omitempty,gte=0"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	Notes            string   `json:"notes"`
}
