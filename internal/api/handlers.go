package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lunara-app/lunara/internal/services"
	"github.com/sirupsen/logrus"
)

const (
	contextUserKey      = "current_user"
	contextRequestIDKey = "request_id"
)

// Swapped out in tests.
var timeNow = time.Now

type Handler struct {
	auth      *services.AuthService
	cycles    *services.CycleService
	logs      *services.DailyLogService
	secretKey []byte
	tokenTTL  time.Duration
	validate  *validator.Validate
	log       *logrus.Logger
}

func NewHandler(auth *services.AuthService, cycles *services.CycleService, logs *services.DailyLogService, secretKey string, tokenTTL time.Duration, log *logrus.Logger) *Handler {
	return &Handler{
		auth:      auth,
		cycles:    cycles,
		logs:      logs,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		validate:  validator.New(),
		log:       log,
	}
}
