package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunara-app/lunara/internal/services"
)

func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	logs, err := handler.logs.ListLogsForUser(user.ID)
	if err != nil {
		return handler.renderServiceError(c, err)
	}

	views := make([]dailyLogView, 0, len(logs))
	for _, entry := range logs {
		views = append(views, buildDailyLogView(entry))
	}
	return c.JSON(views)
}

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	logID, err := c.ParamsInt("id")
	if err != nil || logID <= 0 {
		return badRequest(c, "invalid log id")
	}

	entry, err := handler.logs.GetLogByID(uint(logID))
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	if entry.UserID != user.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrLogNotFound.Error()})
	}
	return c.JSON(buildDailyLogView(entry))
}

func (handler *Handler) GetLogByDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	day, err := services.ParseDay(c.Params("date"))
	if err != nil {
		return badRequest(c, "invalid date")
	}

	entry, err := handler.logs.GetLogByUserAndDate(user.ID, day)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.JSON(buildDailyLogView(entry))
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	payload := dailyLogRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	input, err := buildLogInput(payload)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	entry, err := handler.logs.CreateLog(user.ID, input)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildDailyLogView(entry))
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	logID, err := c.ParamsInt("id")
	if err != nil || logID <= 0 {
		return badRequest(c, "invalid log id")
	}

	payload := dailyLogRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	existing, err := handler.logs.GetLogByID(uint(logID))
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	if existing.UserID != user.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrLogNotFound.Error()})
	}

	input, err := buildLogInput(payload)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	entry, err := handler.logs.UpdateLog(uint(logID), input)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.JSON(buildDailyLogView(entry))
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	logID, err := c.ParamsInt("id")
	if err != nil || logID <= 0 {
		return badRequest(c, "invalid log id")
	}

	existing, err := handler.logs.GetLogByID(uint(logID))
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	if existing.UserID != user.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrLogNotFound.Error()})
	}

	if err := handler.logs.DeleteLog(uint(logID)); err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func buildLogInput(payload dailyLogRequest) (services.DailyLogInput, error) {
	day, err := services.ParseDay(payload.Date)
	if err != nil {
		return services.DailyLogInput{}, err
	}
	return services.DailyLogInput{
		Date:             day,
		HasMenstruation:  payload.HasMenstruation,
		MenstrualFlow:    payload.MenstrualFlow,
		SexualActivity:   payload.SexualActivity,
		Mood:             payload.Mood,
		Symptoms:         payload.Symptoms,
		VaginalDischarge: payload.VaginalDischarge,
		PhysicalActivity: payload.PhysicalActivity,
		PillsTaken:       payload.PillsTaken,
		WaterIntake:      payload.WaterIntake,
		Weight:           payload.Weight,
		Notes:            payload.Notes,
	}, nil
}
