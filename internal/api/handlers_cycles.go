package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunara-app/lunara/internal/models"
	"github.com/lunara-app/lunara/internal/services"
)

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	cycles, err := handler.cycles.ListCyclesForUser(user.ID)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.JSON(buildCycleViews(cycles))
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	payload := cycleRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	start, err := services.ParseDay(payload.StartDate)
	if err != nil {
		return badRequest(c, "invalid start_date")
	}
	averageFlow := payload.AverageFlow
	if averageFlow == "" {
		averageFlow = models.FlowModerate
	}

	cycle, err := handler.cycles.CreateCycle(user.ID, start, payload.CycleLength, payload.BleedingDuration, averageFlow, payload.IsPredicted)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildCycleView(cycle))
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	cycleID, err := c.ParamsInt("id")
	if err != nil || cycleID <= 0 {
		return badRequest(c, "invalid cycle id")
	}

	payload := cycleRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	existing, err := handler.cycles.GetCycleByID(uint(cycleID))
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	if existing.UserID != user.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCycleNotFound.Error()})
	}

	start, err := services.ParseDay(payload.StartDate)
	if err != nil {
		return badRequest(c, "invalid start_date")
	}
	averageFlow := payload.AverageFlow
	if averageFlow == "" {
		averageFlow = models.FlowModerate
	}

	updated, err := handler.cycles.UpdateCycle(models.Cycle{
		ID:               uint(cycleID),
		StartDate:        start,
		CycleLength:      payload.CycleLength,
		BleedingDuration: payload.BleedingDuration,
		AverageFlow:      averageFlow,
		IsPredicted:      payload.IsPredicted,
		LogIDs:           payload.LogIDs,
	})
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.JSON(buildCycleView(updated))
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	cycleID, err := c.ParamsInt("id")
	if err != nil || cycleID <= 0 {
		return badRequest(c, "invalid cycle id")
	}

	existing, err := handler.cycles.GetCycleByID(uint(cycleID))
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	if existing.UserID != user.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCycleNotFound.Error()})
	}

	if err := handler.cycles.DeleteCycle(uint(cycleID)); err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) PredictCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	predicted, err := handler.cycles.PredictNextCycles(user.ID)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.JSON(buildCycleViews(predicted))
}

// RecalculateCycle re-evaluates the user's current cycle against the
// bleeding observations for the given day (today by default).
func (handler *Handler) RecalculateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	day := services.DateOnly(timeNow())
	if rawDate := c.Query("date"); rawDate != "" {
		parsed, err := services.ParseDay(rawDate)
		if err != nil {
			return badRequest(c, "invalid date")
		}
		day = parsed
	}

	cycle, err := handler.cycles.RecalculateIfNoBleeding(user.ID, day)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	if cycle == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(buildCycleView(*cycle))
}
