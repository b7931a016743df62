package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Use(handler.RequestLogger)
	app.Get("/healthz", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	cycles := app.Group("/api/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Post("/predict", handler.PredictCycles)
	cycles.Post("/recalculate", handler.RecalculateCycle)
	cycles.Put("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	logs := app.Group("/api/logs", handler.AuthRequired)
	logs.Get("", handler.ListLogs)
	logs.Post("", handler.CreateLog)
	logs.Get("/date/:date", handler.GetLogByDate)
	logs.Get("/:id", handler.GetLog)
	logs.Put("/:id", handler.UpdateLog)
	logs.Delete("/:id", handler.DeleteLog)
}
