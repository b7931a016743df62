package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	payload := registerRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := handler.auth.Register(payload.Email, payload.Password)
	if err != nil {
		return handler.renderServiceError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  userView{ID: user.ID, Email: user.Email},
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := loginRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := handler.auth.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return handler.renderServiceError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return handler.renderServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  userView{ID: user.ID, Email: user.Email},
	})
}
