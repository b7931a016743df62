package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lunara-app/lunara/internal/models"
	"github.com/sirupsen/logrus"
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// RequestLogger tags every request with a request id and logs its
// outcome with timing.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	c.Locals(contextRequestIDKey, requestID)
	c.Set("X-Request-ID", requestID)

	started := time.Now()
	err := c.Next()

	entry := handler.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     c.Response().StatusCode(),
		"duration":   time.Since(started).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("request failed")
		return err
	}
	entry.Info("request handled")
	return nil
}

// AuthRequired authenticates the bearer token and loads the current
// user into the request context.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	rawToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	user, found, err := handler.auth.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("unknown user")
	}
	return &user, nil
}

func (handler *Handler) buildToken(user *models.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
