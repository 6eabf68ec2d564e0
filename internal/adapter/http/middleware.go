package http

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

func (h *Handler) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}
	h.logger.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID))
	return nil
}

func (h *Handler) requireDB(c *fiber.Ctx) error {
	if !h.dbReady {
		return fiber.NewError(fiber.StatusServiceUnavailable, "database not configured")
	}
	return c.Next()
}

// adminAuth checks a static bearer token. An empty token disables the check.
func (h *Handler) adminAuth() fiber.Handler {
	if h.adminToken == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), []byte(h.adminToken)) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		},
	})
}
