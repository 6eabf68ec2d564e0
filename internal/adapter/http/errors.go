package http

import (
	"errors"
	"net/http"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/model"
	"portfolio-cms/internal/usecase"
	"portfolio-cms/pkg/github"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error as {"error": "..."} with a status derived
// from its kind.
func (h *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	body := fiber.Map{"error": err.Error()}

	var (
		fe     *fiber.Error
		verr   *model.ValidationError
		apiErr *github.APIError
	)
	switch {
	case errors.As(err, &fe):
		status = fe.Code
	case errors.As(err, &verr):
		status = fiber.StatusUnprocessableEntity
		body["problems"] = verr.Problems
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalid), errors.Is(err, usecase.ErrUnknownVariant):
		status = fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrNoRenderer):
		status = fiber.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		status = fiber.StatusBadGateway
		if apiErr.StatusCode == http.StatusNotFound {
			status = fiber.StatusNotFound
		}
	}

	if status >= fiber.StatusInternalServerError {
		h.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "status", status, "error", err)
	}
	return c.Status(status).JSON(body)
}
