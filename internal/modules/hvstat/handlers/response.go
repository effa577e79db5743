package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/insight"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, harvest.ErrInvalidSelection):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrNoData), errors.Is(err, services.ErrUnknownUnit):
		status = fiber.StatusNotFound
	case errors.Is(err, dataset.ErrNotLoaded), errors.Is(err, insight.ErrDisabled):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("❌ Request failed")
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

func badRequest(c *fiber.Ctx, format string, args ...interface{}) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: fmt.Sprintf(format, args...)})
}

// selectionFromQuery reads country, admin_level, admin_1_name and
// admin_2_name. Without admin_level the depth follows the names given.
func selectionFromQuery(c *fiber.Ctx) (harvest.Selection, error) {
	sel := harvest.Selection{
		Country: strings.TrimSpace(c.Query("country")),
		Admin1:  strings.TrimSpace(c.Query("admin_1_name")),
		Admin2:  strings.TrimSpace(c.Query("admin_2_name")),
	}
	if sel.Country == "" {
		return sel, fmt.Errorf("%w: country parameter is required", harvest.ErrInvalidSelection)
	}

	levelStr := c.Query("admin_level")
	if levelStr == "" {
		return sel, sel.Validate()
	}

	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return sel, fmt.Errorf("%w: admin_level must be an integer (0, 1, or 2)", harvest.ErrInvalidSelection)
	}
	switch level {
	case 0:
		sel.Admin1, sel.Admin2 = "", ""
	case 1:
		if sel.Admin1 == "" {
			return sel, fmt.Errorf("%w: admin_1_name parameter is required for admin_level 1", harvest.ErrInvalidSelection)
		}
		sel.Admin2 = ""
	case 2:
		if sel.Admin1 == "" || sel.Admin2 == "" {
			return sel, fmt.Errorf("%w: admin_1_name and admin_2_name parameters are required for admin_level 2", harvest.ErrInvalidSelection)
		}
	default:
		return sel, fmt.Errorf("%w: admin_level must be 0, 1, or 2", harvest.ErrInvalidSelection)
	}
	return sel, nil
}

// optionalYear parses the year query parameter; empty means all years
func optionalYear(c *fiber.Ctx) (*int, error) {
	raw := strings.TrimSpace(c.Query("year"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: year must be an integer", harvest.ErrInvalidSelection)
	}
	return &year, nil
}
