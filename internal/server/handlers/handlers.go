package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mwantia/studytrack/pkg/db/store"
	"github.com/mwantia/studytrack/pkg/log"
)

// Handler serves the study store over HTTP. Every method performs one store
// operation and reports failures as {"error": ...}; nothing is retried.
type Handler struct {
	store store.StudyStore
	log   log.LoggerService
}

func New(st store.StudyStore, logService log.LoggerService) *Handler {
	return &Handler{
		store: st,
		log:   logService.Named("handlers"),
	}
}

// Health reports store connectivity
func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.store.Health(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// GetStatistics returns the aggregate report
func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.store.Statistics(c.UserContext())
	if err != nil {
		h.log.Error("Failed to compute statistics: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute statistics",
		})
	}
	return c.JSON(stats)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// queryUint parses an optional numeric query parameter. Negative or
// non-numeric values are rejected rather than wrapped around.
func queryUint(c *fiber.Ctx, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key)
	}
	return uint(v), nil
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
