package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwantia/studytrack/pkg/db/models"
)

type SessionInput struct {
	Date            string `json:"date"` // YYYY-MM-DD, defaults to today
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

// ListSessions returns the study sessions logged for an item
func (h *Handler) ListSessions(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	sessions, err := h.store.ListSessions(c.UserContext(), id)
	if err != nil {
		h.log.Error("Failed to list sessions for item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch sessions",
		})
	}
	return c.JSON(sessions)
}

// LogSession records a study sitting against an item
func (h *Handler) LogSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input SessionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.DurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Duration must be positive",
		})
	}

	// Item must exist; sessions only cascade away with their item
	if _, _, err := h.store.GetItem(c.UserContext(), id); err != nil {
		if notFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		h.log.Error("Failed to fetch item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log session",
		})
	}

	session := models.StudySession{
		StudyItemID:     id,
		Date:            input.Date,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
	}

	if err := h.store.LogSession(c.UserContext(), &session); err != nil {
		h.log.Error("Failed to log session for item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}
