package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwantia/studytrack/pkg/db/models"
)

type TagInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListTags returns all tags ordered by name
func (h *Handler) ListTags(c *fiber.Ctx) error {
	tags, err := h.store.ListTags(c.UserContext())
	if err != nil {
		h.log.Error("Failed to list tags: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch tags",
		})
	}
	return c.JSON(tags)
}

// CreateTag creates a new tag
func (h *Handler) CreateTag(c *fiber.Ctx) error {
	var input TagInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if input.Color == "" {
		input.Color = models.DefaultTagColor
	}

	tag := models.Tag{
		Name:  input.Name,
		Color: input.Color,
	}

	if err := h.store.CreateTag(c.UserContext(), &tag); err != nil {
		h.log.Error("Failed to create tag: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create tag",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

// UpdateTag replaces a tag's name and color
func (h *Handler) UpdateTag(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input TagInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	tag := models.Tag{
		ID:    id,
		Name:  input.Name,
		Color: input.Color,
	}

	if err := h.store.UpdateTag(c.UserContext(), &tag); err != nil {
		if notFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Tag not found",
			})
		}
		h.log.Error("Failed to update tag %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update tag",
		})
	}

	return c.JSON(fiber.Map{
		"updated": true,
	})
}

// DeleteTag removes a tag and its associations, leaving items untouched
func (h *Handler) DeleteTag(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.store.DeleteTag(c.UserContext(), id); err != nil {
		h.log.Error("Failed to delete tag %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete tag",
		})
	}

	return c.JSON(fiber.Map{
		"deleted": true,
	})
}
