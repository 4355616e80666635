package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwantia/studytrack/pkg/db/models"
)

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsDefault   bool   `json:"is_default"`
}

// ListCategories returns all categories ordered by name
func (h *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.store.ListCategories(c.UserContext())
	if err != nil {
		h.log.Error("Failed to list categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch categories",
		})
	}
	return c.JSON(categories)
}

// CreateCategory creates a new category; flagging it default clears the
// flag everywhere else
func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	var input CategoryInput
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
		input.Color = models.DefaultCategoryColor
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		IsDefault:   input.IsDefault,
	}

	if err := h.store.CreateCategory(c.UserContext(), &category); err != nil {
		h.log.Error("Failed to create category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory replaces a category's fields
func (h *Handler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input CategoryInput
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

	category := models.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		IsDefault:   input.IsDefault,
	}

	if err := h.store.UpdateCategory(c.UserContext(), &category); err != nil {
		if notFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		h.log.Error("Failed to update category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"updated": true,
	})
}

// DeleteCategory removes a category. Items referencing it keep existing
// with a null category; the response reports how many were affected so a
// GUI can warn the user up front via a prior GET.
func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	affected, err := h.store.CountItemsInCategory(c.UserContext(), id)
	if err != nil {
		h.log.Error("Failed to count items for category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	if err := h.store.DeleteCategory(c.UserContext(), id); err != nil {
		h.log.Error("Failed to delete category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	return c.JSON(fiber.Map{
		"deleted":        true,
		"items_affected": affected,
	})
}
