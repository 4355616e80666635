package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwantia/studytrack/pkg/db/models"
	"github.com/mwantia/studytrack/pkg/db/store"
)

// ItemInput carries the full set of mutable item fields plus the tag ids to
// associate. Create and update both take the complete record. Status and
// priority are pointers so an explicit zero value is distinguishable from an
// absent field: absent defaults, explicit out-of-range values reach the
// database constraints and fail there.
type ItemInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	Rating      *int    `json:"rating"`
	Status      *string `json:"status"`
	Deadline    *string `json:"deadline"` // YYYY-MM-DD
	HoursSpent  float64 `json:"hours_spent"`
	Priority    *int    `json:"priority"`
	Tags        []uint  `json:"tags"`
}

func (in *ItemInput) toModel() *models.StudyItem {
	status := models.StatusPlanned
	if in.Status != nil {
		status = *in.Status
	}
	priority := 3
	if in.Priority != nil {
		priority = *in.Priority
	}

	return &models.StudyItem{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Rating:      in.Rating,
		Status:      status,
		Deadline:    in.Deadline,
		HoursSpent:  in.HoursSpent,
		Priority:    priority,
	}
}

// ListItems returns every item with category and tag information
func (h *Handler) ListItems(c *fiber.Ctx) error {
	items, err := h.store.ListItems(c.UserContext())
	if err != nil {
		h.log.Error("Failed to list items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch items",
		})
	}
	return c.JSON(items)
}

// CreateItem creates a new study item with its tag associations
func (h *Handler) CreateItem(c *fiber.Ctx) error {
	var input ItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	item := input.toModel()
	if err := h.store.CreateItem(c.UserContext(), item, input.Tags); err != nil {
		h.log.Error("Failed to create item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetItem returns a single item and its tags
func (h *Handler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, tags, err := h.store.GetItem(c.UserContext(), id)
	if err != nil {
		if notFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		h.log.Error("Failed to fetch item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch item",
		})
	}

	return c.JSON(fiber.Map{
		"item": item,
		"tags": tags,
	})
}

// UpdateItem replaces an item's fields and tag associations
func (h *Handler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input ItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	if err := h.store.UpdateItem(c.UserContext(), id, input.toModel(), input.Tags); err != nil {
		if notFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		h.log.Error("Failed to update item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update item",
		})
	}

	return c.JSON(fiber.Map{
		"updated": true,
	})
}

// DeleteItem removes an item; its associations and sessions cascade
func (h *Handler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.store.DeleteItem(c.UserContext(), id); err != nil {
		h.log.Error("Failed to delete item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete item",
		})
	}

	return c.JSON(fiber.Map{
		"deleted": true,
	})
}

// SearchItems filters items by query, status, category and tag
func (h *Handler) SearchItems(c *fiber.Ctx) error {
	categoryID, err := queryUint(c, "category_id")
	if err != nil {
		return err
	}
	tagID, err := queryUint(c, "tag_id")
	if err != nil {
		return err
	}

	filter := store.SearchFilter{
		Query:      c.Query("q"),
		Status:     c.Query("status"),
		CategoryID: categoryID,
		TagID:      tagID,
	}

	items, err := h.store.SearchItems(c.UserContext(), filter)
	if err != nil {
		h.log.Error("Failed to search items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search items",
		})
	}
	return c.JSON(items)
}
