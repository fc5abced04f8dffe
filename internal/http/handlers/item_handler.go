package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vincent-WangCH/Project-list-backend/internal/domain"
	applog "github.com/Vincent-WangCH/Project-list-backend/internal/log"
	"github.com/Vincent-WangCH/Project-list-backend/internal/services"
	"github.com/Vincent-WangCH/Project-list-backend/internal/validate"
)

type ItemHandler struct {
	Items *services.ItemService
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.Items.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	it, err := h.Items.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(it)
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	p, errMsg := parsePatch(c)
	if errMsg != "" {
		applog.Security(c, "validation.fail", map[string]any{"reason": errMsg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	it, err := h.Items.Create(c.Context(), p)
	if err != nil {
		return err
	}
	applog.Audit(c, "item.create", map[string]any{"item_id": it.ID})
	return c.Status(fiber.StatusCreated).JSON(it)
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	p, errMsg := parsePatch(c)
	if errMsg != "" {
		applog.Security(c, "validation.fail", map[string]any{"reason": errMsg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	if p.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least one field (name, description, quantity, unitPrice, category, date, ownerID) must be provided",
		})
	}
	it, err := h.Items.Update(c.Context(), id, p)
	if err != nil {
		return err
	}
	applog.Audit(c, "item.update", map[string]any{"item_id": it.ID})
	return c.JSON(it)
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	it, err := h.Items.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	applog.Audit(c, "item.delete", map[string]any{"item_id": it.ID})
	return c.JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}

// parsePatch decodes and validates the request body. Each supplied field is
// checked independently; absent fields are left nil. An empty body is a
// valid empty patch (create applies all defaults from it).
func parsePatch(c *fiber.Ctx) (domain.ItemPatch, string) {
	var p domain.ItemPatch
	if len(c.Body()) == 0 {
		return p, ""
	}
	if err := c.BodyParser(&p); err != nil {
		return p, "Invalid JSON body"
	}

	if p.Name != nil {
		v, ok := validate.Text(*p.Name)
		if !ok {
			return p, "Field 'name' must be a non-empty string"
		}
		*p.Name = v
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return p, "Field 'quantity' must be a non-negative integer"
	}
	if p.UnitPrice != nil && *p.UnitPrice < 0 {
		return p, "Field 'unitPrice' must be a non-negative number"
	}
	if p.Category != nil {
		v, ok := validate.Text(*p.Category)
		if !ok {
			return p, "Field 'category' must be a non-empty string"
		}
		*p.Category = v
	}
	if p.OwnerID != nil {
		v, ok := validate.Text(*p.OwnerID)
		if !ok {
			return p, "Field 'ownerID' must be a non-empty string"
		}
		*p.OwnerID = v
	}
	if p.Date != nil {
		t, ok := validate.Date(*p.Date)
		if !ok {
			return p, "Field 'date' must be a valid RFC 3339 or YYYY-MM-DD date"
		}
		*p.Date = t.UTC().Format(time.RFC3339)
	}
	return p, ""
}
