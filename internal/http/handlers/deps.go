package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/Vincent-WangCH/Project-list-backend/internal/repos"
	"github.com/Vincent-WangCH/Project-list-backend/internal/services"
)

type Deps struct {
	ItemHandler *ItemHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	itemRepo := repos.NewItemRepo(db)
	itemSvc := services.NewItemService(itemRepo)
	return &Deps{
		ItemHandler: &ItemHandler{Items: itemSvc},
	}
}

// Register mounts every route, including the health probe and the JSON 404
// catch-all, so main and the tests serve the identical surface.
func Register(app *fiber.App, d *Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Get("/items", d.ItemHandler.List)
	app.Get("/items/:id", d.ItemHandler.Get)
	app.Post("/items", d.ItemHandler.Create)
	app.Put("/items/:id", d.ItemHandler.Update)
	app.Delete("/items/:id", d.ItemHandler.Delete)

	// Must stay last.
	app.Use(NotFoundHandler)
}
