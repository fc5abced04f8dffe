package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Vincent-WangCH/Project-list-backend/internal/http/handlers"
	"github.com/Vincent-WangCH/Project-list-backend/internal/repos"
)

func newErrorApp(production bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(production)})
	app.Use(requestid.New())

	app.Get("/not-found", func(c *fiber.Ctx) error { return repos.ErrNotFound })
	app.Get("/exists", func(c *fiber.Ctx) error { return repos.ErrAlreadyExists })
	app.Get("/fk", func(c *fiber.Ctx) error { return repos.ErrInvalidReference })
	app.Get("/check", func(c *fiber.Ctx) error { return repos.ErrConstraint })
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("db timeout: secret trace")
	})
	return app
}

func TestErrorTranslationMapping(t *testing.T) {
	app := newErrorApp(false)

	cases := []struct {
		path   string
		status int
		msg    string
	}{
		{"/not-found", 404, "Item not found"},
		{"/exists", 400, "Item already exists"},
		{"/fk", 400, "Invalid reference"},
		{"/check", 400, "Invalid item data"},
		{"/boom", 500, "Internal server error"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		if resp.StatusCode != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, resp.StatusCode)
		}
		m := decodeMap(t, resp)
		if m["error"] != tc.msg {
			t.Fatalf("%s: expected message %q, got %v", tc.path, tc.msg, m["error"])
		}
	}
}

func TestErrorDetailsOnlyOutsideProduction(t *testing.T) {
	dev := newErrorApp(false)
	resp, err := dev.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatal(err)
	}
	m := decodeMap(t, resp)
	if m["details"] != "db timeout: secret trace" {
		t.Fatalf("dev mode should expose details, got %v", m["details"])
	}
	if s, _ := m["stack"].(string); s == "" {
		t.Fatal("dev mode should expose a stack trace")
	}

	prod := newErrorApp(true)
	resp, err = prod.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatal(err)
	}
	m = decodeMap(t, resp)
	if _, ok := m["details"]; ok {
		t.Fatal("production response leaked details")
	}
	if _, ok := m["stack"]; ok {
		t.Fatal("production response leaked a stack trace")
	}
	if m["error"] != "Internal server error" {
		t.Fatalf("production message: %v", m["error"])
	}
}

func TestFiberErrorsKeepTheirStatus(t *testing.T) {
	app := newErrorApp(true)
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", resp.StatusCode)
	}
}
