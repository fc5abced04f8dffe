package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Vincent-WangCH/Project-list-backend/internal/config"
	"github.com/Vincent-WangCH/Project-list-backend/internal/http/handlers"
	"github.com/Vincent-WangCH/Project-list-backend/internal/repos"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatalf("[startup] could not reach database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(cfg.IsProduction()),
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	handlers.Register(app, handlers.NewDeps(db))

	// Drain in-flight requests on SIGINT/SIGTERM; Listen returns once the
	// shutdown (or its deadline) completes.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		s := <-sig
		log.Printf("[shutdown] received %s, draining connections", s)
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Printf("[shutdown] forced exit: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		db.Close()
		log.Fatal(err)
	}

	if err := db.Close(); err != nil {
		log.Printf("[shutdown] closing database: %v", err)
	}
	log.Println("[shutdown] complete")
}
