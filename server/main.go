//go:build !js
// +build !js

// Command server hosts the synesthetic demo page, the GopherJS bundle and the
// effective configuration during development.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/simukka/synesthetic/config"
)

//go:embed index.html
var indexHTML []byte

func newApp(cfg *config.Config, staticDir string, verbose bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "synesthetic",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if verbose {
		app.Use(logger.New())
	}

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(indexHTML)
	})

	// Compiled bundle (gopherjs build -o synesthetic.js) and media
	app.Static("/static", staticDir)

	api := app.Group("/api")
	api.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(cfg)
	})
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	return app
}

func main() {
	port := flag.Int("port", 8080, "HTTP port")
	staticDir := flag.String("static", "./static", "directory with synesthetic.js and media")
	configPath := flag.String("config", "", "YAML config overlay")
	verbose := flag.Bool("v", false, "log every request")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	app := newApp(cfg, *staticDir, *verbose)

	go func() {
		addr := fmt.Sprintf(":%d", *port)
		log.Printf("Synesthetic server starting on http://localhost%s", addr)
		log.Printf("Serving static files from: %s", *staticDir)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
