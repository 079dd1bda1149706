package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"ventapos/internal/config"
	"ventapos/internal/http/handlers"
	applog "ventapos/internal/log"
	"ventapos/internal/repos"
	"ventapos/internal/services"
	"ventapos/internal/submit"
)

func main() {
	cfg := config.Load()

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
		log.Fatal(err)
	}

	// Submission collaborator: broker when configured, log sink otherwise.
	var submitter services.Submitter = submit.LogPublisher{}
	if cfg.AMQPURL != "" {
		pub, err := submit.DialAMQP(cfg.AMQPURL, cfg.SubmitQueue)
		if err != nil {
			log.Fatal(err)
		}
		defer pub.Close()
		submitter = pub
	}

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	deps := handlers.NewDeps(db, authSvc, submitter)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong, please try again"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	app.Post("/api/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)
	app.Post("/api/logout", deps.AuthHandler.Logout)

	api := app.Group("/api", handlers.RequireUser(authSvc))
	api.Get("/products", deps.CatalogHandler.Products)
	api.Get("/customers", deps.CatalogHandler.Customers)

	reg := api.Group("/register")
	reg.Get("/", deps.RegisterHandler.State)
	reg.Post("/items", deps.RegisterHandler.AddItem)
	reg.Post("/items/decrease", deps.RegisterHandler.DecreaseItem)
	reg.Put("/items/:id", deps.RegisterHandler.SetQuantity)
	reg.Delete("/items/:id", deps.RegisterHandler.RemoveItem)
	reg.Put("/customer", deps.RegisterHandler.SelectCustomer)
	reg.Put("/sale-type", deps.RegisterHandler.SetSaleType)
	reg.Put("/form", deps.RegisterHandler.UpdateForm)
	reg.Post("/pay", deps.RegisterHandler.Pay)
	reg.Post("/cancel", deps.RegisterHandler.Cancel)
	reg.Post("/cancel/resolve", deps.RegisterHandler.ResolveCancel)
	reg.Post("/confirm", deps.RegisterHandler.Confirm)
	reg.Post("/draft", deps.RegisterHandler.SaveDraft)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
