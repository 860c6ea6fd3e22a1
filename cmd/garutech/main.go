package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"garutech/internal/catalog"
	"garutech/internal/config"
	"garutech/internal/http/handlers"
	applog "garutech/internal/log"
	"garutech/internal/repos"
	"garutech/internal/services"
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

	// Catalog wiring: document repo feeds the store, engine derives views.
	prodRepo := repos.NewProductRepo(db)
	store := catalog.NewStore(prodRepo)
	if err := store.Refetch(context.Background()); err != nil {
		// Start anyway; the storefront surfaces the error state and an admin
		// refresh can recover without a restart.
		log.Printf("[warn] initial catalog fetch failed: %v", err)
	}
	engine := catalog.NewEngine(store, catalog.DefaultIndex())

	// Auth wiring (admin surface only)
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and reply with a friendly message; never leak internals
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, cfg, engine, prodRepo)

	// ---------- Catalog (read-only) ----------
	api := app.Group("/api/v1")
	api.Get("/products", deps.CatalogHandler.Products)
	api.Get("/products/featured", deps.CatalogHandler.Featured)
	api.Get("/products/:id", deps.CatalogHandler.Product)
	api.Get("/products/:id/related", deps.CatalogHandler.Related)
	api.Get("/availability", deps.CatalogHandler.Availability)
	api.Get("/categories", deps.CatalogHandler.Categories)
	api.Get("/categories/:id", deps.CatalogHandler.Category)
	api.Get("/categories/:id/subcategories", deps.CatalogHandler.SubCategories)
	api.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.SearchHandler.Search)

	// ---------- Cart & checkout ----------
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Post("/cart/qty", deps.CartHandler.SetQty)
	api.Post("/orders", deps.OrderHandler.Place)
	api.Get("/orders/:id", deps.OrderHandler.View)

	// ---------- Contact (throttled) ----------
	api.Post("/contact", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.contact.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.ContactHandler.Submit)

	// ---------- Auth (login throttled) ----------
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// ---------- Admin ----------
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Put("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)
	admin.Post("/products/:id/stock", deps.AdminHandler.UpdateStock)
	admin.Post("/catalog/refresh", deps.AdminHandler.RefreshCatalog)
	admin.Get("/orders", deps.AdminHandler.ListOrders)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/contacts", deps.AdminHandler.ListContacts)
	admin.Post("/contacts/:id/status", deps.AdminHandler.UpdateContactStatus)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
