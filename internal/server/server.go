package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"recipecost-backend/internal/audit"
	"recipecost-backend/internal/config"
	"recipecost-backend/internal/recipes"
)

const infoPage = `<!DOCTYPE html>
<html>
<head><title>Recipe Costing API</title></head>
<body>
<h1>Recipe Costing API</h1>
<p>Stores bill-of-materials recipes and computes waste-adjusted manufacturing cost.</p>
<ul>
<li>GET /api/recipes</li>
<li>GET /api/recipes/:id</li>
<li>GET /api/recipes/:id/cost</li>
<li>GET /api/recipes/cost/summary</li>
<li>POST /api/recipes</li>
<li>PUT /api/recipes/:id</li>
<li>DELETE /api/recipes/:id</li>
<li>GET /api/audit-logs</li>
</ul>
</body>
</html>`

// New assembles the Fiber app: error handling, CORS, the per-path rate
// limiter on /api, and all routes. Route registration order matters where
// paths overlap: the cost routes must precede the generic /recipes/:id.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong!",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", infoHandler())
	app.Get("/healthz", healthHandler(db))
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	repo := recipes.NewRepository(db)
	recorder := audit.NewRecorder(db)

	// One shared bucket per request path, all clients together.
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				SendString(fmt.Sprintf("429 Failure – rate limit exceeded for %s", c.Path()))
		},
	}))

	api.Get("/recipes/cost/summary", recipes.CostSummaryHandler(repo))
	api.Get("/recipes/:id/cost", recipes.RecipeCostHandler(repo))
	api.Get("/recipes", recipes.ListRecipesHandler(repo))
	api.Get("/recipes/:id", recipes.GetRecipeHandler(repo))
	api.Post("/recipes", recipes.CreateRecipeHandler(repo, recorder))
	api.Put("/recipes/:id", recipes.UpdateRecipeHandler(repo, recorder))
	api.Delete("/recipes/:id", recipes.DeleteRecipeHandler(repo, recorder))

	api.Get("/audit-logs", audit.ListAuditLogsHandler(db))

	// Everything unmatched, any method
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	return app
}

// GET /
func infoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(infoPage)
	}
}

// GET /healthz
func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
