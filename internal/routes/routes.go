package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/openadjusters/directory-backend/internal/config"
	"github.com/openadjusters/directory-backend/internal/handlers"
	"github.com/openadjusters/directory-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	searchHandler *handlers.SearchHandler,
	adjusterHandler *handlers.AdjusterHandler,
	reviewHandler *handlers.ReviewHandler,
	claimHandler *handlers.ClaimHandler,
	recaptchaHandler *handlers.RecaptchaHandler,
	sitemapHandler *handlers.SitemapHandler,
) {
	// Sitemaps are crawler-facing and stay outside /api and its limiter.
	app.Get("/sitemap.xml", sitemapHandler.Index)
	app.Get("/sitemaps/states/:state", sitemapHandler.State)
	app.Get("/sitemaps/cities.xml", sitemapHandler.Cities)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Directory browsing and search
	api.Get("/search", searchHandler.Search)
	api.Get("/states/overview", adjusterHandler.StatesOverview)
	api.Get("/states/:state/adjusters", adjusterHandler.ListByState)
	api.Get("/adjusters/:slug", adjusterHandler.GetBySlug)
	api.Post("/adjusters", adjusterHandler.Create)

	// Review submission and per-review intake
	api.Post("/adjusters/:id/reviews", reviewHandler.Submit)
	api.Post("/adjusters/:id/dispute", claimHandler.Dispute)
	api.Post("/adjusters/:id/confirm", claimHandler.Confirm)
	api.Post("/reviews/:id/report", reviewHandler.Report)
	api.Post("/reviews/:id/fairness-vote", reviewHandler.VoteFairness)

	// Profile claiming + CAPTCHA forwarding
	api.Post("/claim-notification", claimHandler.Notify)
	api.Post("/verify-recaptcha", recaptchaHandler.Verify)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	// Moderation panel (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/reviews", reviewHandler.ListForModeration)
	admin.Put("/reviews/:id", reviewHandler.Action)
	admin.Get("/reports", reviewHandler.ListReports)
	admin.Get("/claims", claimHandler.List)
	admin.Put("/claims/:id", claimHandler.Action)
}
