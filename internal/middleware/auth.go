package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/openadjusters/directory-backend/internal/config"
	"github.com/openadjusters/directory-backend/internal/dto"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		// Requests carrying the service admin token skip JWT entirely;
		// AdminRequired re-checks the token before granting access.
		Filter: func(c *fiber.Ctx) bool {
			return cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken
		},
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
