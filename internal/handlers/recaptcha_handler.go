package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/services"
)

type RecaptchaHandler struct {
	recaptchaService *services.RecaptchaService
}

func NewRecaptchaHandler(recaptchaService *services.RecaptchaService) *RecaptchaHandler {
	return &RecaptchaHandler{recaptchaService: recaptchaService}
}

func (h *RecaptchaHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRecaptchaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.VerifyRecaptchaResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	result, err := h.recaptchaService.Verify(req.Token)
	if err != nil {
		slog.Error("recaptcha verification failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.VerifyRecaptchaResponse{
			Success: false, Error: "Verification service unavailable",
		})
	}
	return c.JSON(result)
}
