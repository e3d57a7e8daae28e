package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/services"
)

type ClaimHandler struct {
	claimService *services.ClaimService
}

func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// Notify handles POST /api/claim-notification. The response shape keeps the
// {success, id} / {success: false, error} contract the public site expects.
func (h *ClaimHandler) Notify(c *fiber.Ctx) error {
	var req dto.ClaimNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ClaimNotificationResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	claim, err := h.claimService.CreateClaimRequest(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdjusterNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ClaimNotificationResponse{
				Success: false, Error: "Adjuster not found",
			})
		case errors.Is(err, services.ErrEmailRequired), errors.Is(err, services.ErrInvalidAdjusterID):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ClaimNotificationResponse{
				Success: false, Error: err.Error(),
			})
		default:
			slog.Error("claim request failed", "error", err, "path", c.Path())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ClaimNotificationResponse{
				Success: false, Error: "Failed to submit claim request",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ClaimNotificationResponse{
		Success: true,
		ID:      claim.ID.String(),
	})
}

func (h *ClaimHandler) Dispute(c *fiber.Ctx) error {
	adjusterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid adjuster ID",
		})
	}

	var req dto.DisputeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	dispute, err := h.claimService.CreateDispute(adjusterID, &req)
	if err != nil {
		if errors.Is(err, services.ErrAdjusterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Adjuster not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dispute)
}

func (h *ClaimHandler) Confirm(c *fiber.Ctx) error {
	adjusterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid adjuster ID",
		})
	}

	var req dto.ConfirmationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	confirmation, err := h.claimService.CreateConfirmation(adjusterID, &req)
	if err != nil {
		if errors.Is(err, services.ErrAdjusterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Adjuster not found",
			})
		}
		slog.Error("confirmation failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to record confirmation",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(confirmation)
}

// Admin endpoints.

func (h *ClaimHandler) List(c *fiber.Ctx) error {
	status := c.Query("status", "")
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	claims, total, err := h.claimService.ListClaims(status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch claim requests",
		})
	}

	return c.JSON(fiber.Map{
		"claims": claims,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *ClaimHandler) Action(c *fiber.Ctx) error {
	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claim ID",
		})
	}

	var req dto.ActionClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.claimService.ActionClaim(claimID, &req); err != nil {
		if errors.Is(err, services.ErrClaimNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Claim request updated successfully"})
}
