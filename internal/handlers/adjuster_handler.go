package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/services"
)

type AdjusterHandler struct {
	adjusterService  *services.AdjusterService
	directoryService *services.DirectoryService
}

func NewAdjusterHandler(adjusterService *services.AdjusterService, directoryService *services.DirectoryService) *AdjusterHandler {
	return &AdjusterHandler{
		adjusterService:  adjusterService,
		directoryService: directoryService,
	}
}

func (h *AdjusterHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAdjusterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	adjuster, err := h.adjusterService.CreateProfile(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlugExists):
			// Collision gets its own status and message so the client can
			// point the user at the existing profile.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrMissingName), errors.Is(err, services.ErrInvalidState):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			slog.Error("profile creation failed", "error", err, "path", c.Path())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create profile",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(adjuster)
}

func (h *AdjusterHandler) GetBySlug(c *fiber.Ctx) error {
	adjuster, err := h.adjusterService.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrAdjusterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Adjuster not found",
			})
		}
		slog.Error("profile lookup failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}
	return c.JSON(adjuster)
}

func (h *AdjusterHandler) ListByState(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	adjusters, total, err := h.directoryService.ListByState(c.Params("state"), limit, offset)
	if err != nil {
		if errors.Is(err, services.ErrInvalidState) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown state",
			})
		}
		slog.Error("state listing failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load state listings",
		})
	}

	return c.JSON(fiber.Map{
		"adjusters": adjusters,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *AdjusterHandler) StatesOverview(c *fiber.Ctx) error {
	overview, err := h.directoryService.StatesOverview(c.Context())
	if err != nil {
		slog.Error("states overview failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load states overview",
		})
	}
	return c.JSON(fiber.Map{"states": overview})
}
