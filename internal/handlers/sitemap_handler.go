package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/openadjusters/directory-backend/internal/services"
)

type SitemapHandler struct {
	sitemapService *services.SitemapService
}

func NewSitemapHandler(sitemapService *services.SitemapService) *SitemapHandler {
	return &SitemapHandler{sitemapService: sitemapService}
}

func (h *SitemapHandler) Index(c *fiber.Ctx) error {
	body, err := h.sitemapService.Index(c.Context())
	if err != nil {
		slog.Error("sitemap index failed", "error", err, "path", c.Path())
		return fiber.NewError(fiber.StatusInternalServerError, "sitemap unavailable")
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(body)
}

func (h *SitemapHandler) State(c *fiber.Ctx) error {
	state := strings.TrimSuffix(c.Params("state"), ".xml")
	page, _ := strconv.Atoi(c.Query("page", "1"))

	body, err := h.sitemapService.StateSitemap(c.Context(), state, page)
	if err != nil {
		if errors.Is(err, services.ErrInvalidState) {
			return fiber.NewError(fiber.StatusNotFound, "unknown state")
		}
		slog.Error("state sitemap failed", "error", err, "state", state)
		return fiber.NewError(fiber.StatusInternalServerError, "sitemap unavailable")
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(body)
}

func (h *SitemapHandler) Cities(c *fiber.Ctx) error {
	body, err := h.sitemapService.CitiesSitemap(c.Context())
	if err != nil {
		slog.Error("cities sitemap failed", "error", err, "path", c.Path())
		return fiber.NewError(fiber.StatusInternalServerError, "sitemap unavailable")
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(body)
}
