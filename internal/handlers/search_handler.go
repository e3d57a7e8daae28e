package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /api/search?q=&state=&company=&min_rating=.
// Store failures come back as an empty list plus an error message, never a
// panic past this boundary.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	filters := services.SearchFilters{
		Query:   c.Query("q"),
		State:   c.Query("state"),
		Company: c.Query("company"),
	}
	if raw := c.Query("min_rating"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "min_rating must be a number",
			})
		}
		filters.MinRating = &min
	}

	results, err := h.searchService.Search(filters)
	if err != nil {
		if errors.Is(err, services.ErrInvalidState) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrNoFilters) {
			return c.JSON(dto.SearchResponse{
				Adjusters: []dto.SearchResult{},
				Message:   "Provide a name, state, company, or rating filter to search.",
			})
		}
		slog.Error("search failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SearchResponse{
			Adjusters: []dto.SearchResult{},
			Message:   "Search is temporarily unavailable.",
		})
	}

	return c.JSON(dto.SearchResponse{Adjusters: results})
}
