package handler

import (
	"design-radar/internal/delivery/http/middleware"
	"design-radar/internal/pkg/response"
	"design-radar/internal/search"
	"design-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FiltersHandler struct {
	profiles usecase.ProfileUsecase
}

func NewFiltersHandler(profiles usecase.ProfileUsecase) *FiltersHandler {
	return &FiltersHandler{profiles: profiles}
}

func (h *FiltersHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/filters")
	grp.Get("/presets", h.GetPresets)
	grp.Get("/suggestions", h.GetSuggestions)
	grp.Get("/defaults", h.GetDefaults)
}

func (h *FiltersHandler) GetPresets(c fiber.Ctx) error {
	return response.OK(c, search.Presets())
}

func (h *FiltersHandler) GetSuggestions(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	sug, err := h.profiles.Suggestions(c.Context(), sess.UserID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.OK(c, sug)
}

func (h *FiltersHandler) GetDefaults(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	f, err := h.profiles.DefaultFilters(c.Context(), sess.UserID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.OK(c, f)
}
