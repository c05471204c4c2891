package handler

import (
	"errors"

	"design-radar/internal/delivery/http/dto"
	"design-radar/internal/delivery/http/middleware"
	"design-radar/internal/pkg/response"
	"design-radar/internal/search"
	"design-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SavedSearchHandler struct {
	uc usecase.SavedSearchUsecase
}

type savedSearchRequest struct {
	Name     string         `json:"name"`
	Filters  search.Filters `json:"filters"`
	SortMode string         `json:"sort_mode"`
}

func NewSavedSearchHandler(uc usecase.SavedSearchUsecase) *SavedSearchHandler {
	return &SavedSearchHandler{uc: uc}
}

func (h *SavedSearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/searches")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Delete("/:id", h.Delete)
}

func (h *SavedSearchHandler) List(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	items, err := h.uc.List(c.Context(), sess.UserID)
	if err != nil {
		return mapSavedSearchUsecaseError(err)
	}

	return response.OK(c, dto.FromSavedSearchList(items))
}

func (h *SavedSearchHandler) Create(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	var req savedSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), sess.UserID, usecase.SavedSearchInput{
		Name:     req.Name,
		Filters:  req.Filters,
		SortMode: search.SortMode(req.SortMode),
	})
	if err != nil {
		return mapSavedSearchUsecaseError(err)
	}

	return response.Created(c, dto.FromSavedSearch(created))
}

func (h *SavedSearchHandler) Delete(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Delete(c.Context(), sess.UserID, id); err != nil {
		return mapSavedSearchUsecaseError(err)
	}

	return response.OK(c, nil)
}

func mapSavedSearchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrSavedSearchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Saved search not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
