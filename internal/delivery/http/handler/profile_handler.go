package handler

import (
	"errors"

	"design-radar/internal/delivery/http/dto"
	"design-radar/internal/delivery/http/middleware"
	"design-radar/internal/pkg/response"
	"design-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileRequest struct {
	FullName            string   `json:"full_name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Location            string   `json:"location"`
	ResumeText          string   `json:"resume_text"`
	PreferredRoles      []string `json:"preferred_roles"`
	PreferredIndustries []string `json:"preferred_industries"`
	WorkStyle           string   `json:"work_style"`
	SalaryExpectation   *int     `json:"salary_expectation"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/profile")
	grp.Get("/", h.Get)
	grp.Post("/", h.Build)
	grp.Put("/", h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	p, err := h.uc.Get(c.Context(), sess.UserID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.OK(c, dto.FromProfile(p))
}

func (h *ProfileHandler) Build(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Build(c.Context(), sess.UserID, profileInputFromRequest(req))
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Created(c, dto.FromProfile(p))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), sess.UserID, profileInputFromRequest(req))
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.OK(c, dto.FromProfile(p))
}

func profileInputFromRequest(req profileRequest) usecase.ProfileInput {
	return usecase.ProfileInput{
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Location:            req.Location,
		ResumeText:          req.ResumeText,
		PreferredRoles:      req.PreferredRoles,
		PreferredIndustries: req.PreferredIndustries,
		WorkStyle:           req.WorkStyle,
		SalaryExpectation:   req.SalaryExpectation,
	}
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
