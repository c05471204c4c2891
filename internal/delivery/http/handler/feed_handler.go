package handler

import (
	"errors"
	"strconv"
	"strings"

	"design-radar/internal/delivery/http/dto"
	"design-radar/internal/delivery/http/middleware"
	"design-radar/internal/domain/job"
	"design-radar/internal/pkg/response"
	"design-radar/internal/search"
	"design-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FeedHandler struct {
	uc usecase.JobFeedUsecase
}

func NewFeedHandler(uc usecase.JobFeedUsecase) *FeedHandler {
	return &FeedHandler{uc: uc}
}

func (h *FeedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/feed", h.GetFeed)
}

func (h *FeedHandler) GetFeed(c fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "", nil, nil)
	}

	params, err := feedParamsFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.GetFeed(c.Context(), sess.UserID, params)
	if err != nil {
		return mapFeedUsecaseError(err)
	}

	return response.OK(c, dto.FromMatchedList(items))
}

func feedParamsFromQuery(c fiber.Ctx) (usecase.FeedParams, error) {
	f := search.DefaultFilters()

	f.Query = strings.TrimSpace(c.Query("query"))

	if regions := splitCSV(c.Query("regions")); len(regions) > 0 {
		f.Regions = regions
	}

	if modes := splitCSV(c.Query("remote_types")); len(modes) > 0 {
		parsed, err := parseRemoteTypes(modes)
		if err != nil {
			return usecase.FeedParams{}, err
		}
		f.RemoteTypes = parsed
	}

	if dr := strings.TrimSpace(c.Query("date_range")); dr != "" {
		parsed, err := parseDateRange(dr)
		if err != nil {
			return usecase.FeedParams{}, err
		}
		f.DateRange = parsed
	}

	var err error
	if f.TimezoneMin, err = parseQueryFloat(c, "timezone_min", f.TimezoneMin); err != nil {
		return usecase.FeedParams{}, err
	}
	if f.TimezoneMax, err = parseQueryFloat(c, "timezone_max", f.TimezoneMax); err != nil {
		return usecase.FeedParams{}, err
	}

	sort := search.SortMode(strings.TrimSpace(c.Query("sort")))
	if sort == "" {
		sort = search.SortRandom
	}

	return usecase.FeedParams{Filters: f, Sort: sort}, nil
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseRemoteTypes(values []string) ([]job.RemoteStatus, error) {
	out := make([]job.RemoteStatus, 0, len(values))
	for _, v := range values {
		switch job.RemoteStatus(v) {
		case job.RemoteStatusRemote, job.RemoteStatusHybrid, job.RemoteStatusOnSite:
			out = append(out, job.RemoteStatus(v))
		default:
			return nil, errors.New("unknown remote type: " + v)
		}
	}
	return out, nil
}

func parseDateRange(s string) (search.DateRange, error) {
	switch search.DateRange(s) {
	case search.DateRange24h, search.DateRange3d, search.DateRange7d, search.DateRange30d, search.DateRangeAll:
		return search.DateRange(s), nil
	default:
		return "", errors.New("unknown date range: " + s)
	}
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

func mapFeedUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
