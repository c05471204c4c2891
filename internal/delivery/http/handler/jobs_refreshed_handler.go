package handler

import (
	"errors"
	"log"
	"strings"

	"design-radar/internal/config"
	"design-radar/internal/delivery/http/dto"
	"design-radar/internal/delivery/http/middleware"
	"design-radar/internal/domain/job"
	"design-radar/internal/pkg/response"
	"design-radar/internal/usecase"
	"design-radar/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type jobsRefreshedRequest struct {
	BatchID string              `json:"batch_id"`
	Jobs    []dto.JobIngestItem `json:"jobs"`
}

// JobsRefreshedHandler receives batches from the external job-data
// collaborator. The route is guarded by a shared internal token, not
// user auth.
type JobsRefreshedHandler struct {
	cfg    config.Config
	ingest usecase.IngestUsecase
	logger *log.Logger
}

func NewJobsRefreshedHandler(cfg config.Config, ingest usecase.IngestUsecase, logger *log.Logger) *JobsRefreshedHandler {
	return &JobsRefreshedHandler{cfg: cfg, ingest: ingest, logger: logger}
}

func (h *JobsRefreshedHandler) HandleJobsRefreshed(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("X-Internal-Token"))
	if tok == "" || tok != h.cfg.InternalToken {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req jobsRefreshedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	req.BatchID = strings.TrimSpace(req.BatchID)
	if req.BatchID == "" || len(req.Jobs) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	listings := make([]job.Listing, 0, len(req.Jobs))
	for _, item := range req.Jobs {
		listing, err := item.ToListing()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		listings = append(listings, listing)
	}

	written, err := h.ingest.RefreshJobs(c.Context(), req.BatchID, listings)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	if written > 0 {
		ws.NotifyJobsUpdated(req.BatchID, written)
		if h.logger != nil {
			h.logger.Printf("[Webhook] Jobs refreshed | batch=%s jobs=%d", req.BatchID, written)
		}
	}

	return response.OK(c, fiber.Map{
		"batch_id": req.BatchID,
		"jobs":     written,
	})
}
