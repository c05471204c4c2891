package routes

import (
	"design-radar/internal/delivery/http/handler"
	"design-radar/internal/delivery/http/middleware"
	"design-radar/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler onto the fiber app. Handlers are built by
// the app container; the registry only decides paths and guards.
type Registry struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Feed          *handler.FeedHandler
	Match         *handler.MatchHandler
	Recommended   *handler.RecommendationHandler
	Filters       *handler.FiltersHandler
	Profile       *handler.ProfileHandler
	SavedSearches *handler.SavedSearchHandler
	JobsRefreshed *handler.JobsRefreshedHandler
	WS            *ws.Handler

	AuthMiddleware *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))

	app.Post("/internal/jobs/refreshed", r.JobsRefreshed.HandleJobsRefreshed)
	app.Get("/ws/jobs", r.WS.HandleJobsWS)
}

func (r *Registry) registerV1(v1 fiber.Router) {
	authGroup := v1.Group("/auth")
	r.Auth.RegisterRoutes(authGroup)

	protected := v1.Group("", r.AuthMiddleware.Middleware())

	jobsGroup := protected.Group("/jobs")
	r.Feed.RegisterRoutes(jobsGroup)
	r.Recommended.RegisterRoutes(jobsGroup)
	r.Match.RegisterRoutes(jobsGroup)

	r.Filters.RegisterRoutes(protected)
	r.Profile.RegisterRoutes(protected)
	r.SavedSearches.RegisterRoutes(protected)
}
