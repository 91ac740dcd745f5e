package routes

import (
	"profile-service/internal/delivery/http/handler"
	"profile-service/internal/delivery/http/middleware"
	"profile-service/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	profile *handler.ProfileHandler
	ws      *ws.Handler
	auth    *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	profile *handler.ProfileHandler,
	wsHandler *ws.Handler,
	auth *middleware.AuthMiddleware,
) *Registry {
	return &Registry{health: health, profile: profile, ws: wsHandler, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		app.Get("/ws/profiles", r.ws.HandleProfilesWS)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.profile, r.auth)
}
