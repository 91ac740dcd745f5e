package v1

import (
	"profile-service/internal/delivery/http/handler"
	"profile-service/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, profileHandler *handler.ProfileHandler, auth *middleware.AuthMiddleware) {
	if r == nil || auth == nil {
		return
	}

	protected := r.Group("", auth.Middleware())
	RegisterProfiles(protected.Group("/profiles"), profileHandler)
}
