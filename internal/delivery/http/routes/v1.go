package routes

import (
	"profile-service/internal/delivery/http/handler"
	"profile-service/internal/delivery/http/middleware"
	v1 "profile-service/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, profile *handler.ProfileHandler, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	v1.Register(r, profile, auth)
}
