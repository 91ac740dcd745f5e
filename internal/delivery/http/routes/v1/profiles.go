package v1

import (
	"profile-service/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterProfiles(r fiber.Router, profileHandler *handler.ProfileHandler) {
	if r == nil {
		return
	}
	if profileHandler == nil {
		return
	}

	profileHandler.RegisterRoutes(r)
}
