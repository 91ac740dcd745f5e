package handler

import (
	"errors"
	"strconv"
	"strings"

	"profile-service/internal/delivery/http/dto"
	"profile-service/internal/delivery/http/middleware"
	"profile-service/internal/domain/profile"
	"profile-service/internal/pkg/response"
	"profile-service/internal/usecase"
	ucprofile "profile-service/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	// static segments first so they are not captured by :id
	r.Get("/likable", h.GetLikable)
	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.UpdateByID)
	r.Get("/:id/picture", h.GetPicture)
}

func (h *ProfileHandler) GetLikable(c fiber.Ctx) error {
	username, ok := middleware.Username(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	out, err := h.uc.GetLikableProfiles(c.Context(), username)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLikableProfilesResponse(out))
}

func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	username, ok := middleware.Username(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetMyProfile(c.Context(), username)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) UpdateMe(c fiber.Ctx) error {
	username, ok := middleware.Username(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	req, err := bindUpdate(c)
	if err != nil {
		return err
	}

	p, err := h.uc.UpdateProfile(c.Context(), username, req.Submission())
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) GetByID(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	p, err := h.uc.FindProfileByIdentifier(c.Context(), id)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) UpdateByID(c fiber.Ctx) error {
	username, ok := middleware.Username(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := pathID(c)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	req, err := bindUpdate(c)
	if err != nil {
		return err
	}

	p, err := h.uc.UpdateProfileByID(c.Context(), username, id, req.Submission())
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) GetPicture(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	rc, err := h.uc.OpenPicture(c.Context(), id)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
	// fasthttp closes the stream once the body is written
	return c.SendStream(rc)
}

func bindUpdate(c fiber.Ctx) (dto.UpdateProfileRequest, error) {
	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return req, middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if !req.HasChanges() {
		return req, middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}
	return req, nil
}

func pathID(c fiber.Ctx) (int64, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, profile.NewIdentifierError(raw)
	}
	return id, nil
}

func mapProfileUsecaseError(err error) error {
	var idErr *profile.IdentifierError
	switch {
	case errors.As(err, &idErr):
		return middleware.NewAppError(fiber.StatusBadRequest, idErr.Error(), nil, err)
	case errors.Is(err, profile.ErrIdentifierMissing):
		return middleware.NewAppError(fiber.StatusBadRequest, "Profile identifier missing", nil, err)
	case errors.Is(err, ucprofile.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, profile.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Cannot modify another user's profile", nil, err)
	case errors.Is(err, profile.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, profile.ErrPictureNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Picture not found", nil, err)
	case errors.Is(err, profile.ErrInvalidPicture):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Picture must be base64 encoded JPEG", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
