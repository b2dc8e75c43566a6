package handlers

import (
	"errors"

	"github.com/SundayYogurt/alumni_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/helper/utils"
	"github.com/SundayYogurt/alumni_service/internal/services"
	pkgutils "github.com/SundayYogurt/alumni_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	svc  services.ProfileService
	auth helper.Auth
}

func NewProfileHandler(svc services.ProfileService, auth helper.Auth) *ProfileHandler {
	return &ProfileHandler{svc: svc, auth: auth}
}

func (h *ProfileHandler) SetupRoutes(app *fiber.App) {
	profile := app.Group("/api/profile", middleware.AuthMiddleware(h.auth))

	profile.Get("/me", h.GetProfile)
	profile.Put("/", h.SubmitOnboarding)
	profile.Post("/avatar", h.UploadAvatar)
}

// GetProfile
// @Summary Own profile with completeness and approval status
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APISuccessProfile
// @Failure 404 {object} dto.APIError
// @Router /api/profile/me [get]
func (h *ProfileHandler) GetProfile(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uuid.UUID)

	p, err := h.svc.GetProfile(ctx.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return utils.ResponseRedirectHint(ctx, fiber.StatusNotFound, err.Error(), middleware.OnboardingPath)
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not load profile")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, services.Describe(p))
}

// SubmitOnboarding
// @Summary Save the onboarding / edit-profile form
// @Description Replaces every editable field. approval is never changed here.
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.OnboardingRequest true "profile"
// @Success 200 {object} dto.APISuccessProfile
// @Failure 422 {object} dto.APIValidationError
// @Router /api/profile [put]
func (h *ProfileHandler) SubmitOnboarding(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var body dto.OnboardingRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	p, err := h.svc.SubmitOnboarding(ctx.UserContext(), claims.UserID, claims.Email, body)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return utils.ResponseValidation(ctx, verr.Fields)
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Could not save profile")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, services.Describe(p))
}

// UploadAvatar
// @Summary Upload a profile picture
// @Tags profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "jpg/jpeg/png/webp, max 5MB"
// @Success 200 {object} dto.APISuccessAvatar
// @Failure 400 {object} dto.APIError
// @Router /api/profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uuid.UUID)

	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}
	if file.Size > services.MaxAvatarBytes {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, services.ErrAvatarTooLarge.Error())
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	data, err := pkgutils.ReadAllLimit(f, services.MaxAvatarBytes)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, services.ErrAvatarTooLarge.Error())
	}

	url, err := h.svc.UploadAvatar(ctx.UserContext(), userID, file.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAvatar), errors.Is(err, services.ErrAvatarTooLarge):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUploadUnavailable):
			return utils.ResponseError(ctx, fiber.StatusServiceUnavailable, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusBadGateway, "Failed to upload avatar")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.AvatarResponse{URL: url})
}
