package middleware

import (
	"errors"
	"strings"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/helper/utils"
	"github.com/SundayYogurt/alumni_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const OnboardingPath = "/onboarding"

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies(helper.SessionCookie))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}

		ctx.Locals("userID", user.UserID)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// OnboardedOnly loads the caller's profile into ctx.Locals("profile") and
// sends anyone who has not finished onboarding there instead.
func OnboardedOnly(profileSvc services.ProfileService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID, ok := ctx.Locals("userID").(uuid.UUID)
		if !ok || userID == uuid.Nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		p, err := profileSvc.RequireOnboarded(ctx.UserContext(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNotOnboarded) {
				return utils.ResponseRedirectHint(ctx, fiber.StatusConflict, err.Error(), OnboardingPath)
			}
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not load profile")
		}

		ctx.Locals("profile", p)
		return ctx.Next()
	}
}

// CurrentProfile reads what OnboardedOnly stored.
func CurrentProfile(ctx *fiber.Ctx) (*domain.Profile, bool) {
	p, ok := ctx.Locals("profile").(*domain.Profile)
	return p, ok && p != nil
}
