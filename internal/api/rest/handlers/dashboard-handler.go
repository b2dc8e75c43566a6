package handlers

import (
	"github.com/SundayYogurt/alumni_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/helper/utils"
	"github.com/SundayYogurt/alumni_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	svc        services.DashboardService
	profileSvc services.ProfileService
	auth       helper.Auth
}

func NewDashboardHandler(svc services.DashboardService, profileSvc services.ProfileService, auth helper.Auth) *DashboardHandler {
	return &DashboardHandler{svc: svc, profileSvc: profileSvc, auth: auth}
}

func (h *DashboardHandler) SetupRoutes(app *fiber.App) {
	app.Get("/api/dashboard",
		middleware.AuthMiddleware(h.auth),
		middleware.OnboardedOnly(h.profileSvc),
		h.Dashboard,
	)
}

// Dashboard
// @Summary Signed-in home: profile summary plus events, jobs and people
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APISuccessDashboard
// @Failure 409 {object} dto.APIOnboardingRequired
// @Router /api/dashboard [get]
func (h *DashboardHandler) Dashboard(ctx *fiber.Ctx) error {
	p, ok := middleware.CurrentProfile(ctx)
	if !ok {
		return utils.ResponseRedirectHint(ctx, fiber.StatusConflict, "onboarding required", middleware.OnboardingPath)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, h.svc.Build(ctx.UserContext(), p))
}
