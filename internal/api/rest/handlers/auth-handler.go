package handlers

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/helper/utils"
	"github.com/SundayYogurt/alumni_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	oauthStateCookie = "oauth_state"
	oauthNextCookie  = "oauth_next"
)

type AuthHandler struct {
	svc          services.AuthService
	auth         helper.Auth
	baseURL      string
	cookieSecure bool
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth, baseURL string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		svc:          svc,
		auth:         auth,
		baseURL:      strings.TrimRight(baseURL, "/"),
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Get("/google", h.GoogleLogin)
	auth.Get("/callback", h.GoogleCallback)

	auth.Get("/me", middleware.AuthMiddleware(h.auth), h.Me)
	auth.Put("/password", middleware.AuthMiddleware(h.auth), h.UpdatePassword)
}

// Register
// @Summary Sign up with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.UserSignup true "credentials"
// @Success 201 {object} dto.APISuccessSession
// @Failure 400 {object} dto.APIError
// @Failure 409 {object} dto.APIError
// @Router /api/auth/signup [post]
func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var body dto.UserSignup
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	sess, err := h.svc.SignUp(ctx.UserContext(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not create account")
	}

	// a fresh account always starts at onboarding
	sess.Redirect = middleware.OnboardingPath
	h.auth.SetSessionCookie(ctx, sess.Token, h.cookieSecure)
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, sess)
}

// Login
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.UserLogin true "credentials"
// @Success 200 {object} dto.APISuccessSession
// @Failure 401 {object} dto.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var body dto.UserLogin
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	sess, err := h.svc.SignInWithPassword(ctx.UserContext(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, services.ErrAccountSuspended):
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not sign in")
	}

	sess.Redirect = "/dashboard"
	h.auth.SetSessionCookie(ctx, sess.Token, h.cookieSecure)
	return utils.ResponseSuccess(ctx, fiber.StatusOK, sess)
}

// Logout
// @Summary Clear the session cookie
// @Tags auth
// @Success 200 {object} dto.APISuccessString
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	h.auth.ClearSessionCookie(ctx, h.cookieSecure)
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "signed out")
}

// @Summary Current session user
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} dto.CurrentUser
// @Failure 401 {object} dto.APIError
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.CurrentUser{ID: claims.UserID, Email: claims.Email})
}

// UpdatePassword
// @Summary Change the signed-in user's password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdatePasswordRequest true "new password"
// @Success 200 {object} dto.APISuccessString
// @Failure 400 {object} dto.APIError
// @Failure 401 {object} dto.APIError
// @Router /api/auth/password [put]
func (h *AuthHandler) UpdatePassword(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uuid.UUID)

	var body dto.UpdatePasswordRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid input")
	}

	if err := h.svc.UpdatePassword(ctx.UserContext(), userID, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUnauthorized):
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not update password")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Password updated")
}

// ForgotPassword always answers the same way for known and unknown emails.
// @Summary Email a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ForgotPasswordRequest true "email"
// @Success 200 {object} dto.APISuccessString
// @Failure 400 {object} dto.APIError
// @Router /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid email id")
	}

	if err := h.svc.RequestPasswordReset(ctx.UserContext(), body.Email); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid email id")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not start password reset")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "If that email is registered, a reset link is on its way")
}

// ResetPassword
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ResetPasswordRequest true "token and new password"
// @Success 200 {object} dto.APISuccessString
// @Failure 400 {object} dto.APIError
// @Router /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(ctx *fiber.Ctx) error {
	var body dto.ResetPasswordRequest
	if err := ctx.BodyParser(&body); err != nil || body.Token == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid input")
	}

	if err := h.svc.ResetPassword(ctx.UserContext(), body.Token, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword), errors.Is(err, services.ErrInvalidResetToken):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not reset password")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Password reset successfully")
}

// GoogleLogin starts the OAuth flow. next is kept in a short-lived cookie
// and checked again on the way back.
// @Summary Start Google sign-in
// @Tags auth
// @Param next query string false "page to open after sign-in"
// @Success 302
// @Failure 503 {object} dto.APIError
// @Router /api/auth/google [get]
func (h *AuthHandler) GoogleLogin(ctx *fiber.Ctx) error {
	state, err := utils.RandomToken(16)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not start google sign-in")
	}

	target, err := h.svc.GoogleAuthURL(state)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusServiceUnavailable, err.Error())
	}

	h.flowCookie(ctx, oauthStateCookie, state, 10*time.Minute)
	h.flowCookie(ctx, oauthNextCookie, helper.SafeNext(ctx.Query("next")), 10*time.Minute)
	return ctx.Redirect(target, fiber.StatusFound)
}

// GoogleCallback completes sign-in and always answers with a redirect to
// the web app: the requested page, the landing page when no code came
// back, or the login page with a message on failure.
// @Summary Google OAuth callback
// @Tags auth
// @Param code query string false "authorization code"
// @Param state query string false "anti-forgery state"
// @Success 302
// @Router /api/auth/callback [get]
func (h *AuthHandler) GoogleCallback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	next := helper.SafeNext(ctx.Cookies(oauthNextCookie))
	wantState := ctx.Cookies(oauthStateCookie)

	h.flowCookie(ctx, oauthStateCookie, "", -time.Hour)
	h.flowCookie(ctx, oauthNextCookie, "", -time.Hour)

	if code == "" {
		return ctx.Redirect(h.baseURL+"/", fiber.StatusFound)
	}
	if wantState == "" || ctx.Query("state") != wantState {
		return ctx.Redirect(h.loginFailedURL(), fiber.StatusFound)
	}

	sess, err := h.svc.ExchangeAuthCodeForSession(ctx.UserContext(), code)
	if err != nil {
		return ctx.Redirect(h.loginFailedURL(), fiber.StatusFound)
	}

	h.auth.SetSessionCookie(ctx, sess.Token, h.cookieSecure)
	return ctx.Redirect(h.baseURL+next, fiber.StatusFound)
}

func (h *AuthHandler) loginFailedURL() string {
	return h.baseURL + "/auth/login?message=" + url.QueryEscape("Google sign-in failed")
}

func (h *AuthHandler) flowCookie(ctx *fiber.Ctx, name, value string, ttl time.Duration) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/api/auth",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
