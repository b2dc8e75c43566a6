package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/SundayYogurt/alumni_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/alumni_service/internal/directory"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/helper/utils"
	"github.com/SundayYogurt/alumni_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type DirectoryHandler struct {
	svc        services.DirectoryService
	profileSvc services.ProfileService
	auth       helper.Auth
}

func NewDirectoryHandler(svc services.DirectoryService, profileSvc services.ProfileService, auth helper.Auth) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, profileSvc: profileSvc, auth: auth}
}

func (h *DirectoryHandler) SetupRoutes(app *fiber.App) {
	gate := []fiber.Handler{
		middleware.AuthMiddleware(h.auth),
		middleware.OnboardedOnly(h.profileSvc),
		h.requireAccess,
	}

	app.Get("/api/directory", append(gate, h.Search)...)
	app.Get("/ws/directory", append(gate, upgradeOnly, websocket.New(h.liveSession))...)
}

func (h *DirectoryHandler) requireAccess(ctx *fiber.Ctx) error {
	p, _ := middleware.CurrentProfile(ctx)
	if err := h.svc.Authorize(p); err != nil {
		if errors.Is(err, services.ErrNotOnboarded) {
			return utils.ResponseRedirectHint(ctx, fiber.StatusConflict, err.Error(), middleware.OnboardingPath)
		}
		return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
	}
	return ctx.Next()
}

func upgradeOnly(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Search
// @Summary Search the alumni directory
// @Description Public, approved profiles filtered by free text and exact year/degree/branch.
// @Description A failed load still answers 200 with an empty list and a message.
// @Tags directory
// @Security BearerAuth
// @Produce json
// @Param q query string false "free text"
// @Param year query int false "graduation year"
// @Param degree query string false "degree"
// @Param branch query string false "branch"
// @Success 200 {object} dto.APISuccessDirectory
// @Failure 403 {object} dto.APIError
// @Failure 409 {object} dto.APIOnboardingRequired
// @Router /api/directory [get]
func (h *DirectoryHandler) Search(ctx *fiber.Ctx) error {
	st := directory.State{
		Query:  strings.TrimSpace(ctx.Query("q")),
		Year:   parseYear(ctx.Query("year")),
		Degree: anyToEmpty(ctx.Query("degree")),
		Branch: anyToEmpty(ctx.Query("branch")),
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, h.svc.Search(ctx.UserContext(), st))
}

// liveSession is one mounted directory view. It streams a "loading" frame,
// then a "results" frame after the load and after every committed change.
// Search keystrokes are debounced; the dropdowns apply at once.
// @Summary Live directory view over a websocket
// @Description Client frames: {"type":"search"|"year"|"degree"|"branch","value":"..."}.
// @Description Server frames: {"type":"loading"}, {"type":"results","data":...}, {"type":"error","error":"..."}.
// @Tags directory
// @Security BearerAuth
// @Success 101
// @Failure 403 {object} dto.APIError
// @Failure 409 {object} dto.APIOnboardingRequired
// @Failure 426 {object} dto.APIError
// @Router /ws/directory [get]
func (h *DirectoryHandler) liveSession(c *websocket.Conn) {
	var writeMu sync.Mutex
	send := func(f dto.DirectoryFrame) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = c.WriteJSON(f)
	}

	sess := h.svc.NewSession(func(s directory.Snapshot) {
		if s.Loading {
			send(dto.DirectoryFrame{Type: "loading"})
			return
		}
		send(dto.DirectoryFrame{Type: "results", Data: dto.NewDirectoryResults(s)})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess.Start(ctx)
	defer sess.Close()

	for {
		var msg dto.DirectoryMessage
		if err := c.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "search":
			sess.Search(msg.Value)
		case "year":
			sess.SetYear(parseYear(msg.Value))
		case "degree":
			sess.SetDegree(anyToEmpty(msg.Value))
		case "branch":
			sess.SetBranch(anyToEmpty(msg.Value))
		default:
			send(dto.DirectoryFrame{Type: "error", Error: "unknown message type"})
		}
	}
}

// parseYear maps "", "any" and junk to 0, the no-filter value.
func parseYear(raw string) int {
	y, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || y < 0 {
		return 0
	}
	return y
}

func anyToEmpty(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "any") {
		return ""
	}
	return raw
}
