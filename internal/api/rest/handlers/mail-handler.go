package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/helper/utils"
)

// Mailer is what the event handler needs from services.MailService.
type Mailer interface {
	SendResetPassword(to, token string, expiresAt time.Time) error
	SendOnboarded(to, name, approval string) error
}

// MailHandler turns queue events into emails. Unknown keys are skipped so
// other producers can share the topic.
type MailHandler struct {
	mailer Mailer
	log    *slog.Logger
}

func NewMailHandler(m Mailer, logger *slog.Logger) *MailHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MailHandler{mailer: m, log: logger}
}

func (h *MailHandler) HandleMessage(key string, value []byte) error {
	switch key {
	case dto.EventResetPassword:
		var event dto.ResetPasswordEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return fmt.Errorf("invalid %s payload: %w", key, err)
		}
		exp, err := time.Parse(time.RFC3339, event.ExpiresAt)
		if err != nil {
			return fmt.Errorf("invalid expires_at: %w", err)
		}
		h.logEvent(key, event.UserID, event.Email)
		return h.mailer.SendResetPassword(event.Email, event.Token, exp)

	case dto.EventProfileOnboarded:
		var event dto.ProfileOnboardedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return fmt.Errorf("invalid %s payload: %w", key, err)
		}
		h.logEvent(key, event.UserID, event.Email)
		return h.mailer.SendOnboarded(event.Email, event.FullName, event.Approval)

	default:
		h.log.Debug("ignoring event", slog.String("key", key))
		return nil
	}
}

// logEvent records the recipient's domain only, never the full address.
func (h *MailHandler) logEvent(key, userID, email string) {
	domain, _ := utils.ExtractEmailDomain(email)
	h.log.Info("mail event received",
		slog.String("key", key),
		slog.String("user_id", userID),
		slog.String("email_domain", domain))
}
