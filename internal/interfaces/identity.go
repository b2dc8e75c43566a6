package interfaces

import (
	"context"

	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/google/uuid"
)

// IdentityProvider owns credentials and sessions. Every profile-bearing
// route is gated on GetCurrentUser.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*dto.SessionResponse, error)
	SignInWithPassword(ctx context.Context, email, password string) (*dto.SessionResponse, error)
	ExchangeAuthCodeForSession(ctx context.Context, code string) (*dto.SessionResponse, error)
	GetCurrentUser(token string) (*dto.CurrentUser, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}
