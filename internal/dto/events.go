package dto

const (
	EventResetPassword    = "user.reset_password"
	EventProfileOnboarded = "profile.onboarded"
)

type ResetPasswordEvent struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type ProfileOnboardedEvent struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Approval string `json:"approval"`
}
