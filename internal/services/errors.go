package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account is not active")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
	ErrGoogleUnavailable  = errors.New("google sign-in is not configured")
	ErrGoogleUnverified   = errors.New("google account email is not verified")

	ErrProfileNotFound   = errors.New("profile not found")
	ErrNotOnboarded      = errors.New("onboarding required")
	ErrDirectoryDenied   = errors.New("directory access denied")
	ErrInvalidAvatar     = errors.New("only jpg/jpeg/png/webp images are allowed")
	ErrAvatarTooLarge    = errors.New("file too large (max 5MB)")
	ErrUploadUnavailable = errors.New("avatar storage is not configured")
)

// ValidationError carries one message per failing json field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}
