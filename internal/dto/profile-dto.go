package dto

import (
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/profile"
)

// OnboardingRequest is the whole editable profile. Every submission replaces
// the stored record; omitted optional strings are stored as NULL.
type OnboardingRequest struct {
	FullName  string  `json:"full_name" validate:"required,min=2,max=100" example:"Asha Rao"`
	PhoneE164 string  `json:"phone_e164,omitempty" validate:"omitempty,e164" example:"+919800000000"`
	City      string  `json:"city,omitempty" validate:"max=100"`
	Country   string  `json:"country,omitempty" validate:"max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`

	GraduationYear int    `json:"graduation_year" validate:"required,gradyear" example:"2018"`
	Degree         string `json:"degree" validate:"required,degree" example:"B.Tech"`
	Branch         string `json:"branch" validate:"required,branch" example:"CSE"`

	EmploymentType string `json:"employment_type" validate:"required,employment" example:"Employed"`
	Company        string `json:"company,omitempty" validate:"max=150"`
	Designation    string `json:"designation,omitempty" validate:"max=150"`

	Interests []string `json:"interests" validate:"omitempty,unique,dive,interest"`

	IsPublic   *bool `json:"is_public,omitempty"`
	CanContact *bool `json:"can_contact,omitempty"`

	HasConsentedTerms   bool `json:"has_consented_terms" validate:"required"`
	HasConsentedPrivacy bool `json:"has_consented_privacy" validate:"required"`
}

// ProfileResponse is a profile plus everything derived from it for display.
type ProfileResponse struct {
	Profile      *domain.Profile `json:"profile"`
	Completeness profile.Result  `json:"completeness"`
	Status       profile.Status  `json:"status"`
	Visibility   string          `json:"visibility"`
}

type AvatarResponse struct {
	URL string `json:"url"`
}
