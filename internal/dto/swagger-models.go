package dto

// ===== Common responses =====

type APIError struct {
	Error string `json:"error" example:"invalid input"`
}

type APIValidationError struct {
	Error  string            `json:"error" example:"validation failed"`
	Fields map[string]string `json:"fields"`
}

type APISuccessString struct {
	Data string `json:"data" example:"ok"`
}

type APISuccessSession struct {
	Data SessionResponse `json:"data"`
}

type APISuccessProfile struct {
	Data ProfileResponse `json:"data"`
}

type APISuccessAvatar struct {
	Data AvatarResponse `json:"data"`
}

type APISuccessDirectory struct {
	Data DirectoryResponse `json:"data"`
}

type APISuccessDashboard struct {
	Data DashboardResponse `json:"data"`
}

// APIOnboardingRequired is returned with 409 when the caller must finish
// onboarding first.
type APIOnboardingRequired struct {
	Error    string `json:"error" example:"onboarding required"`
	Redirect string `json:"redirect" example:"/onboarding"`
}
