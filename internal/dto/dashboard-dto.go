package dto

import (
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/profile"
)

// Widget results carry their own error so one failing query does not blank
// the rest of the dashboard.
type EventsWidget struct {
	Items []domain.Event `json:"items"`
	Error string         `json:"error,omitempty"`
}

type JobsWidget struct {
	Items []domain.Job `json:"items"`
	Error string       `json:"error,omitempty"`
}

type PeopleWidget struct {
	Items []DirectoryProfile `json:"items"`
	Error string             `json:"error,omitempty"`
}

type DashboardResponse struct {
	Profile           *domain.Profile `json:"profile"`
	Completeness      profile.Result  `json:"completeness"`
	Status            profile.Status  `json:"status"`
	Visibility        string          `json:"visibility"`
	NeedsVerification bool            `json:"needs_verification"`
	Events            EventsWidget    `json:"events"`
	Jobs              JobsWidget      `json:"jobs"`
	People            PeopleWidget    `json:"people"`
}
