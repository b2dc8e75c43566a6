package dto

import (
	"github.com/SundayYogurt/alumni_service/internal/directory"
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/google/uuid"
)

// DirectoryProfile is the card other members see. Contact details, consents
// and moderation state stay on the owner's own profile.
type DirectoryProfile struct {
	ID             uuid.UUID `json:"id"`
	FullName       *string   `json:"full_name"`
	Email          string    `json:"email"`
	AvatarURL      *string   `json:"avatar_url"`
	GraduationYear *int      `json:"graduation_year"`
	Degree         *string   `json:"degree"`
	Branch         *string   `json:"branch"`
	EmploymentType *string   `json:"employment_type"`
	Company        *string   `json:"company"`
	Designation    *string   `json:"designation"`
	City           *string   `json:"city"`
	Country        *string   `json:"country"`
}

func NewDirectoryProfile(p domain.Profile) DirectoryProfile {
	return DirectoryProfile{
		ID:             p.ID,
		FullName:       p.FullName,
		Email:          p.Email,
		AvatarURL:      p.AvatarURL,
		GraduationYear: p.GraduationYear,
		Degree:         p.Degree,
		Branch:         p.Branch,
		EmploymentType: p.EmploymentType,
		Company:        p.Company,
		Designation:    p.Designation,
		City:           p.City,
		Country:        p.Country,
	}
}

// NewDirectoryProfiles never returns nil.
func NewDirectoryProfiles(rows []domain.Profile) []DirectoryProfile {
	out := make([]DirectoryProfile, 0, len(rows))
	for _, p := range rows {
		out = append(out, NewDirectoryProfile(p))
	}
	return out
}

type DirectoryResponse struct {
	Profiles   []DirectoryProfile `json:"profiles"`
	Total      int                `json:"total"`
	Years      []int              `json:"years"`
	Message    string             `json:"message,omitempty"`
	EmptyState string             `json:"empty_state,omitempty"`
}

// DirectoryResults is the payload of a "results" frame on the live socket.
type DirectoryResults struct {
	DirectoryResponse
	Input   string          `json:"input"`
	Filters directory.State `json:"filters"`
}

func NewDirectoryResults(s directory.Snapshot) DirectoryResults {
	return DirectoryResults{
		DirectoryResponse: DirectoryResponse{
			Profiles:   NewDirectoryProfiles(s.Profiles),
			Total:      s.Total,
			Years:      s.Years,
			Message:    s.Message,
			EmptyState: s.EmptyState,
		},
		Input:   s.Input,
		Filters: s.State,
	}
}

// DirectoryMessage is one client frame on the live directory socket.
// Type is "search", "year", "degree" or "branch".
type DirectoryMessage struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// DirectoryFrame is one server frame: "loading", "results" or "error".
type DirectoryFrame struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
