package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

var (
	Degrees         = []string{"B.Tech", "M.Tech", "MBA", "PhD", "Other"}
	Branches        = []string{"CSE", "ECE", "EE", "ME", "CE", "BT", "CH", "MME", "Other"}
	EmploymentTypes = []string{"Student", "Employed", "Self-Employed", "Unemployed", "Other"}
	Interests       = []string{
		"Networking, Business & Services",
		"Mentorship",
		"Research & Academia",
		"Events & Reunions",
		"Jobs & Internships",
		"Other",
	}
)

// MinGraduationYear is the oldest batch the alumni network accepts.
const MinGraduationYear = 1965

// MaxGraduationYear allows current students up to four years out.
func MaxGraduationYear(now time.Time) int {
	return now.Year() + 4
}

// Profile is one member record. ID is shared with the auth user.
type Profile struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	FullName  *string `gorm:"type:varchar(100)" json:"full_name"`
	AvatarURL *string `gorm:"type:text" json:"avatar_url"`
	PhoneE164 *string `gorm:"type:varchar(20);column:phone_e164" json:"phone_e164"`
	City      *string `gorm:"type:varchar(100)" json:"city"`
	Country   *string `gorm:"type:varchar(100)" json:"country"`

	GraduationYear *int    `gorm:"index" json:"graduation_year"`
	Degree         *string `gorm:"type:varchar(20)" json:"degree"`
	Branch         *string `gorm:"type:varchar(20)" json:"branch"`

	EmploymentType *string `gorm:"type:varchar(30)" json:"employment_type"`
	Company        *string `gorm:"type:varchar(150)" json:"company"`
	Designation    *string `gorm:"type:varchar(150)" json:"designation"`

	Interests pq.StringArray `gorm:"type:text[]" json:"interests"`

	IsPublic   *bool     `gorm:"default:true" json:"is_public"`
	CanContact bool      `gorm:"not null;default:false" json:"can_contact"`
	Approval   *Approval `gorm:"type:varchar(20);index" json:"approval"`
	Onboarded  bool      `gorm:"not null;default:false" json:"onboarded"`

	HasConsentedTerms   bool `gorm:"not null;default:false" json:"has_consented_terms"`
	HasConsentedPrivacy bool `gorm:"not null;default:false" json:"has_consented_privacy"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Public reports the user-controlled directory opt-in; NULL counts as false.
func (p Profile) Public() bool {
	return p.IsPublic != nil && *p.IsPublic
}
