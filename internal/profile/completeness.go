package profile

import (
	"math"
	"strings"

	"github.com/SundayYogurt/alumni_service/internal/domain"
)

const (
	LabelName           = "Name"
	LabelAvatar         = "Avatar"
	LabelDegree         = "Degree"
	LabelBranch         = "Branch"
	LabelGraduationYear = "Graduation year"
	LabelLocation       = "Location"
	LabelWork           = "Work"
	LabelInterests      = "Interests"
)

type Result struct {
	Percent int      `json:"percent"`
	Missing []string `json:"missing"`
}

type check struct {
	label string
	ok    func(p domain.Profile) bool
}

// every check weighs the same; order is the nudge order
var checklist = []check{
	{LabelName, func(p domain.Profile) bool { return present(p.FullName) }},
	{LabelAvatar, func(p domain.Profile) bool { return present(p.AvatarURL) }},
	{LabelDegree, func(p domain.Profile) bool { return present(p.Degree) }},
	{LabelBranch, func(p domain.Profile) bool { return present(p.Branch) }},
	{LabelGraduationYear, func(p domain.Profile) bool { return p.GraduationYear != nil && *p.GraduationYear > 0 }},
	{LabelLocation, func(p domain.Profile) bool { return present(p.City) || present(p.Country) }},
	{LabelWork, func(p domain.Profile) bool {
		return present(p.EmploymentType) || present(p.Company) || present(p.Designation)
	}},
	{LabelInterests, func(p domain.Profile) bool { return len(p.Interests) > 0 }},
}

// Completeness scores a profile against the checklist. It has no side
// effects and is safe to call for every render.
func Completeness(p domain.Profile) Result {
	missing := make([]string, 0, len(checklist))
	for _, c := range checklist {
		if !c.ok(p) {
			missing = append(missing, c.label)
		}
	}

	have := len(checklist) - len(missing)
	pct := int(math.Round(100 * float64(have) / float64(len(checklist))))

	return Result{Percent: pct, Missing: missing}
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
