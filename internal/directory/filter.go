package directory

import (
	"strconv"
	"strings"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// State is the client-held filter selection for one directory view.
// Zero values mean "any".
type State struct {
	Query  string `json:"q"`
	Year   int    `json:"year"`
	Degree string `json:"degree"`
	Branch string `json:"branch"`
}

// Filter derives the visible subset of records. It never mutates records,
// keeps their order, and runs the whole predicate chain on every call.
func Filter(records []domain.Profile, st State) []domain.Profile {
	needle := normalize(strings.TrimSpace(st.Query))

	out := make([]domain.Profile, 0, len(records))
	for _, p := range records {
		if needle != "" && !strings.Contains(haystack(p), needle) {
			continue
		}
		if st.Year != 0 && (p.GraduationYear == nil || *p.GraduationYear != st.Year) {
			continue
		}
		if st.Degree != "" && deref(p.Degree) != st.Degree {
			continue
		}
		if st.Branch != "" && deref(p.Branch) != st.Branch {
			continue
		}
		out = append(out, p)
	}
	return out
}

// normalize decomposes (NFKD) and lower-cases so that accented and
// compatibility forms compare as substrings.
func normalize(s string) string {
	return strings.ToLower(norm.NFKD.String(s))
}

func haystack(p domain.Profile) string {
	parts := make([]string, 0, 8)
	for _, s := range []*string{p.FullName, p.Designation, p.Company, p.City, p.Country, p.Degree, p.Branch} {
		if v := deref(s); v != "" {
			parts = append(parts, normalize(v))
		}
	}
	if p.GraduationYear != nil && *p.GraduationYear != 0 {
		parts = append(parts, strconv.Itoa(*p.GraduationYear))
	}
	return strings.Join(parts, " | ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
