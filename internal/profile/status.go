package profile

import "github.com/SundayYogurt/alumni_service/internal/domain"

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
)

type Status struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// EffectiveApproval is the single place where a missing approval value is
// interpreted. Rows written before the approval column existed have NULL
// there; for them the public flag stands in: public means approved, anything
// else pending. A populated column is returned as is.
func EffectiveApproval(approval *domain.Approval, isPublic *bool) domain.Approval {
	if approval != nil && *approval != "" {
		return *approval
	}
	if isPublic != nil && *isPublic {
		return domain.ApprovalApproved
	}
	return domain.ApprovalPending
}

// ResolveStatus maps approval to a display label and tone. Unrecognised
// values resolve to a neutral "Unknown" instead of failing.
func ResolveStatus(approval *domain.Approval, isPublic *bool) Status {
	switch EffectiveApproval(approval, isPublic) {
	case domain.ApprovalApproved:
		return Status{Label: "Approved", Tone: ToneSuccess}
	case domain.ApprovalRejected:
		return Status{Label: "Rejected", Tone: ToneDanger}
	case domain.ApprovalPending:
		return Status{Label: "Pending", Tone: ToneWarning}
	default:
		return Status{Label: "Unknown", Tone: ToneNeutral}
	}
}

// VisibilityLabel is the directory opt-in badge shown next to the status.
func VisibilityLabel(isPublic *bool) string {
	if isPublic != nil && *isPublic {
		return "Public profile"
	}
	return "Hidden from directory"
}

// DirectoryEligible is the listing rule: opted in and explicitly approved.
// The legacy fallback is not applied here; the store query matches on the
// populated column only.
func DirectoryEligible(p domain.Profile) bool {
	return p.Public() && p.Approval != nil && *p.Approval == domain.ApprovalApproved
}
