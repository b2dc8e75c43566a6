package services

import (
	"context"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/directory"
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/profile"
)

type DirectoryService interface {
	// Authorize applies the access rule on top of the onboarding gate:
	// an effectively rejected requester is refused.
	Authorize(requester *domain.Profile) error
	Search(ctx context.Context, st directory.State) dto.DirectoryResponse
	NewSession(render func(directory.Snapshot)) *directory.Session
}

type directoryService struct {
	loader *directory.Loader
	quiet  time.Duration
	now    func() time.Time
}

func NewDirectoryService(loader *directory.Loader, quiet time.Duration) DirectoryService {
	if quiet <= 0 {
		quiet = directory.DefaultQuietPeriod
	}
	return &directoryService{loader: loader, quiet: directory.ClampQuietPeriod(quiet), now: time.Now}
}

func (s *directoryService) Authorize(requester *domain.Profile) error {
	if requester == nil || !requester.Onboarded {
		return ErrNotOnboarded
	}
	if profile.EffectiveApproval(requester.Approval, requester.IsPublic) == domain.ApprovalRejected {
		return ErrDirectoryDenied
	}
	return nil
}

// Search is the one-shot form of a directory view: load, filter, render.
func (s *directoryService) Search(ctx context.Context, st directory.State) dto.DirectoryResponse {
	res := s.loader.Load(ctx)
	rows := directory.Filter(res.Profiles, st)

	out := dto.DirectoryResponse{
		Profiles: dto.NewDirectoryProfiles(rows),
		Total:    len(rows),
		Years:    directory.Years(res.Profiles, s.now()),
		Message:  res.Message,
	}
	if len(rows) == 0 && !res.Failed() {
		out.EmptyState = directory.NoResultsMessage
	}
	return out
}

func (s *directoryService) NewSession(render func(directory.Snapshot)) *directory.Session {
	return directory.NewSession(s.loader, s.quiet, render)
}
