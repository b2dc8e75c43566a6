package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/profile"
	"github.com/SundayYogurt/alumni_service/internal/repository"
)

const (
	dashboardEventWindow = 30 * 24 * time.Hour
	dashboardEventLimit  = 3
	dashboardJobLimit    = 3
	dashboardPeopleLimit = 4

	eventsUnavailable = "Couldn't load upcoming events."
	jobsUnavailable   = "Couldn't load job postings."
	peopleUnavailable = "Couldn't load suggestions."
)

type DashboardService interface {
	Build(ctx context.Context, p *domain.Profile) dto.DashboardResponse
}

type dashboardService struct {
	events   repository.EventRepository
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	log      *slog.Logger
	now      func() time.Time
}

func NewDashboardService(
	events repository.EventRepository,
	jobs repository.JobRepository,
	profiles repository.ProfileRepository,
	logger *slog.Logger,
) DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &dashboardService{
		events:   events,
		jobs:     jobs,
		profiles: profiles,
		log:      logger,
		now:      time.Now,
	}
}

// Build assembles the dashboard for an onboarded profile. The three list
// widgets are fetched concurrently and each degrades on its own.
func (s *dashboardService) Build(ctx context.Context, p *domain.Profile) dto.DashboardResponse {
	out := dto.DashboardResponse{
		Profile:           p,
		Completeness:      profile.Completeness(*p),
		Status:            profile.ResolveStatus(p.Approval, p.IsPublic),
		Visibility:        profile.VisibilityLabel(p.IsPublic),
		NeedsVerification: needsVerification(p),
		Events:            dto.EventsWidget{Items: []domain.Event{}},
		Jobs:              dto.JobsWidget{Items: []domain.Job{}},
		People:            dto.PeopleWidget{Items: []dto.DirectoryProfile{}},
	}

	now := s.now()
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		items, err := s.events.ListUpcoming(ctx, now, now.Add(dashboardEventWindow), dashboardEventLimit)
		if err != nil {
			s.log.Warn("dashboard events failed", slog.String("error", err.Error()))
			out.Events.Error = eventsUnavailable
			return
		}
		if items != nil {
			out.Events.Items = items
		}
	}()

	go func() {
		defer wg.Done()
		items, err := s.jobs.ListLatest(ctx, dashboardJobLimit)
		if err != nil {
			s.log.Warn("dashboard jobs failed", slog.String("error", err.Error()))
			out.Jobs.Error = jobsUnavailable
			return
		}
		if items != nil {
			out.Jobs.Items = items
		}
	}()

	go func() {
		defer wg.Done()
		items, err := s.profiles.ListSuggestions(ctx, p.ID, dashboardPeopleLimit)
		if err != nil {
			s.log.Warn("dashboard people failed", slog.String("error", err.Error()))
			out.People.Error = peopleUnavailable
			return
		}
		people := make([]dto.DirectoryProfile, 0, len(items))
		for _, it := range items {
			if it.ID != p.ID && profile.DirectoryEligible(it) {
				people = append(people, dto.NewDirectoryProfile(it))
			}
		}
		out.People.Items = people
	}()

	wg.Wait()
	return out
}

// needsVerification drives the banner. Unlike the status label, a missing
// approval counts as pending here.
func needsVerification(p *domain.Profile) bool {
	return p.Approval == nil || *p.Approval == domain.ApprovalPending
}
