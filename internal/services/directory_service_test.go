package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/directory"
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listed(name, degree, branch string, year int) domain.Profile {
	return domain.Profile{
		ID:             uuid.New(),
		FullName:       strPtr(name),
		Degree:         strPtr(degree),
		Branch:         strPtr(branch),
		GraduationYear: intPtr(year),
		IsPublic:       boolPtr(true),
		Approval:       approval(domain.ApprovalApproved),
		Onboarded:      true,
	}
}

func newDirectoryFixture(rows []domain.Profile, err error) DirectoryService {
	repo := newStubProfileRepo()
	repo.directory = rows
	repo.dirErr = err
	return NewDirectoryService(directory.NewLoader(repo, quietLogger()), 0)
}

func TestDirectoryAuthorize(t *testing.T) {
	svc := newDirectoryFixture(nil, nil)

	assert.ErrorIs(t, svc.Authorize(nil), ErrNotOnboarded)
	assert.ErrorIs(t, svc.Authorize(&domain.Profile{Onboarded: false}), ErrNotOnboarded)

	rejected := &domain.Profile{Onboarded: true, Approval: approval(domain.ApprovalRejected)}
	assert.ErrorIs(t, svc.Authorize(rejected), ErrDirectoryDenied)

	pending := &domain.Profile{Onboarded: true, Approval: approval(domain.ApprovalPending), IsPublic: boolPtr(true)}
	assert.NoError(t, svc.Authorize(pending))

	// a legacy row without approval falls back to the public flag
	legacyHidden := &domain.Profile{Onboarded: true, IsPublic: boolPtr(false)}
	assert.NoError(t, svc.Authorize(legacyHidden))
}

func TestDirectorySearchFiltersAndSorts(t *testing.T) {
	hidden := listed("Hidden", "MBA", "ME", 2020)
	hidden.IsPublic = boolPtr(false)

	svc := newDirectoryFixture([]domain.Profile{
		listed("Asha", "B.Tech", "CSE", 2018),
		listed("Rohit", "B.Tech", "CSE", 2020),
		listed("Meera", "MBA", "ME", 2019),
		hidden,
	}, nil)

	out := svc.Search(context.Background(), directory.State{Degree: "B.Tech"})
	require.Len(t, out.Profiles, 2)
	assert.Equal(t, "Rohit", *out.Profiles[0].FullName)
	assert.Equal(t, "Asha", *out.Profiles[1].FullName)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, []int{2020, 2019, 2018}, out.Years)
	assert.Empty(t, out.Message)
	assert.Empty(t, out.EmptyState)
}

func TestDirectorySearchNoMatches(t *testing.T) {
	svc := newDirectoryFixture([]domain.Profile{listed("Asha", "B.Tech", "CSE", 2018)}, nil)

	out := svc.Search(context.Background(), directory.State{Query: "zzz"})
	assert.Empty(t, out.Profiles)
	assert.Equal(t, directory.NoResultsMessage, out.EmptyState)
	assert.Equal(t, []int{2018}, out.Years)
}

func TestDirectorySearchFailedLoad(t *testing.T) {
	svc := newDirectoryFixture(nil, errors.New("timeout"))

	out := svc.Search(context.Background(), directory.State{})
	assert.NotNil(t, out.Profiles)
	assert.Empty(t, out.Profiles)
	assert.Equal(t, directory.LoadFailedMessage, out.Message)
	assert.Empty(t, out.EmptyState)
	assert.Equal(t, time.Now().Year()+1, out.Years[0])
	assert.Equal(t, domain.MinGraduationYear, out.Years[len(out.Years)-1])
}
