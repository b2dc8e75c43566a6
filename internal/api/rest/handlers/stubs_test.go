package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/directory"
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/repository"
	"github.com/SundayYogurt/alumni_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://web.test"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubProfileStore backs the real profile, directory and dashboard services.
type stubProfileStore struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]domain.Profile
	directory []domain.Profile
	dirErr    error
}

func newStubProfileStore() *stubProfileStore {
	return &stubProfileStore{rows: map[uuid.UUID]domain.Profile{}}
}

func (s *stubProfileStore) put(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[p.ID] = p
}

func (s *stubProfileStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *stubProfileStore) CreateIfMissing(ctx context.Context, p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[p.ID]; !ok {
		s.rows[p.ID] = *p
	}
	return nil
}

func (s *stubProfileStore) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	s.mu.Lock()
	next := *p
	if prev, ok := s.rows[p.ID]; ok {
		next.Approval = prev.Approval
	}
	s.rows[p.ID] = next
	s.mu.Unlock()
	return s.FindByID(ctx, p.ID)
}

func (s *stubProfileStore) QueryDirectory(ctx context.Context) ([]domain.Profile, error) {
	return s.directory, s.dirErr
}

func (s *stubProfileStore) ListSuggestions(ctx context.Context, excludeID uuid.UUID, limit int) ([]domain.Profile, error) {
	return s.directory, nil
}

type stubEvents struct{}

func (stubEvents) ListUpcoming(ctx context.Context, from, to time.Time, limit int) ([]domain.Event, error) {
	return []domain.Event{{ID: uuid.New(), Title: "Reunion", StartsAt: from.Add(time.Hour)}}, nil
}

type stubJobs struct{}

func (stubJobs) ListLatest(ctx context.Context, limit int) ([]domain.Job, error) {
	return nil, nil
}

// stubAuthService records calls and returns canned results.
type stubAuthService struct {
	session   *dto.SessionResponse
	err       error
	googleURL string
	googleErr error
	lastEmail string
	lastCode  string
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	s.lastEmail = email
	return s.session, s.err
}

func (s *stubAuthService) SignInWithPassword(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	s.lastEmail = email
	return s.session, s.err
}

func (s *stubAuthService) ExchangeAuthCodeForSession(ctx context.Context, code string) (*dto.SessionResponse, error) {
	s.lastCode = code
	return s.session, s.err
}

func (s *stubAuthService) GetCurrentUser(token string) (*dto.CurrentUser, error) {
	return nil, services.ErrUnauthorized
}

func (s *stubAuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return s.err
}

func (s *stubAuthService) GoogleAuthURL(state string) (string, error) {
	if s.googleErr != nil {
		return "", s.googleErr
	}
	return s.googleURL + "?state=" + state, nil
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	s.lastEmail = email
	return s.err
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.err
}

type testEnv struct {
	app     *fiber.App
	auth    helper.Auth
	store   *stubProfileStore
	authSvc *stubAuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	auth := helper.SetupAuth("handler-test-secret")
	store := newStubProfileStore()
	authSvc := &stubAuthService{googleURL: "https://accounts.example/auth"}
	log := quietLogger()

	profileSvc := services.NewProfileService(store, nil, nil, log)
	directorySvc := services.NewDirectoryService(directory.NewLoader(store, log), 0)
	dashboardSvc := services.NewDashboardService(stubEvents{}, stubJobs{}, store, log)

	app := fiber.New()
	NewAuthHandler(authSvc, auth, testBaseURL+"/", false).SetupRoutes(app)
	NewProfileHandler(profileSvc, auth).SetupRoutes(app)
	NewDirectoryHandler(directorySvc, profileSvc, auth).SetupRoutes(app)
	NewDashboardHandler(dashboardSvc, profileSvc, auth).SetupRoutes(app)

	return &testEnv{app: app, auth: auth, store: store, authSvc: authSvc}
}

func (e *testEnv) bearer(t *testing.T, id uuid.UUID, email string) string {
	t.Helper()
	tok, err := e.auth.GenerateToken(id, email)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var body envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	return resp, body
}

type envelope struct {
	Data     json.RawMessage   `json:"data"`
	Error    string            `json:"error"`
	Redirect string            `json:"redirect"`
	Fields   map[string]string `json:"fields"`
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func approval(a domain.Approval) *domain.Approval { return &a }

func member(name, degree string, year int, a domain.Approval) domain.Profile {
	return domain.Profile{
		ID:             uuid.New(),
		Email:          name + "@example.com",
		FullName:       strPtr(name),
		Degree:         strPtr(degree),
		Branch:         strPtr("CSE"),
		GraduationYear: intPtr(year),
		IsPublic:       boolPtr(true),
		Approval:       approval(a),
		Onboarded:      true,
	}
}
