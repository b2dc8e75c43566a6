package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/clients/google"
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/repository"
	"github.com/google/uuid"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*domain.User
	profiles  *stubProfileRepo
	createErr error
}

func newStubUserRepo(profiles *stubProfileRepo) *stubUserRepo {
	return &stubUserRepo{users: map[uuid.UUID]*domain.User{}, profiles: profiles}
}

func (s *stubUserRepo) CreateUserWithProfile(ctx context.Context, user *domain.User, p *domain.Profile) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	cp := *user
	s.users[user.ID] = &cp
	s.mu.Unlock()
	return s.profiles.CreateIfMissing(ctx, p)
}

func (s *stubUserRepo) find(match func(u *domain.User) bool) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.find(func(u *domain.User) bool { return u.Email == email })
}

func (s *stubUserRepo) FindUserById(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.find(func(u *domain.User) bool { return u.ID == id })
}

func (s *stubUserRepo) FindUserByGoogleSub(ctx context.Context, sub string) (*domain.User, error) {
	return s.find(func(u *domain.User) bool { return u.GoogleSub != nil && *u.GoogleSub == sub })
}

func (s *stubUserRepo) FindUserByResetToken(ctx context.Context, hash string) (*domain.User, error) {
	if hash == "" {
		return nil, repository.ErrNotFound
	}
	return s.find(func(u *domain.User) bool { return u.ResetTokenHash == hash })
}

func (s *stubUserRepo) SaveUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

// stubProfileRepo mimics the store's upsert: approval is kept from the
// existing row and consents are OR-ed.
type stubProfileRepo struct {
	mu          sync.Mutex
	rows        map[uuid.UUID]domain.Profile
	upserts     int
	upsertErr   error
	directory   []domain.Profile
	dirErr      error
	suggestions []domain.Profile
	suggestErr  error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{rows: map[uuid.UUID]domain.Profile{}}
}

func (s *stubProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *stubProfileRepo) CreateIfMissing(ctx context.Context, p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[p.ID]; !ok {
		s.rows[p.ID] = *p
	}
	return nil
}

func (s *stubProfileRepo) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	s.mu.Lock()
	next := *p
	if prev, ok := s.rows[p.ID]; ok {
		next.Approval = prev.Approval
		next.HasConsentedTerms = prev.HasConsentedTerms || p.HasConsentedTerms
		next.HasConsentedPrivacy = prev.HasConsentedPrivacy || p.HasConsentedPrivacy
	}
	s.rows[p.ID] = next
	s.upserts++
	s.mu.Unlock()
	return s.FindByID(ctx, p.ID)
}

func (s *stubProfileRepo) QueryDirectory(ctx context.Context) ([]domain.Profile, error) {
	return s.directory, s.dirErr
}

func (s *stubProfileRepo) ListSuggestions(ctx context.Context, excludeID uuid.UUID, limit int) ([]domain.Profile, error) {
	return s.suggestions, s.suggestErr
}

type publishedMessage struct {
	key   string
	value []byte
}

type stubProducer struct {
	mu   sync.Mutex
	msgs []publishedMessage
}

func (p *stubProducer) PublishMessage(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, publishedMessage{key: string(key), value: value})
	return nil
}

func (p *stubProducer) messages() []publishedMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedMessage(nil), p.msgs...)
}

type stubOAuth struct {
	info *google.UserInfo
	err  error
}

func (o *stubOAuth) AuthCodeURL(state string) string {
	return "https://accounts.example/auth?state=" + state
}

func (o *stubOAuth) Exchange(ctx context.Context, code string) (*google.UserInfo, error) {
	return o.info, o.err
}

type stubUploader struct {
	folder   string
	filename string
	size     int
	err      error
}

func (u *stubUploader) UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.folder, u.filename, u.size = folder, filename, len(b)
	return "https://cdn.example/" + folder + "/" + filename + ".jpg", nil
}

type stubEvents struct {
	items    []domain.Event
	err      error
	from, to time.Time
	limit    int
}

func (s *stubEvents) ListUpcoming(ctx context.Context, from, to time.Time, limit int) ([]domain.Event, error) {
	s.from, s.to, s.limit = from, to, limit
	return s.items, s.err
}

type stubJobs struct {
	items []domain.Job
	err   error
	limit int
}

func (s *stubJobs) ListLatest(ctx context.Context, limit int) ([]domain.Job, error) {
	s.limit = limit
	return s.items, s.err
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func approval(a domain.Approval) *domain.Approval { return &a }
