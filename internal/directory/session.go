package directory

import (
	"context"
	"sync"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/domain"
)

// NoResultsMessage is rendered instead of an empty grid.
const NoResultsMessage = "No alumni match your filters. Try clearing filters or searching differently."

// Snapshot is everything a renderer needs for one frame of the directory.
// It carries full records; renderers project them before they leave the process.
type Snapshot struct {
	Loading    bool
	Input      string
	State      State
	Profiles   []domain.Profile
	Total      int
	Years      []int
	Message    string
	EmptyState string
}

// Session is one mounted directory view: the loaded records (never modified
// after load), the current filter state, and a debounced search box. Every
// state change re-runs Filter and calls render with the new snapshot.
// render is never called concurrently.
type Session struct {
	mu        sync.Mutex
	loader    *Loader
	debouncer *Debouncer
	render    func(Snapshot)
	view      *View
	now       func() time.Time

	loaded  bool
	records []domain.Profile
	message string
	state   State
	closed  bool
}

func NewSession(loader *Loader, quiet time.Duration, render func(Snapshot)) *Session {
	s := &Session{
		loader: loader,
		render: render,
		now:    time.Now,
	}
	s.debouncer = NewDebouncer(ClampQuietPeriod(quiet), s.commitQuery)
	return s
}

// Start renders the loading frame and begins the one load for this view.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	s.render(Snapshot{Loading: true, State: s.state, Profiles: []domain.Profile{}})
	s.mu.Unlock()

	s.view = s.loader.Mount(ctx, s.applyLoad)
}

// Search takes raw keystroke input; the query commits after the quiet period.
func (s *Session) Search(raw string) {
	s.debouncer.Input(raw)
}

func (s *Session) SetYear(year int) {
	s.update(func(st *State) { st.Year = year })
}

func (s *Session) SetDegree(degree string) {
	s.update(func(st *State) { st.Degree = degree })
}

func (s *Session) SetBranch(branch string) {
	s.update(func(st *State) { st.Branch = branch })
}

// Close tears the view down. A load still in flight is discarded.
func (s *Session) Close() {
	s.debouncer.Stop()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.view != nil {
		s.view.Close()
	}
}

// Done is closed once the initial load has been applied or discarded.
func (s *Session) Done() <-chan struct{} {
	if s.view == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return s.view.Done()
}

func (s *Session) applyLoad(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.loaded = true
	s.records = res.Profiles
	s.message = res.Message
	s.renderLocked()
}

func (s *Session) commitQuery(q string) {
	s.update(func(st *State) { st.Query = q })
}

func (s *Session) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	fn(&s.state)
	if s.loaded {
		s.renderLocked()
	}
}

func (s *Session) renderLocked() {
	rows := Filter(s.records, s.state)

	snap := Snapshot{
		Input:    s.debouncer.Pending(),
		State:    s.state,
		Profiles: rows,
		Total:    len(rows),
		Years:    Years(s.records, s.now()),
		Message:  s.message,
	}
	if len(rows) == 0 && s.message == "" {
		snap.EmptyState = NoResultsMessage
	}
	s.render(snap)
}
