package directory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frames struct {
	mu  sync.Mutex
	all []Snapshot
}

func (f *frames) push(s Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all = append(f.all, s)
}

func (f *frames) last() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.all[len(f.all)-1]
}

func (f *frames) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.all)
}

func startSession(t *testing.T, src *stubSource) (*Session, *frames, *fakeClock) {
	t.Helper()

	out := &frames{}
	s := NewSession(NewLoader(src, quietLogger()), DefaultQuietPeriod, out.push)
	clock := &fakeClock{}
	s.debouncer.after = clock.after
	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	s.Start(context.Background())
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("initial load did not finish")
	}
	return s, out, clock
}

func TestSessionRendersLoadingThenResults(t *testing.T) {
	s, out, _ := startSession(t, &stubSource{rows: scenarioRows()})
	defer s.Close()

	require.Equal(t, 2, out.count())
	assert.True(t, out.all[0].Loading)

	last := out.last()
	assert.False(t, last.Loading)
	assert.Equal(t, 2, last.Total)
	assert.Equal(t, []int{2021, 2020}, last.Years)
	assert.Empty(t, last.EmptyState)
}

func TestSessionDebouncedSearch(t *testing.T) {
	s, out, clock := startSession(t, &stubSource{rows: scenarioRows()})
	defer s.Close()

	before := out.count()
	s.Search("R")
	s.Search("Ro")
	s.Search("Roh")
	assert.Equal(t, before, out.count())

	clock.elapse()

	require.Equal(t, before+1, out.count())
	last := out.last()
	assert.Equal(t, "Roh", last.State.Query)
	assert.Equal(t, []string{"Rohit"}, names(last.Profiles))
}

func TestSessionCategoricalFiltersApplyImmediately(t *testing.T) {
	s, out, _ := startSession(t, &stubSource{rows: scenarioRows()})
	defer s.Close()

	s.SetBranch("CSE")
	assert.Equal(t, []string{"Asha"}, names(out.last().Profiles))

	s.SetYear(2021)
	last := out.last()
	assert.Empty(t, last.Profiles)
	assert.Equal(t, NoResultsMessage, last.EmptyState)

	s.SetBranch("")
	s.SetYear(0)
	assert.Equal(t, 2, out.last().Total)
}

func TestSessionFailedLoadStaysInteractive(t *testing.T) {
	s, out, _ := startSession(t, &stubSource{err: errors.New("timeout")})
	defer s.Close()

	last := out.last()
	assert.Equal(t, LoadFailedMessage, last.Message)
	assert.Empty(t, last.EmptyState)

	s.SetDegree("MBA")
	assert.Equal(t, LoadFailedMessage, out.last().Message)
	assert.Empty(t, out.last().Profiles)
}

func TestSessionClosedBeforeLoad(t *testing.T) {
	src := &stubSource{rows: scenarioRows(), gate: make(chan struct{})}
	out := &frames{}
	s := NewSession(NewLoader(src, quietLogger()), DefaultQuietPeriod, out.push)

	s.Start(context.Background())
	s.Close()
	close(src.gate)
	<-s.Done()

	assert.Equal(t, 1, out.count())
	assert.True(t, out.last().Loading)

	s.SetBranch("CSE")
	assert.Equal(t, 1, out.count())
}

func TestSessionQuietPeriodStaysInWindow(t *testing.T) {
	loader := NewLoader(&stubSource{}, quietLogger())

	assert.Equal(t, MinQuietPeriod, NewSession(loader, time.Millisecond, func(Snapshot) {}).debouncer.delay)
	assert.Equal(t, MaxQuietPeriod, NewSession(loader, time.Minute, func(Snapshot) {}).debouncer.delay)
}
