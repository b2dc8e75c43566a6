package directory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rows  []domain.Profile
	err   error
	gate  chan struct{}
	calls int
}

func (s *stubSource) QueryDirectory(ctx context.Context) ([]domain.Profile, error) {
	s.calls++
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scenarioRows() []domain.Profile {
	priya := member("Priya", "B.Tech", "CSE", 2020)
	priya.IsPublic = boolPtr(false)
	priya.Approval = approval(domain.ApprovalPending)

	return []domain.Profile{
		member("Asha", "B.Tech", "CSE", 2020),
		member("Rohit", "B.Tech", "ECE", 2021),
		priya,
	}
}

func TestLoadThenFilterScenario(t *testing.T) {
	loader := NewLoader(&stubSource{rows: scenarioRows()}, quietLogger())

	res := loader.Load(context.Background())

	require.False(t, res.Failed())
	assert.ElementsMatch(t, []string{"Asha", "Rohit"}, names(res.Profiles))
	assert.Equal(t, []string{"Rohit", "Asha"}, names(res.Profiles))
	assert.Equal(t, []string{"Asha"}, names(Filter(res.Profiles, State{Branch: "CSE"})))
}

func TestLoadDropsIneligibleRows(t *testing.T) {
	hidden := member("Hidden", "MBA", "Other", 2018)
	hidden.IsPublic = nil
	legacy := member("Legacy", "MBA", "Other", 2018)
	legacy.Approval = nil
	rejected := member("Rejected", "MBA", "Other", 2018)
	rejected.Approval = approval(domain.ApprovalRejected)

	loader := NewLoader(&stubSource{rows: []domain.Profile{hidden, legacy, rejected}}, quietLogger())

	res := loader.Load(context.Background())

	assert.Empty(t, res.Profiles)
	assert.False(t, res.Failed())
}

func TestLoadSortsByYearThenName(t *testing.T) {
	noYear := member("Aaron", "PhD", "CH", 0)
	noYear.GraduationYear = nil
	rows := []domain.Profile{
		member("bina", "MBA", "CSE", 2019),
		noYear,
		member("Anil", "MBA", "CSE", 2019),
		member("Zara", "MBA", "CSE", 2023),
	}
	loader := NewLoader(&stubSource{rows: rows}, quietLogger())

	res := loader.Load(context.Background())

	assert.Equal(t, []string{"Zara", "Anil", "bina", "Aaron"}, names(res.Profiles))
}

func TestLoadFailsSoft(t *testing.T) {
	loader := NewLoader(&stubSource{err: errors.New("connection refused")}, quietLogger())

	res := loader.Load(context.Background())

	assert.True(t, res.Failed())
	assert.Equal(t, LoadFailedMessage, res.Message)
	assert.NotNil(t, res.Profiles)
	assert.Empty(t, res.Profiles)
	assert.Empty(t, Filter(res.Profiles, State{Query: "a"}))
}

func TestMountDiscardsLateResult(t *testing.T) {
	src := &stubSource{rows: scenarioRows(), gate: make(chan struct{})}
	loader := NewLoader(src, quietLogger())

	applied := make(chan Result, 1)
	view := loader.Mount(context.Background(), func(r Result) { applied <- r })
	require.True(t, view.Alive())

	view.Close()
	close(src.gate)

	select {
	case <-view.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("load did not finish")
	}
	assert.Empty(t, applied)
}

func TestMountAppliesWhileAlive(t *testing.T) {
	loader := NewLoader(&stubSource{rows: scenarioRows()}, quietLogger())

	applied := make(chan Result, 1)
	view := loader.Mount(context.Background(), func(r Result) { applied <- r })

	select {
	case r := <-applied:
		assert.Len(t, r.Profiles, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("result never applied")
	}
	<-view.Done()
}

func TestYears(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	got := Years(sampleRecords(), now)
	assert.Equal(t, []int{2021, 2020, 2019}, got)

	fallback := Years(nil, now)
	require.NotEmpty(t, fallback)
	assert.Equal(t, 2027, fallback[0])
	assert.Equal(t, domain.MinGraduationYear, fallback[len(fallback)-1])
}
