package directory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/profile"
)

// LoadFailedMessage replaces the data region when the fetch fails.
const LoadFailedMessage = "Couldn't load the directory right now. Please try again later."

// Source is the slice of the profile store the loader needs.
type Source interface {
	QueryDirectory(ctx context.Context) ([]domain.Profile, error)
}

// Result of one load. Message is set only when the fetch failed, in which
// case Profiles is empty.
type Result struct {
	Profiles []domain.Profile
	Message  string
}

func (r Result) Failed() bool {
	return r.Message != ""
}

type Loader struct {
	src     Source
	log     *slog.Logger
	timeout time.Duration
}

func NewLoader(src Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{src: src, log: logger, timeout: 10 * time.Second}
}

// Load fetches the public, approved profiles ordered by graduation year
// (newest first) then name. It never returns an error: a failed fetch is
// logged and surfaces as an empty result with a message.
func (l *Loader) Load(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	rows, err := l.src.QueryDirectory(ctx)
	if err != nil {
		l.log.Warn("directory load failed", slog.String("error", err.Error()))
		return Result{Profiles: []domain.Profile{}, Message: LoadFailedMessage}
	}

	out := make([]domain.Profile, 0, len(rows))
	for _, p := range rows {
		if profile.DirectoryEligible(p) {
			out = append(out, p)
		}
	}
	SortForDirectory(out)

	return Result{Profiles: out}
}

// SortForDirectory orders by graduation year descending (unknown years last),
// then full name ascending.
func SortForDirectory(ps []domain.Profile) {
	sort.SliceStable(ps, func(i, j int) bool {
		yi, yj := year(ps[i]), year(ps[j])
		if yi != yj {
			return yi > yj
		}
		return strings.ToLower(deref(ps[i].FullName)) < strings.ToLower(deref(ps[j].FullName))
	})
}

func year(p domain.Profile) int {
	if p.GraduationYear == nil {
		return 0
	}
	return *p.GraduationYear
}

// View tracks whether the consumer of a load is still mounted. A load that
// finishes after Close is dropped.
type View struct {
	alive atomic.Bool
	done  chan struct{}
}

// Mount starts a background load and hands the result to apply only if the
// view is still alive when it arrives.
func (l *Loader) Mount(ctx context.Context, apply func(Result)) *View {
	v := &View{done: make(chan struct{})}
	v.alive.Store(true)

	go func() {
		defer close(v.done)

		res := l.Load(ctx)
		if !v.alive.Load() {
			l.log.Debug("discarding directory load for closed view")
			return
		}
		apply(res)
	}()

	return v
}

func (v *View) Alive() bool {
	return v.alive.Load()
}

func (v *View) Close() {
	v.alive.Store(false)
}

// Done is closed once the background load has finished or been discarded.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Years lists the distinct graduation years present, newest first. With no
// data it falls back to next year down to the first accepted batch.
func Years(ps []domain.Profile, now time.Time) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, p := range ps {
		y := year(p)
		if y == 0 {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}

	if len(years) == 0 {
		for y := now.Year() + 1; y >= domain.MinGraduationYear; y-- {
			years = append(years, y)
		}
		return years
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
