package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

type SlotState int

const (
	NotLoaded SlotState = iota
	Loading
	Loaded
	Failed
)

func (s SlotState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "not_loaded"
	}
}

type Loader interface {
	LoadSeason(ctx context.Context, year string) (*models.SeasonDataset, error)
}

type slot struct {
	state   SlotState
	dataset *models.SeasonDataset
	err     error
	gen     uint64
}

// Store caches one dataset per season year. A year only exposes data while
// its slot is Loaded; every other state reads as absent.
type Store struct {
	loader      Loader
	concurrency int

	mu    sync.RWMutex
	slots map[string]*slot
}

func NewStore(loader Loader, concurrency int) *Store {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Store{
		loader:      loader,
		concurrency: concurrency,
		slots:       make(map[string]*slot),
	}
}

func (s *Store) Get(year string) (*models.SeasonDataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.slots[year]
	if !ok || sl.state != Loaded {
		return nil, false
	}
	return sl.dataset, true
}

func (s *Store) State(year string) SlotState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[year]; ok {
		return sl.state
	}
	return NotLoaded
}

// Err returns the cause of the last failed load of year, if any.
func (s *Store) Err(year string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[year]; ok && sl.state == Failed {
		return sl.err
	}
	return nil
}

// Load fetches year and replaces whatever the slot held. A failed load
// leaves the year absent even if an earlier load had succeeded.
func (s *Store) Load(ctx context.Context, year string) error {
	gen := s.begin(year)

	dataset, err := s.loader.LoadSeason(ctx, year)

	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.slots[year]
	if sl.gen != gen {
		// A newer load of the same year owns the slot now.
		return err
	}
	if err != nil {
		sl.state, sl.dataset, sl.err = Failed, nil, err
		return err
	}
	sl.state, sl.dataset, sl.err = Loaded, dataset, nil
	return nil
}

func (s *Store) begin(year string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[year]
	if !ok {
		sl = &slot{}
		s.slots[year] = sl
	}
	sl.gen++
	sl.state, sl.dataset, sl.err = Loading, nil, nil
	return sl.gen
}

type LoadReport struct {
	Loaded []string
	Failed map[string]error
}

func (r LoadReport) OK() bool {
	return len(r.Failed) == 0
}

// LoadAll loads every year concurrently and waits for all of them to settle.
// Failures are collected in the report and never stop the other years.
func (s *Store) LoadAll(ctx context.Context, years []string) LoadReport {
	report := LoadReport{Failed: make(map[string]error)}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, year := range years {
		g.Go(func() error {
			err := s.Load(ctx, year)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Error("Failed to load season", "year", year, "error", err)
				report.Failed[year] = err
				return nil
			}
			report.Loaded = append(report.Loaded, year)
			return nil
		})
	}
	_ = g.Wait()

	sort.Sort(sort.Reverse(sort.StringSlice(report.Loaded)))
	return report
}

// Years lists the years that currently expose data, newest first.
func (s *Store) Years() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var years []string
	for year, sl := range s.slots {
		if sl.state == Loaded {
			years = append(years, year)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}
