package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

type fakeLoader struct {
	mu    sync.Mutex
	fail  map[string]error
	calls map[string]int
	// gate, when set for a year, blocks that year's load until closed.
	gate map[string]chan struct{}
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		fail:  make(map[string]error),
		calls: make(map[string]int),
		gate:  make(map[string]chan struct{}),
	}
}

func (f *fakeLoader) LoadSeason(ctx context.Context, year string) (*models.SeasonDataset, error) {
	f.mu.Lock()
	f.calls[year]++
	err := f.fail[year]
	gate := f.gate[year]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &models.SeasonDataset{Year: year}, nil
}

func (f *fakeLoader) callCount(year string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[year]
}

func TestStore_Get_NotLoaded(t *testing.T) {
	s := NewStore(newFakeLoader(), 2)
	if ds, ok := s.Get("2024"); ok || ds != nil {
		t.Errorf("Get() on empty store = %v, %v", ds, ok)
	}
	if st := s.State("2024"); st != NotLoaded {
		t.Errorf("State() = %v, want not_loaded", st)
	}
}

func TestStore_LoadAll_IsolatesFailures(t *testing.T) {
	loader := newFakeLoader()
	loader.fail["2023"] = errors.New("fetch failed")
	s := NewStore(loader, 2)

	report := s.LoadAll(context.Background(), []string{"2023", "2024"})

	if ds, ok := s.Get("2024"); !ok || ds.Year != "2024" {
		t.Errorf("Get(2024) = %v, %v", ds, ok)
	}
	if _, ok := s.Get("2023"); ok {
		t.Error("Get(2023) should be absent after a failed load")
	}
	if s.State("2023") != Failed || s.Err("2023") == nil {
		t.Errorf("2023 state = %v err = %v", s.State("2023"), s.Err("2023"))
	}
	if report.OK() || len(report.Failed) != 1 || len(report.Loaded) != 1 || report.Loaded[0] != "2024" {
		t.Errorf("report = %+v", report)
	}
}

func TestStore_Reload_Replaces(t *testing.T) {
	loader := newFakeLoader()
	s := NewStore(loader, 1)
	ctx := context.Background()

	if err := s.Load(ctx, "2024"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	first, _ := s.Get("2024")

	if err := s.Load(ctx, "2024"); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	second, _ := s.Get("2024")
	if first == second {
		t.Error("reload should replace the dataset")
	}

	loader.fail["2024"] = errors.New("gone")
	if err := s.Load(ctx, "2024"); err == nil {
		t.Fatal("expected reload error")
	}
	if _, ok := s.Get("2024"); ok {
		t.Error("failed reload should leave the year absent")
	}
}

func TestStore_LoadingIsAbsent(t *testing.T) {
	loader := newFakeLoader()
	gate := make(chan struct{})
	loader.gate["2022"] = gate
	s := NewStore(loader, 1)

	done := make(chan error)
	go func() { done <- s.Load(context.Background(), "2022") }()

	for s.State("2022") != Loading {
	}
	if _, ok := s.Get("2022"); ok {
		t.Error("a loading year should read as absent")
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.State("2022") != Loaded {
		t.Errorf("State() = %v, want loaded", s.State("2022"))
	}
}

func TestStore_StaleLoadDiscarded(t *testing.T) {
	loader := newFakeLoader()
	slow := make(chan struct{})
	loader.gate["2021"] = slow
	loader.fail["2021"] = errors.New("slow failure")
	s := NewStore(loader, 1)

	done := make(chan error)
	go func() { done <- s.Load(context.Background(), "2021") }()
	for loader.callCount("2021") == 0 {
	}

	loader.mu.Lock()
	delete(loader.gate, "2021")
	delete(loader.fail, "2021")
	loader.mu.Unlock()

	if err := s.Load(context.Background(), "2021"); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}

	close(slow)
	<-done

	if _, ok := s.Get("2021"); !ok {
		t.Error("stale failure overwrote the newer successful load")
	}
}

func TestStore_Years(t *testing.T) {
	loader := newFakeLoader()
	loader.fail["2020"] = errors.New("nope")
	s := NewStore(loader, 3)

	s.LoadAll(context.Background(), []string{"2020", "2022", "2021"})

	got := s.Years()
	if len(got) != 2 || got[0] != "2022" || got[1] != "2021" {
		t.Errorf("Years() = %v, want [2022 2021]", got)
	}
}
