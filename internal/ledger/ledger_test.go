package ledger

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/CaptainSharky/Tracker/internal/calendar"
	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/storage"
	"github.com/CaptainSharky/Tracker/internal/storage/sqlite"
)

func newTestLedger(t *testing.T) (*Ledger, storage.Provider) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "tracker.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(store, calendar.New(time.UTC)), store
}

func addTracker(t *testing.T, store storage.Provider, id string) {
	t.Helper()
	err := store.AddTracker(models.Tracker{
		ID:        id,
		Title:     id,
		Schedule:  models.NewSchedule(models.Monday),
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}, "Stuff")
	if err != nil {
		t.Fatalf("AddTracker failed: %v", err)
	}
}

func TestToggleInvolution(t *testing.T) {
	l, store := newTestLedger(t)
	addTracker(t, store, "t1")

	at := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

	before, err := l.IsCompleted("t1", at)
	if err != nil {
		t.Fatalf("IsCompleted failed: %v", err)
	}

	if _, err := l.Toggle("t1", at); err != nil {
		t.Fatalf("first Toggle failed: %v", err)
	}
	if _, err := l.Toggle("t1", at); err != nil {
		t.Fatalf("second Toggle failed: %v", err)
	}

	after, err := l.IsCompleted("t1", at)
	if err != nil {
		t.Fatalf("IsCompleted failed: %v", err)
	}
	if after != before {
		t.Errorf("double toggle changed state: before=%v after=%v", before, after)
	}
}

func TestToggleNormalizesTimeOfDay(t *testing.T) {
	l, store := newTestLedger(t)
	addTracker(t, store, "t1")

	morning := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC)

	nowDone, err := l.Toggle("t1", morning)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !nowDone {
		t.Fatal("expected toggle-on")
	}

	// Same calendar day, different time: must see the morning record
	done, err := l.IsCompleted("t1", evening)
	if err != nil {
		t.Fatalf("IsCompleted failed: %v", err)
	}
	if !done {
		t.Error("completion not visible at a different time of the same day")
	}
}

func TestToggleUnknownTracker(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Toggle("ghost", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompletionCountAccumulates(t *testing.T) {
	l, store := newTestLedger(t)
	addTracker(t, store, "t1")

	// N toggles on N distinct days, no cancellations
	base := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	const n = 5
	for i := 0; i < n; i++ {
		if _, err := l.Toggle("t1", base.AddDate(0, 0, i)); err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
	}

	count, err := l.CompletionCount("t1")
	if err != nil {
		t.Fatalf("CompletionCount failed: %v", err)
	}
	if count != n {
		t.Errorf("count = %d, want %d", count, n)
	}
}

func TestCompletionDaysAscending(t *testing.T) {
	l, store := newTestLedger(t)
	addTracker(t, store, "t1")

	// Insert out of order
	for _, day := range []int{9, 2, 16} {
		at := time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
		if _, err := l.Toggle("t1", at); err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
	}

	days, err := l.CompletionDays("t1")
	if err != nil {
		t.Fatalf("CompletionDays failed: %v", err)
	}

	want := []string{"2025-06-02", "2025-06-09", "2025-06-16"}
	if len(days) != len(want) {
		t.Fatalf("days = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("days = %v, want %v", days, want)
		}
	}
}

func TestRecordsOnDay(t *testing.T) {
	l, store := newTestLedger(t)
	addTracker(t, store, "t1")
	addTracker(t, store, "t2")

	at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for _, id := range []string{"t1", "t2"} {
		if _, err := l.Toggle(id, at); err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
	}

	records, err := l.RecordsOn(at)
	if err != nil {
		t.Fatalf("RecordsOn failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}
