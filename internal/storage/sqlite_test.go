package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	runs := []Session{
		{Backend: "window", StartedAt: base, Duration: 2 * time.Second, Frames: 120, Bounces: 3},
		{Backend: "terminal", StartedAt: base.Add(time.Minute), Duration: time.Second, Frames: 30},
		{Backend: "window", StartedAt: base.Add(2 * time.Minute), Duration: time.Second, Frames: 144},
	}
	for _, r := range runs {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(recent))
	}

	// Newest first
	if recent[0].Frames != 144 || recent[2].Frames != 120 {
		t.Errorf("Sessions out of order: %+v", recent)
	}

	first := recent[2]
	if first.Backend != "window" || first.Bounces != 3 {
		t.Errorf("Unexpected session: %+v", first)
	}
	if !first.StartedAt.Equal(base) {
		t.Errorf("StartedAt = %v, expected %v", first.StartedAt, base)
	}
	if first.Duration != 2*time.Second {
		t.Errorf("Duration = %v, expected 2s", first.Duration)
	}
	if first.AvgFPS != 60 {
		t.Errorf("AvgFPS = %f, expected derived 60", first.AvgFPS)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		if _, err := store.SaveSession(Session{Backend: "headless", Frames: i}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{5, 5},
		{0, 20}, // default
		{100, 25},
	}
	for _, tc := range tests {
		sessions, err := store.RecentSessions(tc.limit)
		if err != nil {
			t.Fatalf("RecentSessions(%d) failed: %v", tc.limit, err)
		}
		if len(sessions) != tc.expected {
			t.Errorf("RecentSessions(%d) returned %d, expected %d", tc.limit, len(sessions), tc.expected)
		}
	}
}

func TestStoreBestSession(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSession("window")
	if err != nil {
		t.Fatalf("BestSession() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best session on empty store, got %+v", best)
	}

	store.SaveSession(Session{Backend: "window", AvgFPS: 59.9})
	store.SaveSession(Session{Backend: "window", AvgFPS: 143.2})
	store.SaveSession(Session{Backend: "terminal", AvgFPS: 500})

	best, err = store.BestSession("window")
	if err != nil {
		t.Fatalf("BestSession() failed: %v", err)
	}
	if best == nil || best.AvgFPS != 143.2 {
		t.Errorf("BestSession() = %+v, expected 143.2 fps", best)
	}
}

func TestStoreCountAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{Backend: "window"})
	store.SaveSession(Session{Backend: "window"})
	store.SaveSession(Session{Backend: "ssh"})

	if n, _ := store.Count(""); n != 3 {
		t.Errorf("Count(\"\") = %d, expected 3", n)
	}
	if n, _ := store.Count("window"); n != 2 {
		t.Errorf("Count(window) = %d, expected 2", n)
	}

	if err := store.ClearSessions("window"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if n, _ := store.Count("window"); n != 0 {
		t.Errorf("Count(window) after clear = %d, expected 0", n)
	}
	if n, _ := store.Count("ssh"); n != 1 {
		t.Errorf("Clearing one backend should not affect another, got %d", n)
	}
}

func TestStoreRejectsAnonymousSession(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(Session{Frames: 1}); err == nil {
		t.Error("SaveSession() without a backend should fail")
	}
}

func TestStoreBackendStats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	store.SaveSession(Session{Backend: "window", StartedAt: base, Frames: 100, AvgFPS: 50})
	store.SaveSession(Session{Backend: "window", StartedAt: base.Add(time.Hour), Frames: 300, AvgFPS: 150})
	store.SaveSession(Session{Backend: "terminal", StartedAt: base, Frames: 10, AvgFPS: 30})

	stats, err := store.AllBackendStats()
	if err != nil {
		t.Fatalf("AllBackendStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 backends, got %d", len(stats))
	}

	w := stats["window"]
	if w.Runs != 2 || w.TotalFrames != 400 || w.BestFPS != 150 || w.AvgFPS != 100 {
		t.Errorf("Unexpected window stats: %+v", w)
	}
	if !w.LastRun.Equal(base.Add(time.Hour)) {
		t.Errorf("LastRun = %v, expected %v", w.LastRun, base.Add(time.Hour))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
