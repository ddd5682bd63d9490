package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore(DefaultKey)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}
}

func TestSaveHighScoreKeepsBest(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		score   int
		changed bool
		want    int
	}{
		{100, true, 100},
		{50, false, 100},
		{100, false, 100},
		{250, true, 250},
	}

	for i, step := range steps {
		changed, err := store.SaveHighScore(DefaultKey, step.score)
		if err != nil {
			t.Fatalf("step %d: SaveHighScore() failed: %v", i, err)
		}
		if changed != step.changed {
			t.Errorf("step %d: changed = %v, want %v", i, changed, step.changed)
		}
		got, err := store.HighScore(DefaultKey)
		if err != nil {
			t.Fatalf("step %d: HighScore() failed: %v", i, err)
		}
		if got != step.want {
			t.Errorf("step %d: HighScore() = %d, want %d", i, got, step.want)
		}
	}
}

func TestBestScoresPerKey(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		key   string
		score int
	}{
		{"alice", 300},
		{"bob", 120},
		{"alice", 90},
		{"carol", 500},
		{"bob", 410},
	}
	for _, s := range saves {
		if _, err := store.SaveHighScore(s.key, s.score); err != nil {
			t.Fatalf("SaveHighScore(%s) failed: %v", s.key, err)
		}
	}

	entries, err := store.BestScores(10)
	if err != nil {
		t.Fatalf("BestScores() failed: %v", err)
	}

	want := []struct {
		key   string
		score int
	}{
		{"carol", 500},
		{"bob", 410},
		{"alice", 300},
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Key != w.key || entries[i].Score != w.score {
			t.Errorf("entry %d = %s/%d, want %s/%d", i, entries[i].Key, entries[i].Score, w.key, w.score)
		}
	}

	top, err := store.BestScores(1)
	if err != nil {
		t.Fatalf("BestScores(1) failed: %v", err)
	}
	if len(top) != 1 || top[0].Key != "carol" {
		t.Errorf("BestScores(1) = %+v", top)
	}
}

func TestClearHighScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveHighScore("alice", 42); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveHighScore("bob", 7); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearHighScore("alice"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}

	if got, _ := store.HighScore("alice"); got != 0 {
		t.Errorf("alice = %d after clear, want 0", got)
	}
	if got, _ := store.HighScore("bob"); got != 7 {
		t.Errorf("bob = %d, want 7", got)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store1.SaveHighScore(DefaultKey, 999); err != nil {
		t.Fatal(err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	score, err := store2.HighScore(DefaultKey)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 999 {
		t.Errorf("Expected persisted score 999, got %d", score)
	}
}
