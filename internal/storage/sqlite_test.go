package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zapgrid/zapgrid/internal/netplay"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("zapgrid", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("zapgrid_vsbot", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("zapgrid", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 zen scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}

	vsScores, err := store.TopScores("zapgrid_vsbot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(vsScores) != 1 {
		t.Errorf("expected 1 vsbot score, got %d", len(vsScores))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("zapgrid", (i+1)*100)
	}

	scores, err := store.TopScores("zapgrid", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("zapgrid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected high score 0 for empty mode, got %d", high)
	}

	store.SaveScore("zapgrid", 100)
	store.SaveScore("zapgrid", 300)
	store.SaveScore("zapgrid", 200)

	high, err = store.HighScore("zapgrid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("expected high score 300, got %d", high)
	}
}

func TestClearScoresIsModeScoped(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("zapgrid", 100)
	store.SaveScore("zapgrid", 200)
	store.SaveScore("zapgrid_vsbot", 300)

	if err := store.ClearScores("zapgrid"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	zenScores, _ := store.TopScores("zapgrid", 10)
	if len(zenScores) != 0 {
		t.Errorf("expected 0 zen scores after clear, got %d", len(zenScores))
	}
	vsScores, _ := store.TopScores("zapgrid_vsbot", 10)
	if len(vsScores) != 1 {
		t.Error("vsbot scores should not be affected by clearing zen")
	}
}

func TestSaveAndQueryMatches(t *testing.T) {
	store := openTestStore(t)

	rec := MatchRecord{
		MatchID:        "match-ABC123-1",
		Seed:           987654321,
		Player1Session: "alice",
		Player2Session: "bob",
		Score1:         100,
		Score2:         74,
		WinnerSession:  "alice",
		EndReason:      "Match completed",
		Duration:       312,
	}
	if _, err := store.SaveMatch(rec); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	got, err := store.MatchByID("match-ABC123-1")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved match not found")
	}
	if got.Seed != rec.Seed || got.WinnerSession != "alice" || got.Score1 != 100 {
		t.Errorf("round trip = %+v, want %+v", got, rec)
	}

	missing, err := store.MatchByID("no-such-match")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if missing != nil {
		t.Error("unknown match ID should return nil")
	}
}

func TestPlayerMatchHistory(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchRecord{MatchID: "m1", Player1Session: "alice", Player2Session: "bob", EndReason: "Match completed"})
	store.SaveMatch(MatchRecord{MatchID: "m2", Player1Session: "carol", Player2Session: "alice", EndReason: "Match completed"})
	store.SaveMatch(MatchRecord{MatchID: "m3", Player1Session: "carol", Player2Session: "bob", EndReason: "Match completed"})

	history, err := store.PlayerMatchHistory("alice", 10)
	if err != nil {
		t.Fatalf("PlayerMatchHistory() failed: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("expected 2 matches for alice on either side, got %d", len(history))
	}

	recent, err := store.RecentMatches(2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 recent matches with limit, got %d", len(recent))
	}
}

func TestSaveMatchResultAdapter(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveMatchResult(netplay.MatchResultData{
		MatchID:        "match-XYZ789-1",
		Seed:           42,
		Player1Session: "host",
		Player2Session: "joiner",
		Score1:         100,
		Score2:         55,
		WinnerSession:  "host",
		EndReason:      "Match completed",
		DurationSecs:   120,
	})
	if err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	got, err := store.MatchByID("match-XYZ789-1")
	if err != nil || got == nil {
		t.Fatalf("adapter did not persist the match: %v", err)
	}
	if got.Seed != 42 || got.Duration != 120 {
		t.Errorf("adapter mapping wrong: %+v", got)
	}
}

func TestModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("zapgrid", 100)
	store.SaveScore("zapgrid", 200)
	store.SaveScore("zapgrid_vsbot", 80)

	stats, err := store.GetModeStats("zapgrid")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 200 || stats.TotalScore != 300 {
		t.Errorf("stats = %+v, want 2 games, high 200, total 300", stats)
	}

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected stats for 2 modes, got %d", len(all))
	}
}
