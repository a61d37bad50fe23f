package service

import (
	"errors"
	"testing"

	"anthyakshari/internal/models"
)

// memStatsStore is an in-memory StatsStore for tests
type memStatsStore struct {
	blobs   map[string][]byte
	loadErr error
	saveErr error
}

func newMemStatsStore() *memStatsStore {
	return &memStatsStore{blobs: make(map[string][]byte)}
}

func (m *memStatsStore) LoadBlob(playerID, language string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.blobs[playerID+"/"+language], nil
}

func (m *memStatsStore) SaveBlob(playerID, language string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.blobs[playerID+"/"+language] = data
	return nil
}

func TestLedgerMissingBlob(t *testing.T) {
	svc := NewStatsService(newMemStatsStore())

	ledger := svc.Ledger("player-1", "telugu")
	if ledger == nil {
		t.Fatal("expected empty ledger, got nil")
	}
	if len(ledger.Games) != 0 {
		t.Errorf("expected 0 games, got %d", len(ledger.Games))
	}
}

func TestLedgerMalformedBlob(t *testing.T) {
	store := newMemStatsStore()
	store.blobs["player-1/telugu"] = []byte("{not json")
	svc := NewStatsService(store)

	ledger := svc.Ledger("player-1", "telugu")
	if len(ledger.Games) != 0 {
		t.Errorf("malformed blob should read as empty ledger, got %d games", len(ledger.Games))
	}
}

func TestLedgerLoadError(t *testing.T) {
	store := newMemStatsStore()
	store.loadErr = errors.New("db down")
	svc := NewStatsService(store)

	ledger := svc.Ledger("player-1", "telugu")
	if len(ledger.Games) != 0 {
		t.Errorf("load failure should read as empty ledger, got %d games", len(ledger.Games))
	}
}

func TestRecordGameAppends(t *testing.T) {
	store := newMemStatsStore()
	svc := NewStatsService(store)

	records := []models.GameRecord{
		{Date: "2025-11-17", Result: models.ResultWin, Score: 100, SolvedOnHint: 1},
		{Date: "2025-11-18", Result: models.ResultLoss, Score: 0, SolvedOnHint: models.SolvedGaveUp},
		{Date: "2025-11-19", Result: models.ResultWin, Score: 80, SolvedOnHint: 2},
	}
	for _, rec := range records {
		if err := svc.RecordGame("player-1", "telugu", rec); err != nil {
			t.Fatalf("RecordGame() error: %v", err)
		}
	}

	ledger := svc.Ledger("player-1", "telugu")
	if len(ledger.Games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(ledger.Games))
	}
	if ledger.Games[1].Result != models.ResultLoss {
		t.Errorf("game order not preserved: %+v", ledger.Games)
	}
	if ledger.Games[2].Score != 80 {
		t.Errorf("expected last score 80, got %d", ledger.Games[2].Score)
	}
}

func TestRecordGameSaveError(t *testing.T) {
	store := newMemStatsStore()
	store.saveErr = errors.New("disk full")
	svc := NewStatsService(store)

	err := svc.RecordGame("player-1", "telugu", models.GameRecord{Result: models.ResultWin})
	if err == nil {
		t.Error("expected error when save fails")
	}
}

func TestRecordGameIsolatedPerLanguage(t *testing.T) {
	svc := NewStatsService(newMemStatsStore())

	if err := svc.RecordGame("player-1", "telugu", models.GameRecord{Result: models.ResultWin, Score: 100, SolvedOnHint: 1}); err != nil {
		t.Fatalf("RecordGame() error: %v", err)
	}

	if n := len(svc.Ledger("player-1", "tamil").Games); n != 0 {
		t.Errorf("tamil ledger should be empty, got %d games", n)
	}
	if n := len(svc.Ledger("player-2", "telugu").Games); n != 0 {
		t.Errorf("other player's ledger should be empty, got %d games", n)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)

	if agg.TotalGames != 0 || agg.Wins != 0 || agg.WinRate != 0 {
		t.Errorf("empty aggregate should be all zero: %+v", agg)
	}
	if agg.AvgScore != 0 {
		t.Errorf("expected AvgScore 0, got %v", agg.AvgScore)
	}
	if agg.CurrentStreak != 0 || agg.BestStreak != 0 {
		t.Errorf("expected zero streaks: %+v", agg)
	}
}

func TestAggregateStreaks(t *testing.T) {
	games := []models.GameRecord{
		{Result: models.ResultWin, Score: 100, SolvedOnHint: 1},
		{Result: models.ResultWin, Score: 80, SolvedOnHint: 2},
		{Result: models.ResultLoss, Score: 0, SolvedOnHint: models.SolvedGaveUp},
		{Result: models.ResultWin, Score: 60, SolvedOnHint: 3},
	}

	agg := Aggregate(games)

	if agg.TotalGames != 4 {
		t.Errorf("TotalGames = %d, want 4", agg.TotalGames)
	}
	if agg.Wins != 3 {
		t.Errorf("Wins = %d, want 3", agg.Wins)
	}
	if agg.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", agg.BestStreak)
	}
	if agg.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", agg.CurrentStreak)
	}
	if agg.WinRate != 75 {
		t.Errorf("WinRate = %d, want 75", agg.WinRate)
	}
	if agg.AvgScore != 60.0 {
		t.Errorf("AvgScore = %v, want 60.0", agg.AvgScore)
	}
}

func TestAggregateWinRateRounding(t *testing.T) {
	games := []models.GameRecord{
		{Result: models.ResultWin, Score: 100, SolvedOnHint: 1},
		{Result: models.ResultWin, Score: 100, SolvedOnHint: 1},
		{Result: models.ResultLoss, SolvedOnHint: models.SolvedGaveUp},
	}

	agg := Aggregate(games)
	if agg.WinRate != 67 {
		t.Errorf("WinRate = %d, want 67 (2/3 rounded)", agg.WinRate)
	}
}

func TestAggregateDistribution(t *testing.T) {
	games := []models.GameRecord{
		{Result: models.ResultWin, SolvedOnHint: 1},
		{Result: models.ResultWin, SolvedOnHint: 1},
		{Result: models.ResultWin, SolvedOnHint: 3},
		{Result: models.ResultWin, SolvedOnHint: 5},
		{Result: models.ResultLoss, SolvedOnHint: models.SolvedGaveUp},
		{Result: models.ResultLoss, SolvedOnHint: models.SolvedGaveUp},
	}

	agg := Aggregate(games)
	d := agg.Distribution

	if d.Hint1 != 2 || d.Hint2 != 0 || d.Hint3 != 1 || d.Hint4 != 0 || d.Hint5 != 1 {
		t.Errorf("win buckets = %+v", d)
	}
	if d.GaveUp != 2 {
		t.Errorf("GaveUp = %d, want 2", d.GaveUp)
	}
}

func TestAggregateIgnoresOutOfRangeBucket(t *testing.T) {
	games := []models.GameRecord{
		{Result: models.ResultWin, SolvedOnHint: 7},
	}

	agg := Aggregate(games)
	d := agg.Distribution

	if d.Hint1+d.Hint2+d.Hint3+d.Hint4+d.Hint5 != 0 {
		t.Errorf("out-of-range hint number should not land in a bucket: %+v", d)
	}
	if agg.Wins != 1 {
		t.Errorf("win still counts toward totals, Wins = %d", agg.Wins)
	}
}
