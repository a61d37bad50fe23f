package service

import (
	"encoding/json"
	"fmt"
	"math"

	"anthyakshari/internal/models"
)

// StatsStore is the persistence boundary for per-player statistics. The
// ledger travels as an opaque blob; the store never interprets it.
type StatsStore interface {
	LoadBlob(playerID, language string) ([]byte, error)
	SaveBlob(playerID, language string, data []byte) error
}

// StatsService keeps the append-only ledger of completed games and computes
// aggregates on demand
type StatsService struct {
	store StatsStore
}

// NewStatsService creates a new stats service
func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

// Ledger loads the player's ledger for a language. A missing or malformed
// blob is treated as an empty ledger, never surfaced as an error.
func (s *StatsService) Ledger(playerID, language string) *models.Ledger {
	ledger := &models.Ledger{}

	data, err := s.store.LoadBlob(playerID, language)
	if err != nil || len(data) == 0 {
		return ledger
	}

	if err := json.Unmarshal(data, ledger); err != nil {
		// Unparseable stats are indistinguishable from absent stats
		return &models.Ledger{}
	}
	return ledger
}

// RecordGame appends one completed game to the player's ledger and saves it.
// The ledger never rejects a record; exactly-once completion is the game
// service's responsibility.
func (s *StatsService) RecordGame(playerID, language string, rec models.GameRecord) error {
	ledger := s.Ledger(playerID, language)
	ledger.Games = append(ledger.Games, rec)

	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	if err := s.store.SaveBlob(playerID, language, data); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// AggregatesFor computes the player's aggregates for a language
func (s *StatsService) AggregatesFor(playerID, language string) models.Aggregates {
	return Aggregate(s.Ledger(playerID, language).Games)
}

// Aggregate computes statistics over games in chronological append order
func Aggregate(games []models.GameRecord) models.Aggregates {
	agg := models.Aggregates{TotalGames: len(games)}
	if len(games) == 0 {
		return agg
	}

	scoreSum := 0
	streak := 0
	for _, g := range games {
		scoreSum += g.Score

		if g.Result == models.ResultWin {
			agg.Wins++
			streak++
			if streak > agg.BestStreak {
				agg.BestStreak = streak
			}
			bucketWin(&agg.Distribution, g.SolvedOnHint)
		} else {
			streak = 0
			agg.Distribution.GaveUp++
		}
	}

	// The trailing streak, not necessarily the best one
	agg.CurrentStreak = streak

	agg.WinRate = int(math.Round(float64(agg.Wins) / float64(agg.TotalGames) * 100))
	agg.AvgScore = math.Round(float64(scoreSum)/float64(agg.TotalGames)*10) / 10

	return agg
}

// bucketWin increments the distribution bucket for a winning hint number.
// Values outside 1..5 should not occur given the hint-count bounds, but are
// ignored rather than crashing.
func bucketWin(d *models.Distribution, solvedOnHint int) {
	switch solvedOnHint {
	case 1:
		d.Hint1++
	case 2:
		d.Hint2++
	case 3:
		d.Hint3++
	case 4:
		d.Hint4++
	case 5:
		d.Hint5++
	}
}
