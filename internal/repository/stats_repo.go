package repository

import (
	"database/sql"
	"errors"
	"time"

	"anthyakshari/internal/database"
)

// StatsRepository persists per-player statistics blobs keyed by player and
// language. The blob content is opaque at this layer.
type StatsRepository struct {
	db *database.DB
}

// StatsRow is one persisted ledger blob, exposed for the backup tool
type StatsRow struct {
	PlayerID  string
	Language  string
	Data      []byte
	UpdatedAt time.Time
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// LoadBlob fetches the stored ledger blob, or nil when nothing is stored
func (r *StatsRepository) LoadBlob(playerID, language string) ([]byte, error) {
	query := `
		SELECT data FROM game_stats
		WHERE player_id = ? AND language = ?
	`

	var data []byte
	err := r.db.QueryRow(query, playerID, language).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SaveBlob stores the ledger blob, replacing any previous version.
// Update-then-insert keeps the statement portable across all three dialects.
func (r *StatsRepository) SaveBlob(playerID, language string, data []byte) error {
	update := `
		UPDATE game_stats
		SET data = ?, updated_at = ?
		WHERE player_id = ? AND language = ?
	`

	result, err := r.db.Exec(update, data, time.Now(), playerID, language)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	insert := `
		INSERT INTO game_stats (player_id, language, data, updated_at)
		VALUES (?, ?, ?, ?)
	`
	_, err = r.db.Exec(insert, playerID, language, data, time.Now())
	return err
}

// ListAll returns every stored stats row, for backup export
func (r *StatsRepository) ListAll() ([]StatsRow, error) {
	query := `
		SELECT player_id, language, data, updated_at
		FROM game_stats
		ORDER BY player_id, language
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []StatsRow
	for rows.Next() {
		var row StatsRow
		if err := rows.Scan(&row.PlayerID, &row.Language, &row.Data, &row.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
