package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"anthyakshari/internal/repository"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string        `json:"version"`
	ExportedAt   time.Time     `json:"exported_at"`
	DatabaseType string        `json:"database_type"`
	Stats        []StatsBackup `json:"stats"`
}

// StatsBackup is one player/language ledger blob for backup. The blob is
// carried as raw JSON so exports stay readable and imports stay byte-exact.
type StatsBackup struct {
	PlayerID  string          `json:"player_id"`
	Language  string          `json:"language"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	stats *repository.StatsRepository
}

// NewBackupService creates a new backup service
func NewBackupService(stats *repository.StatsRepository) *BackupService {
	return &BackupService{stats: stats}
}

// Export creates a complete backup of the stats database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: "universal",
	}

	rows, err := s.stats.ListAll()
	if err != nil {
		return fmt.Errorf("failed to export stats: %w", err)
	}
	for _, row := range rows {
		backup.Stats = append(backup.Stats, StatsBackup{
			PlayerID:  row.PlayerID,
			Language:  row.Language,
			Data:      json.RawMessage(row.Data),
			UpdatedAt: row.UpdatedAt,
		})
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d stats ledgers", len(backup.Stats))

	return nil
}

// Import restores stats ledgers from a backup file. Existing ledgers for the
// same player and language are overwritten.
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	log.Printf("Importing %d stats ledgers...", len(backup.Stats))
	for _, row := range backup.Stats {
		if err := s.stats.SaveBlob(row.PlayerID, row.Language, []byte(row.Data)); err != nil {
			return fmt.Errorf("failed to import stats for player %s (%s): %w", row.PlayerID, row.Language, err)
		}
	}

	log.Println("Database import completed successfully")
	return nil
}
