package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

// GameRepository persists finished game runs.
type GameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a repository on the given connection.
func NewGameRepository(db *sql.DB) *GameRepository {
	return &GameRepository{db: db}
}

// SaveRun records one finished run.
func (r *GameRepository) SaveRun(id string, summary models.GameSummary, playedAt time.Time) error {
	_, err := r.db.Exec(`INSERT INTO game_results (id, level_id, score, max_combo, played_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, summary.LevelID, summary.Score, summary.MaxCombo, playedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert game result: %w", err)
	}
	return nil
}

// BestForLevel returns the highest-scoring run of a level, or ErrNotFound
// if the level has never been completed.
func (r *GameRepository) BestForLevel(levelID string) (*models.GameSummary, error) {
	var summary models.GameSummary
	err := r.db.QueryRow(`SELECT level_id, score, max_combo FROM game_results
		WHERE level_id = ? ORDER BY score DESC LIMIT 1`, levelID).
		Scan(&summary.LevelID, &summary.Score, &summary.MaxCombo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query best run: %w", err)
	}
	return &summary, nil
}
