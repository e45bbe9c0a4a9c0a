package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration is one versioned schema change. Versions must be unique and
// strictly increasing in the migrations slice.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_analysis_results",
		SQL: `CREATE TABLE IF NOT EXISTS analysis_results (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			score INTEGER NOT NULL,
			view TEXT NOT NULL,
			metrics TEXT NOT NULL,
			action_plan TEXT,
			potential_conditions TEXT,
			image_url TEXT,
			images TEXT,
			landmarks TEXT,
			all_landmarks TEXT,
			user_info TEXT,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_results_date ON analysis_results(date DESC);`,
	},
	{
		Version: 2,
		Name:    "create_game_results",
		SQL: `CREATE TABLE IF NOT EXISTS game_results (
			id TEXT PRIMARY KEY,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_combo INTEGER NOT NULL,
			played_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_game_results_level ON game_results(level_id, score DESC);`,
	},
}

// Migrate applies all migrations newer than the recorded schema version.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("[Database] applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}
