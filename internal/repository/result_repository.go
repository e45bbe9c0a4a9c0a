package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ResultRepository persists analysis results. JSON-shaped fields (metrics,
// landmarks, plans) are stored as serialized columns; nil slices and maps
// round-trip as SQL NULL so a loaded result equals the saved one.
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a repository on the given connection.
func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Save inserts an analysis result.
func (r *ResultRepository) Save(result *models.AnalysisResult) error {
	metrics, err := json.Marshal(result.Metrics)
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}

	actionPlan, err := marshalNullable(result.ActionPlan)
	if err != nil {
		return fmt.Errorf("failed to encode action plan: %w", err)
	}
	conditions, err := marshalNullable(result.PotentialConditions)
	if err != nil {
		return fmt.Errorf("failed to encode conditions: %w", err)
	}
	images, err := marshalNullable(result.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}
	landmarks, err := marshalNullable(result.Landmarks)
	if err != nil {
		return fmt.Errorf("failed to encode landmarks: %w", err)
	}
	allLandmarks, err := marshalNullable(result.AllLandmarks)
	if err != nil {
		return fmt.Errorf("failed to encode all landmarks: %w", err)
	}
	userInfo, err := marshalNullable(result.UserInfo)
	if err != nil {
		return fmt.Errorf("failed to encode user info: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO analysis_results
		(id, date, score, view, metrics, action_plan, potential_conditions, image_url, images, landmarks, all_landmarks, user_info)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.Date, result.Score, string(result.View), string(metrics),
		actionPlan, conditions, nullString(result.ImageURL), images, landmarks, allLandmarks, userInfo,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis result: %w", err)
	}
	return nil
}

// List returns all results, newest first.
func (r *ResultRepository) List() ([]*models.AnalysisResult, error) {
	rows, err := r.db.Query(`SELECT id, date, score, view, metrics, action_plan, potential_conditions, image_url, images, landmarks, all_landmarks, user_info
		FROM analysis_results ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis results: %w", err)
	}
	defer rows.Close()

	var results []*models.AnalysisResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis results: %w", err)
	}
	return results, nil
}

// GetByID returns one result, or ErrNotFound.
func (r *ResultRepository) GetByID(id string) (*models.AnalysisResult, error) {
	row := r.db.QueryRow(`SELECT id, date, score, view, metrics, action_plan, potential_conditions, image_url, images, landmarks, all_landmarks, user_info
		FROM analysis_results WHERE id = ?`, id)
	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return result, err
}

// Delete removes one result, or returns ErrNotFound.
func (r *ResultRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM analysis_results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*models.AnalysisResult, error) {
	var (
		result     models.AnalysisResult
		view       string
		metrics    string
		actionPlan sql.NullString
		conditions sql.NullString
		imageURL   sql.NullString
		images     sql.NullString
		landmarks  sql.NullString
		allLm      sql.NullString
		userInfo   sql.NullString
	)
	err := row.Scan(&result.ID, &result.Date, &result.Score, &view, &metrics,
		&actionPlan, &conditions, &imageURL, &images, &landmarks, &allLm, &userInfo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan analysis result: %w", err)
	}

	result.View = models.View(view)
	result.ImageURL = imageURL.String
	if err := json.Unmarshal([]byte(metrics), &result.Metrics); err != nil {
		return nil, fmt.Errorf("failed to decode metrics: %w", err)
	}
	if err := unmarshalNullable(actionPlan, &result.ActionPlan); err != nil {
		return nil, fmt.Errorf("failed to decode action plan: %w", err)
	}
	if err := unmarshalNullable(conditions, &result.PotentialConditions); err != nil {
		return nil, fmt.Errorf("failed to decode conditions: %w", err)
	}
	if err := unmarshalNullable(images, &result.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	if err := unmarshalNullable(landmarks, &result.Landmarks); err != nil {
		return nil, fmt.Errorf("failed to decode landmarks: %w", err)
	}
	if err := unmarshalNullable(allLm, &result.AllLandmarks); err != nil {
		return nil, fmt.Errorf("failed to decode all landmarks: %w", err)
	}
	if err := unmarshalNullable(userInfo, &result.UserInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &result, nil
}

// marshalNullable serializes v, mapping nil slices/maps/pointers to NULL.
func marshalNullable(v any) (sql.NullString, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	if string(raw) == "null" {
		return sql.NullString{}, nil
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func unmarshalNullable(s sql.NullString, dest any) error {
	if !s.Valid {
		return nil
	}
	return json.Unmarshal([]byte(s.String), dest)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
