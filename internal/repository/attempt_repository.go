package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// ErrNotFound is returned when no attempt has the requested id
var ErrNotFound = errors.New("attempt not found")

// timeLayout has a fixed width so created_at sorts as text
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// AttemptRepository handles database operations for analyzed attempts
type AttemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *sql.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Create stores an attempt, assigning its id and creation time when unset
func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}

	metricsJSON, err := json.Marshal(attempt.Metrics)
	if err != nil {
		return fmt.Errorf("failed to serialize metrics: %w", err)
	}

	query := `
		INSERT INTO attempts (id, label, shot_type, shot_confidence, metrics_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.Label,
		string(attempt.Metrics.Category()),
		attempt.Metrics.ShotConfidence,
		string(metricsJSON),
		attempt.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*models.Attempt, error) {
	var (
		attempt     models.Attempt
		metricsJSON string
		createdAt   string
	)
	if err := row.Scan(&attempt.ID, &attempt.Label, &metricsJSON, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(metricsJSON), &attempt.Metrics); err != nil {
		return nil, fmt.Errorf("failed to decode metrics of attempt %s: %w", attempt.ID, err)
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at of attempt %s: %w", attempt.ID, err)
	}
	attempt.CreatedAt = t

	return &attempt, nil
}

// GetByID retrieves an attempt by id
func (r *AttemptRepository) GetByID(ctx context.Context, id string) (*models.Attempt, error) {
	query := `
		SELECT id, label, metrics_json, created_at
		FROM attempts
		WHERE id = ?
	`

	attempt, err := scanAttempt(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}

	return attempt, nil
}

// List retrieves attempts, newest first, optionally filtered by shot type
func (r *AttemptRepository) List(ctx context.Context, shotType string, limit, offset int) ([]*models.Attempt, error) {
	query := `
		SELECT id, label, metrics_json, created_at
		FROM attempts
		WHERE 1=1
	`

	args := []any{}
	if shotType != "" {
		query += " AND shot_type = ?"
		args = append(args, shotType)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	attempts := []*models.Attempt{}
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}

// Delete removes an attempt
func (r *AttemptRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM attempts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete attempt: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}
