package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/keysubmit/models"
)

// SubmissionRepository handles submission audit persistence
type SubmissionRepository interface {
	Create(ctx context.Context, record *models.SubmissionRecord) error
	GetRecent(ctx context.Context, limit int) ([]models.SubmissionRecord, error)
	Count(ctx context.Context) (int, error)
	CountByOutcome(ctx context.Context) (map[string]int, error)
}

type sqliteSubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &sqliteSubmissionRepository{db: db}
}

// Create inserts a new submission record and sets its ID
func (r *sqliteSubmissionRepository) Create(ctx context.Context, record *models.SubmissionRecord) error {
	query := `
		INSERT INTO submissions (timestamp, form_id, endpoint, field_names, status_code, outcome, error, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	fieldNames, err := models.EncodeFieldNames(record.FieldNames)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(
		ctx,
		query,
		record.Timestamp,
		record.FormID,
		record.Endpoint,
		fieldNames,
		record.StatusCode,
		record.Outcome,
		record.Error,
		int64(record.Duration),
	)
	if err != nil {
		return fmt.Errorf("failed to create submission record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get submission record ID: %w", err)
	}
	record.ID = id

	return nil
}

// GetRecent retrieves the newest submission records first
func (r *sqliteSubmissionRepository) GetRecent(ctx context.Context, limit int) ([]models.SubmissionRecord, error) {
	query := `
		SELECT id, timestamp, form_id, endpoint, field_names, status_code, outcome, error, duration_ns
		FROM submissions
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submission records: %w", err)
	}
	defer rows.Close()

	var records []models.SubmissionRecord
	for rows.Next() {
		var record models.SubmissionRecord
		var fieldNames string
		var duration int64

		err := rows.Scan(
			&record.ID,
			&record.Timestamp,
			&record.FormID,
			&record.Endpoint,
			&fieldNames,
			&record.StatusCode,
			&record.Outcome,
			&record.Error,
			&duration,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission record: %w", err)
		}

		record.FieldNames, err = models.DecodeFieldNames(fieldNames)
		if err != nil {
			return nil, err
		}
		record.Duration = time.Duration(duration)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission records: %w", err)
	}

	return records, nil
}

// Count returns the total number of submission records
func (r *sqliteSubmissionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM submissions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count submission records: %w", err)
	}
	return count, nil
}

// CountByOutcome returns the number of submission records per outcome
func (r *sqliteSubmissionRepository) CountByOutcome(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT outcome, COUNT(*) FROM submissions GROUP BY outcome")
	if err != nil {
		return nil, fmt.Errorf("failed to count submission records by outcome: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, fmt.Errorf("failed to scan outcome count: %w", err)
		}
		counts[outcome] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outcome counts: %w", err)
	}

	return counts, nil
}
