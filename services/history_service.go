package services

import (
	"context"
	"fmt"

	"github.com/blogem/keysubmit/models"
	"github.com/blogem/keysubmit/repositories"
)

// DefaultHistoryLimit is used when a caller asks for a non-positive limit
const DefaultHistoryLimit = 20

// MaxHistoryLimit caps a single history query
const MaxHistoryLimit = 500

// HistoryService reads the submission audit trail
type HistoryService interface {
	GetRecent(ctx context.Context, limit int) ([]models.SubmissionRecord, error)
	GetSummary(ctx context.Context) (*HistorySummary, error)
}

// HistorySummary totals the whole audit trail and carries the newest records
type HistorySummary struct {
	Total     int                       `json:"total"`
	Recent    []models.SubmissionRecord `json:"recent"`
	Successes int                       `json:"successes"`
	Failures  int                       `json:"failures"`
}

type historyService struct {
	submissionRepo repositories.SubmissionRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(submissionRepo repositories.SubmissionRepository) HistoryService {
	return &historyService{submissionRepo: submissionRepo}
}

// GetRecent retrieves the newest records, clamping limit to a sane range
func (s *historyService) GetRecent(ctx context.Context, limit int) ([]models.SubmissionRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.submissionRepo.GetRecent(ctx, limit)
}

// GetSummary counts all records by outcome and attaches the recent ones
func (s *historyService) GetSummary(ctx context.Context) (*HistorySummary, error) {
	total, err := s.submissionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	byOutcome, err := s.submissionRepo.CountByOutcome(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions by outcome: %w", err)
	}

	recent, err := s.GetRecent(ctx, DefaultHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent submissions: %w", err)
	}

	return &HistorySummary{
		Total:     total,
		Recent:    recent,
		Successes: byOutcome[models.OutcomeSuccess],
		Failures:  byOutcome[models.OutcomeFailure],
	}, nil
}
