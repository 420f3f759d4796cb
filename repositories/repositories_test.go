package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/blogem/keysubmit/database"
	"github.com/blogem/keysubmit/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test.db")

	t.Cleanup(func() {
		database.CloseDB()
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func TestSubmissionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	// Test Create
	first := &models.SubmissionRecord{
		Timestamp:  base,
		FormID:     "submit_key",
		Endpoint:   "http://localhost:8000/poloniex/balance/",
		FieldNames: []string{"key", "secret"},
		StatusCode: 200,
		Outcome:    models.OutcomeSuccess,
		Duration:   150 * time.Millisecond,
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Failed to create submission record: %v", err)
	}
	if first.ID == 0 {
		t.Error("Expected record ID to be set after creation")
	}

	second := &models.SubmissionRecord{
		Timestamp:  base.Add(time.Minute),
		FormID:     "submit_key",
		Endpoint:   "http://localhost:8000/poloniex/balance/",
		FieldNames: []string{"key"},
		StatusCode: 500,
		Outcome:    models.OutcomeFailure,
		Error:      "unexpected response status: 500",
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Failed to create submission record: %v", err)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count submission records: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 records, got %d", count)
	}

	// Test GetRecent ordering and round trip
	records, err := repo.GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	newest := records[0]
	if newest.ID != second.ID {
		t.Errorf("Expected newest record %d first, got %d", second.ID, newest.ID)
	}
	if newest.Succeeded() {
		t.Error("Expected newest record to be a failure")
	}
	if newest.Error != second.Error {
		t.Errorf("Expected error %q, got %q", second.Error, newest.Error)
	}

	oldest := records[1]
	if !oldest.Timestamp.Equal(base) {
		t.Errorf("Expected timestamp %v, got %v", base, oldest.Timestamp)
	}
	if len(oldest.FieldNames) != 2 || oldest.FieldNames[0] != "key" || oldest.FieldNames[1] != "secret" {
		t.Errorf("Unexpected field names: %v", oldest.FieldNames)
	}
	if oldest.Duration != 150*time.Millisecond {
		t.Errorf("Expected duration 150ms, got %v", oldest.Duration)
	}

	// Test limit
	limited, err := repo.GetRecent(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get limited records: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 record, got %d", len(limited))
	}
}

func TestSubmissionRepository_DefaultTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	record := &models.SubmissionRecord{FormID: "submit_key", Endpoint: "/x", Outcome: models.OutcomeFailure}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Failed to create submission record: %v", err)
	}
	if record.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestSubmissionRepository_CountByOutcome(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		outcome := models.OutcomeSuccess
		if i%5 == 0 {
			outcome = models.OutcomeFailure
		}
		record := &models.SubmissionRecord{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			FormID:    "submit_key",
			Endpoint:  "/poloniex/balance/",
			Outcome:   outcome,
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Failed to create submission record: %v", err)
		}
	}

	counts, err := repo.CountByOutcome(ctx)
	if err != nil {
		t.Fatalf("Failed to count by outcome: %v", err)
	}
	if counts[models.OutcomeSuccess] != 20 {
		t.Errorf("Expected 20 successes, got %d", counts[models.OutcomeSuccess])
	}
	if counts[models.OutcomeFailure] != 5 {
		t.Errorf("Expected 5 failures, got %d", counts[models.OutcomeFailure])
	}
}

func TestSubmissionRepository_FieldNamesWithSeparators(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	record := &models.SubmissionRecord{
		FormID:     "submit_key",
		Endpoint:   "/poloniex/balance/",
		FieldNames: []string{"a,b", "key"},
		Outcome:    models.OutcomeSuccess,
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Failed to create submission record: %v", err)
	}

	records, err := repo.GetRecent(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get recent records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if got := records[0].FieldNames; len(got) != 2 || got[0] != "a,b" || got[1] != "key" {
		t.Errorf("Unexpected field names: %v", got)
	}
}
