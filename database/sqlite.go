package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// auditBusyTimeout is how long, in milliseconds, an audit write waits on a
// locked database file before failing
const auditBusyTimeout = 5000

var db *sql.DB

// OpenAuditDB opens the submission audit store at path. A plain file path
// gets its parent directory created and is opened in WAL mode so the
// history command can read while a host server is recording.
func OpenAuditDB(path string) error {
	if path == "" {
		return fmt.Errorf("audit database path is required")
	}

	if isFilePath(path) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create audit database directory: %w", err)
			}
		}
	}

	var err error
	db, err = sql.Open("sqlite3", auditDSN(path))
	if err != nil {
		return fmt.Errorf("failed to open audit database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping audit database: %w", err)
	}

	// dispatch goroutines write concurrently; one connection queues them and
	// keeps a :memory: store shared
	db.SetMaxOpenConns(1)

	return nil
}

// auditDSN adds the go-sqlite3 connection parameters the audit store needs
func auditDSN(path string) string {
	params := fmt.Sprintf("_busy_timeout=%d", auditBusyTimeout)
	if !strings.Contains(path, ":memory:") {
		params += "&_journal_mode=WAL"
	}

	if !isFilePath(path) {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + params
	}
	return "file:" + path + "?" + params
}

func isFilePath(path string) bool {
	return path != ":memory:" && !strings.HasPrefix(path, "file:")
}

// InitializeDatabase opens the audit store and runs migrations
func InitializeDatabase(path string) error {
	if err := OpenAuditDB(path); err != nil {
		return err
	}

	if err := RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
