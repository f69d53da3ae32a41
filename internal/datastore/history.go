// Package datastore persists an audit trail of tool invocations.
package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// HistoryStore wraps the SQL database connection recording tool invocations.
type HistoryStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// InvocationEntry represents a record in the invocation_history table.
type InvocationEntry struct {
	ID         int64
	ToolName   string
	Locator    string
	Success    bool
	Error      string
	DurationMs int64
	CreatedAt  time.Time
}

// NewHistoryStore initializes a new store and ensures the schema is set up.
func NewHistoryStore(dataSourceName string, logger zerolog.Logger) (*HistoryStore, error) {
	logger = logger.With().Str("component", "HistoryStore").Logger()

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history database directory %s: %w", dbDir, err)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}

	store := &HistoryStore{
		db:     dbInstance,
		logger: logger,
	}

	if err := store.initSchema(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info().Str("db_path", dataSourceName).Msg("Invocation history store initialized")
	return store, nil
}

// Close closes the database connection.
func (h *HistoryStore) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// initSchema creates the invocation_history table if it doesn't already exist.
func (h *HistoryStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS invocation_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool_name TEXT NOT NULL,
		locator TEXT NOT NULL,
		success INTEGER NOT NULL,
		error_message TEXT,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	if _, err := h.db.Exec(query); err != nil {
		h.logger.Error().Err(err).Msg("Failed to initialize history schema")
		return err
	}
	return nil
}

// RecordInvocation inserts a new invocation record. Recording is best
// effort bookkeeping; callers log failures instead of failing the call.
func (h *HistoryStore) RecordInvocation(entry InvocationEntry) error {
	query := `INSERT INTO invocation_history (tool_name, locator, success, error_message, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := h.db.Exec(query,
		entry.ToolName,
		entry.Locator,
		boolToInt(entry.Success),
		sql.NullString{String: entry.Error, Valid: entry.Error != ""},
		entry.DurationMs,
		createdAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert invocation record: %w", err)
	}
	return nil
}

// RecentInvocations returns up to limit records, newest first.
func (h *HistoryStore) RecentInvocations(limit int) ([]InvocationEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := h.db.Query(`
		SELECT id, tool_name, locator, success, error_message, duration_ms, created_at
		FROM invocation_history
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query invocation history: %w", err)
	}
	defer rows.Close()

	var entries []InvocationEntry
	for rows.Next() {
		var entry InvocationEntry
		var success int
		var errMessage sql.NullString

		if err := rows.Scan(&entry.ID, &entry.ToolName, &entry.Locator, &success, &errMessage, &entry.DurationMs, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invocation record: %w", err)
		}

		entry.Success = success != 0
		entry.Error = errMessage.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
