package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"launchpad/internal/domain"
	"launchpad/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// History implements ports.RunHistory using SQLite
type History struct {
	db        *sql.DB
	outputDir string
	dbPath    string
}

// Ensure History implements RunHistory
var _ ports.RunHistory = (*History)(nil)

// NewHistory creates a run history scoped to an output directory. Each
// output directory gets its own database file so unrelated sites never
// share history.
func NewHistory(outputDir string) *History {
	return &History{outputDir: outputDir}
}

// Open initializes the history database
func (h *History) Open() error {
	h.dbPath = databasePath(h.outputDir)

	if err := os.MkdirAll(filepath.Dir(h.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	// WAL mode so a concurrent reader never blocks a recording write
	db, err := sql.Open("sqlite", h.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	h.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_dir TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			entry_count INTEGER NOT NULL,
			digest TEXT NOT NULL,
			generated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pair ON runs(source_dir, output_dir, id);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// databasePath returns the path for the SQLite database
func databasePath(outputDir string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash output dir for unique DB name
	hash := hashPath(outputDir)

	return filepath.Join(dataHome, "launchpad", hash+".db")
}

// hashPath returns a short hash of a directory path
func hashPath(path string) string {
	h := sha256.Sum256([]byte(path))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// RecordRun stores a completed generation
func (h *History) RecordRun(run *domain.Run) error {
	res, err := h.db.Exec(`
		INSERT INTO runs (source_dir, output_dir, entry_count, digest, generated_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.SourceDir, run.OutputDir, run.EntryCount, run.Digest, run.GeneratedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		run.ID = id
	}
	return nil
}

// ListRuns returns up to limit runs, newest first
func (h *History) ListRuns(limit int) ([]domain.Run, error) {
	rows, err := h.db.Query(`
		SELECT id, source_dir, output_dir, entry_count, digest, generated_at
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var r domain.Run
		var ts int64
		if err := rows.Scan(&r.ID, &r.SourceDir, &r.OutputDir, &r.EntryCount, &r.Digest, &ts); err != nil {
			return nil, err
		}
		r.GeneratedAt = time.Unix(ts, 0)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// LastDigest returns the page digest of the most recent run for the
// given source/output pair, or "" if none exists
func (h *History) LastDigest(sourceDir, outputDir string) (string, error) {
	var digest string

	err := h.db.QueryRow(`
		SELECT digest FROM runs
		WHERE source_dir = ? AND output_dir = ?
		ORDER BY id DESC LIMIT 1
	`, sourceDir, outputDir).Scan(&digest)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return digest, nil
}
