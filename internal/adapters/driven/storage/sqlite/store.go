package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/verdant-labs/obsync-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/verdant-labs/obsync-cli/internal/core/domain"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunStore = (*Store)(nil)

// Store is a SQLite-backed run-history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a run store at the specified data directory.
// If dataDir is empty, defaults to ~/.obsync/data/runs.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".obsync", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "runs.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

const runColumns = `id, user_id, started_at, finished_at, ids_listed, fetched,
	created, updated, unchanged, fetch_errors, read_errors, write_errors`

// SaveRun stores a completed run report.
func (s *Store) SaveRun(ctx context.Context, run *domain.SyncRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			finished_at = excluded.finished_at,
			ids_listed = excluded.ids_listed,
			fetched = excluded.fetched,
			created = excluded.created,
			updated = excluded.updated,
			unchanged = excluded.unchanged,
			fetch_errors = excluded.fetch_errors,
			read_errors = excluded.read_errors,
			write_errors = excluded.write_errors
	`, run.ID, run.UserID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.IDsListed, run.Fetched, run.Created, run.Updated, run.Unchanged,
		run.FetchErrors, run.ReadErrors, run.WriteErrors)
	if err != nil {
		return fmt.Errorf("saving sync run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.SyncRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync runs: %w", err)
	}
	return runs, nil
}

// LastRun returns the most recent run, or domain.ErrNotFound.
func (s *Store) LastRun(ctx context.Context) (*domain.SyncRun, error) {
	runs, err := s.ListRuns(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &runs[0], nil
}

// scanner abstracts sql.Row and sql.Rows for scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.SyncRun, error) {
	var run domain.SyncRun
	var startedAt, finishedAt string

	err := row.Scan(&run.ID, &run.UserID, &startedAt, &finishedAt,
		&run.IDsListed, &run.Fetched, &run.Created, &run.Updated, &run.Unchanged,
		&run.FetchErrors, &run.ReadErrors, &run.WriteErrors)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning sync run: %w", err)
	}

	if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
		return nil, fmt.Errorf("parsing finished_at: %w", err)
	}
	return &run, nil
}
