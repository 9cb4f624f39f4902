package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Run describes one completed build.
type Run struct {
	ID                   string
	StartedAt            time.Time
	FinishedAt           time.Time
	Dataset              string
	ExposureTag          string
	SamplesTotal         int
	SamplesKept          int
	SamplesSkipped       int
	ConfMatched          int
	ConfMissing          int
	TableKept            int
	TableSkippedExposure int
	TableSkippedRank     int
	OutDir               string
}

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run-history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun inserts a run, assigning it a fresh identifier.
func (s *Store) RecordRun(ctx context.Context, run Run) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	run.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, started_at, finished_at, dataset, exposure_tag,
			samples_total, samples_kept, samples_skipped,
			conf_matched, conf_missing,
			table_kept, table_skipped_exposure, table_skipped_rank,
			out_dir
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Dataset,
		run.ExposureTag,
		run.SamplesTotal,
		run.SamplesKept,
		run.SamplesSkipped,
		run.ConfMatched,
		run.ConfMissing,
		run.TableKept,
		run.TableSkippedExposure,
		run.TableSkippedRank,
		run.OutDir,
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return run.ID, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, dataset, exposure_tag,
			samples_total, samples_kept, samples_skipped,
			conf_matched, conf_missing,
			table_kept, table_skipped_exposure, table_skipped_rank,
			out_dir
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			started  string
			finished string
		)
		if err := rows.Scan(
			&run.ID, &started, &finished, &run.Dataset, &run.ExposureTag,
			&run.SamplesTotal, &run.SamplesKept, &run.SamplesSkipped,
			&run.ConfMatched, &run.ConfMissing,
			&run.TableKept, &run.TableSkippedExposure, &run.TableSkippedRank,
			&run.OutDir,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at for run %s: %w", run.ID, err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at for run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
