package stores

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"crm-reporting/internal/models"
	"crm-reporting/internal/shared/loggers"

	_ "github.com/mattn/go-sqlite3"
)

//go:generate mockgen -source=latency_store.go -destination=./mocks/latency_store_mock.go -package=mocks
type LatencyStore interface {
	// Save inserts one latency sample. Duplicate timestamps are legal and
	// simply produce duplicate rows.
	Save(ctx context.Context, latencyMS int64, timestamp time.Time) error
	// MaxForDate returns the sample with the greatest latency on the given
	// calendar date (YYYY-MM-DD), earliest timestamp winning ties, or nil
	// when no samples exist for that date.
	MaxForDate(ctx context.Context, date string) (*models.LatencySample, error)
	// DeleteForDate removes every sample on the given date and returns the
	// number of rows removed. Deleting an empty date returns 0.
	DeleteForDate(ctx context.Context, date string) (int64, error)
	// AllForDate returns the date's samples ascending by timestamp.
	AllForDate(ctx context.Context, date string) ([]models.LatencySample, error)
}

type sqliteLatencyStore struct {
	path string
}

// NewLatencyStore opens (creating if needed) the SQLite file at path and
// ensures the latency table and its timestamp index exist. Re-running the
// schema setup against an existing file is a no-op.
func NewLatencyStore(path string) (LatencyStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errStoreInitFailed(err)
		}
	}

	store := &sqliteLatencyStore{path: path}
	if err := store.initSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *sqliteLatencyStore) initSchema() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS latency (
			timestamp TEXT NOT NULL,
			latency_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_latency_timestamp ON latency(timestamp)`,
	}
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return errStoreInitFailed(err)
		}
	}
	return nil
}

// open returns a fresh connection; every operation opens and closes its own,
// so each statement auto-commits independently.
func (s *sqliteLatencyStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, errStoreInitFailed(err)
	}
	return db, nil
}

func (s *sqliteLatencyStore) Save(ctx context.Context, latencyMS int64, timestamp time.Time) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	formatted := models.FormatTimestamp(timestamp)
	_, err = db.ExecContext(ctx,
		`INSERT INTO latency (timestamp, latency_ms) VALUES (?, ?)`,
		formatted, latencyMS,
	)
	if err != nil {
		return errStoreOperationFailed("save", err)
	}

	metricSamplesSavedTotal.WithLabelValues().Inc()
	loggers.Ctx(ctx).Info().
		Int64("latency_ms", latencyMS).
		Str("timestamp", formatted).
		Msg("latency sample saved")
	return nil
}

func (s *sqliteLatencyStore) MaxForDate(ctx context.Context, date string) (*models.LatencySample, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	row := db.QueryRowContext(ctx,
		`SELECT timestamp, latency_ms
		 FROM latency
		 WHERE date(timestamp) = ?
		 ORDER BY latency_ms DESC, timestamp ASC
		 LIMIT 1`,
		date,
	)

	var sample models.LatencySample
	if err := row.Scan(&sample.Timestamp, &sample.LatencyMS); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			loggers.Ctx(ctx).Info().Str(loggers.FieldReportDate, date).Msg("no latency samples for date")
			return nil, nil
		}
		return nil, errStoreOperationFailed("max_for_date", err)
	}

	return &sample, nil
}

func (s *sqliteLatencyStore) DeleteForDate(ctx context.Context, date string) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	result, err := db.ExecContext(ctx,
		`DELETE FROM latency WHERE date(timestamp) = ?`,
		date,
	)
	if err != nil {
		return 0, errStoreOperationFailed("delete_for_date", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, errStoreOperationFailed("delete_for_date", err)
	}

	metricSamplesDeletedTotal.WithLabelValues().Add(float64(deleted))
	loggers.Ctx(ctx).Info().
		Str(loggers.FieldReportDate, date).
		Int64("deleted", deleted).
		Msg("latency samples deleted")
	return deleted, nil
}

func (s *sqliteLatencyStore) AllForDate(ctx context.Context, date string) ([]models.LatencySample, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT timestamp, latency_ms
		 FROM latency
		 WHERE date(timestamp) = ?
		 ORDER BY timestamp`,
		date,
	)
	if err != nil {
		return nil, errStoreOperationFailed("all_for_date", err)
	}
	defer rows.Close()

	var samples []models.LatencySample
	for rows.Next() {
		var sample models.LatencySample
		if err := rows.Scan(&sample.Timestamp, &sample.LatencyMS); err != nil {
			return nil, errStoreOperationFailed("all_for_date", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, errStoreOperationFailed("all_for_date", err)
	}

	return samples, nil
}
