package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one journaled render invocation.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	Folder        string
	VideoPath     string
	MetadataPath  string
	SRTPath       string
	OutputVideo   string
	TimestampMode string
	EntryCount    int
	Outcome       string
	ErrorMessage  string
}

// Duration returns how long the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// timeLayout is fixed width so started_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// NewRunID returns a fresh identifier for a render run.
func NewRunID() string {
	return uuid.NewString()
}

// Record inserts or replaces a run. A missing ID is generated.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = run.StartedAt
	}
	err := retryOnBusy(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO runs (
                id, started_at, finished_at, folder, video_path, metadata_path,
                srt_path, output_video, timestamp_mode, entry_count, outcome, error_message
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			run.StartedAt.UTC().Format(timeLayout),
			run.FinishedAt.UTC().Format(timeLayout),
			run.Folder,
			nullableString(run.VideoPath),
			nullableString(run.MetadataPath),
			nullableString(run.SRTPath),
			nullableString(run.OutputVideo),
			nullableString(run.TimestampMode),
			run.EntryCount,
			run.Outcome,
			nullableString(run.ErrorMessage),
		)
		return execErr
	})
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// Recent returns up to limit runs, newest first. A non-positive limit returns all runs.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, started_at, finished_at, folder, video_path, metadata_path,
        srt_path, output_video, timestamp_mode, entry_count, outcome, error_message
        FROM runs ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		run                                    Run
		startedAt, finishedAt                  string
		video, metadata, srt, output, mode, em sql.NullString
	)
	if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Folder, &video, &metadata,
		&srt, &output, &mode, &run.EntryCount, &run.Outcome, &em); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.StartedAt = parseTime(startedAt)
	run.FinishedAt = parseTime(finishedAt)
	run.VideoPath = video.String
	run.MetadataPath = metadata.String
	run.SRTPath = srt.String
	run.OutputVideo = output.String
	run.TimestampMode = mode.String
	run.ErrorMessage = em.String
	return run, nil
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
