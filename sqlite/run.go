package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wayharvest/wayharvest"
)

// Compile-time interface verification.
var _ wayharvest.RunService = (*RunService)(nil)

// RunService implements wayharvest.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run record.
func (s *RunService) CreateRun(ctx context.Context, run *wayharvest.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, site, from_ts, to_ts, started_at, finished_at, collected, failed, interrupted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Site, formatNullableTime(run.From), formatNullableTime(run.To),
		run.StartedAt.Format(time.RFC3339), formatNullableTime(run.FinishedAt),
		run.Collected, run.Failed, boolToInt(run.Interrupted))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*wayharvest.Run, error) {
	var run wayharvest.Run
	var fromTS, toTS, startedAt, finishedAt string
	var interrupted int

	err := s.db.QueryRowContext(ctx, `
		SELECT id, site, from_ts, to_ts, started_at, finished_at, collected, failed, interrupted
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Site, &fromTS, &toTS, &startedAt, &finishedAt,
		&run.Collected, &run.Failed, &interrupted)

	if err == sql.ErrNoRows {
		return nil, wayharvest.Errorf(wayharvest.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.From, err = parseNullableTime(fromTS, "from_ts"); err != nil {
		return nil, err
	}
	if run.To, err = parseNullableTime(toTS, "to_ts"); err != nil {
		return nil, err
	}
	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseNullableTime(finishedAt, "finished_at"); err != nil {
		return nil, err
	}
	run.Interrupted = interrupted != 0

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter wayharvest.RunFilter) ([]*wayharvest.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site, from_ts, to_ts, started_at, finished_at, collected, failed, interrupted FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, *filter.Site)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*wayharvest.Run
	for rows.Next() {
		var run wayharvest.Run
		var fromTS, toTS, startedAt, finishedAt string
		var interrupted int

		if err := rows.Scan(&run.ID, &run.Site, &fromTS, &toTS, &startedAt, &finishedAt,
			&run.Collected, &run.Failed, &interrupted); err != nil {
			return nil, err
		}

		if run.From, err = parseNullableTime(fromTS, "from_ts"); err != nil {
			return nil, err
		}
		if run.To, err = parseNullableTime(toTS, "to_ts"); err != nil {
			return nil, err
		}
		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseNullableTime(finishedAt, "finished_at"); err != nil {
			return nil, err
		}
		run.Interrupted = interrupted != 0

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// UpdateRun applies the final counts to an existing run and returns it.
func (s *RunService) UpdateRun(ctx context.Context, id string, upd wayharvest.RunUpdate) (*wayharvest.Run, error) {
	// First check if run exists
	run, err := s.FindRunByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.FinishedAt != nil {
		run.FinishedAt = *upd.FinishedAt
	}
	if upd.Collected != nil {
		run.Collected = *upd.Collected
	}
	if upd.Failed != nil {
		run.Failed = *upd.Failed
	}
	if upd.Interrupted != nil {
		run.Interrupted = *upd.Interrupted
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, collected = ?, failed = ?, interrupted = ?
		WHERE id = ?
	`, formatNullableTime(run.FinishedAt), run.Collected, run.Failed, boolToInt(run.Interrupted), id)

	if err != nil {
		return nil, err
	}

	return run, nil
}

// DeleteRun permanently removes a run. Its pages go with it via the
// foreign-key cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wayharvest.Errorf(wayharvest.ENOTFOUND, "run not found")
	}

	return nil
}
