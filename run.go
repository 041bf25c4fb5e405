package wayharvest

import (
	"context"
	"time"
)

// Run records one harvest invocation for audit.
type Run struct {
	ID   string `json:"id"`
	Site string `json:"site"`

	// From and To are the capture window the run was asked for. Zero values
	// mean the corresponding end was unbounded.
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	// Collected and Failed are the final page counts.
	Collected int `json:"collected"`
	Failed    int `json:"failed"`

	// Interrupted reports that the run was cut short; its pages were still
	// cleaned and saved.
	Interrupted bool `json:"interrupted"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Site == "" {
		return Errorf(EINVALID, "run site required")
	}
	return nil
}

// RunUpdate represents the fields recorded when a run finishes.
type RunUpdate struct {
	FinishedAt  *time.Time `json:"finishedAt"`
	Collected   *int       `json:"collected"`
	Failed      *int       `json:"failed"`
	Interrupted *bool      `json:"interrupted"`
}

// RunFilter represents a filter used by FindRuns.
type RunFilter struct {
	ID   *string `json:"id"`
	Site *string `json:"site"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunService manages harvest run records.
type RunService interface {
	// CreateRun creates a new run record.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// UpdateRun applies an update to an existing run and returns it.
	// Returns ENOTFOUND if the run does not exist.
	UpdateRun(ctx context.Context, id string, upd RunUpdate) (*Run, error)

	// DeleteRun permanently removes a run and its pages.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// PageFilter represents a filter used by FindPages.
type PageFilter struct {
	RunID *string `json:"runId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageService persists harvested pages under a run.
type PageService interface {
	// CreatePages stores a batch of pages belonging to a run.
	CreatePages(ctx context.Context, runID string, pages []*Page) error

	// FindPages retrieves pages matching the filter, in batch order.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)
}
