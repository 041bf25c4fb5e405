package mock

import (
	"context"

	"github.com/wayharvest/wayharvest"
)

var _ wayharvest.RunService = (*RunService)(nil)

// RunService is a mock implementation of wayharvest.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *wayharvest.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*wayharvest.Run, error)
	FindRunsFn    func(ctx context.Context, filter wayharvest.RunFilter) ([]*wayharvest.Run, error)
	UpdateRunFn   func(ctx context.Context, id string, upd wayharvest.RunUpdate) (*wayharvest.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *wayharvest.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*wayharvest.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter wayharvest.RunFilter) ([]*wayharvest.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) UpdateRun(ctx context.Context, id string, upd wayharvest.RunUpdate) (*wayharvest.Run, error) {
	return s.UpdateRunFn(ctx, id, upd)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
