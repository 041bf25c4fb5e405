package mock

import (
	"context"

	"github.com/wayharvest/wayharvest"
)

var _ wayharvest.SnapshotSource = (*SnapshotSource)(nil)

// SnapshotSource is a mock implementation of wayharvest.SnapshotSource.
type SnapshotSource struct {
	ListFn func(ctx context.Context, query wayharvest.SnapshotQuery) ([]wayharvest.Snapshot, error)
}

func (s *SnapshotSource) List(ctx context.Context, query wayharvest.SnapshotQuery) ([]wayharvest.Snapshot, error) {
	return s.ListFn(ctx, query)
}
