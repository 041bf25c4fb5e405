package mock

import (
	"context"

	"github.com/wayharvest/wayharvest"
)

var _ wayharvest.PageService = (*PageService)(nil)

// PageService is a mock implementation of wayharvest.PageService.
type PageService struct {
	CreatePagesFn func(ctx context.Context, runID string, pages []*wayharvest.Page) error
	FindPagesFn   func(ctx context.Context, filter wayharvest.PageFilter) ([]*wayharvest.Page, error)
}

func (s *PageService) CreatePages(ctx context.Context, runID string, pages []*wayharvest.Page) error {
	return s.CreatePagesFn(ctx, runID, pages)
}

func (s *PageService) FindPages(ctx context.Context, filter wayharvest.PageFilter) ([]*wayharvest.Page, error) {
	return s.FindPagesFn(ctx, filter)
}
