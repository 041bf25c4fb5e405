package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayharvest/wayharvest"
	"github.com/wayharvest/wayharvest/sqlite"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID and start time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &wayharvest.Run{Site: "example.com"}

		err := svc.CreateRun(ctx, run)
		require.NoError(t, err)

		assert.NotEmpty(t, run.ID, "ID should be generated")
		assert.False(t, run.StartedAt.IsZero(), "StartedAt should be set")
	})

	t.Run("preserves a caller-provided start time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		run := &wayharvest.Run{Site: "example.com", StartedAt: started}

		require.NoError(t, svc.CreateRun(ctx, run))
		assert.Equal(t, started, run.StartedAt)

		found, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, started, found.StartedAt)
	})

	t.Run("returns error for invalid run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &wayharvest.Run{} // missing site

		err := svc.CreateRun(ctx, run)
		require.Error(t, err)
		assert.Equal(t, wayharvest.EINVALID, wayharvest.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("returns run when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &wayharvest.Run{
			Site: "example.com",
			From: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2005, 6, 30, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, svc.CreateRun(ctx, run))

		found, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, found.ID)
		assert.Equal(t, "example.com", found.Site)
		assert.Equal(t, run.From, found.From)
		assert.Equal(t, run.To, found.To)
		assert.True(t, found.FinishedAt.IsZero(), "new runs have no finish time")
		assert.False(t, found.Interrupted)
	})

	t.Run("keeps unbounded window ends as zero times", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &wayharvest.Run{Site: "example.com"}
		require.NoError(t, svc.CreateRun(ctx, run))

		found, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.True(t, found.From.IsZero())
		assert.True(t, found.To.IsZero())
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		_, err := svc.FindRunByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, wayharvest.ENOTFOUND, wayharvest.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns all runs with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			run := &wayharvest.Run{Site: "example.com"}
			require.NoError(t, svc.CreateRun(ctx, run))
		}

		runs, err := svc.FindRuns(ctx, wayharvest.RunFilter{})
		require.NoError(t, err)
		assert.Len(t, runs, 3)
	})

	t.Run("filters by site", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateRun(ctx, &wayharvest.Run{Site: "alpha.example.com"}))
		require.NoError(t, svc.CreateRun(ctx, &wayharvest.Run{Site: "beta.example.com"}))

		site := "alpha.example.com"
		runs, err := svc.FindRuns(ctx, wayharvest.RunFilter{Site: &site})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "alpha.example.com", runs[0].Site)
	})

	t.Run("orders newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		older := &wayharvest.Run{
			Site:      "example.com",
			StartedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		}
		newer := &wayharvest.Run{
			Site:      "example.com",
			StartedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		}
		require.NoError(t, svc.CreateRun(ctx, older))
		require.NoError(t, svc.CreateRun(ctx, newer))

		runs, err := svc.FindRuns(ctx, wayharvest.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, newer.ID, runs[0].ID)
		assert.Equal(t, older.ID, runs[1].ID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			run := &wayharvest.Run{Site: "example.com"}
			require.NoError(t, svc.CreateRun(ctx, run))
		}

		runs, err := svc.FindRuns(ctx, wayharvest.RunFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}

func TestRunService_UpdateRun(t *testing.T) {
	t.Parallel()

	t.Run("records final counts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &wayharvest.Run{Site: "example.com"}
		require.NoError(t, svc.CreateRun(ctx, run))

		finished := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
		collected, failed, interrupted := 42, 3, true
		updated, err := svc.UpdateRun(ctx, run.ID, wayharvest.RunUpdate{
			FinishedAt:  &finished,
			Collected:   &collected,
			Failed:      &failed,
			Interrupted: &interrupted,
		})
		require.NoError(t, err)

		assert.Equal(t, finished, updated.FinishedAt)
		assert.Equal(t, 42, updated.Collected)
		assert.Equal(t, 3, updated.Failed)
		assert.True(t, updated.Interrupted)

		// Verify persistence
		found, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, finished, found.FinishedAt)
		assert.Equal(t, 42, found.Collected)
		assert.True(t, found.Interrupted)
	})

	t.Run("leaves omitted fields unchanged", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &wayharvest.Run{Site: "example.com"}
		require.NoError(t, svc.CreateRun(ctx, run))

		collected := 10
		_, err := svc.UpdateRun(ctx, run.ID, wayharvest.RunUpdate{Collected: &collected})
		require.NoError(t, err)

		found, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, found.Collected)
		assert.Equal(t, 0, found.Failed)
		assert.True(t, found.FinishedAt.IsZero())
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		collected := 1
		_, err := svc.UpdateRun(ctx, "nonexistent-id", wayharvest.RunUpdate{Collected: &collected})
		require.Error(t, err)
		assert.Equal(t, wayharvest.ENOTFOUND, wayharvest.ErrorCode(err))
	})
}

func TestRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &wayharvest.Run{Site: "example.com"}
		require.NoError(t, svc.CreateRun(ctx, run))

		err := svc.DeleteRun(ctx, run.ID)
		require.NoError(t, err)

		_, err = svc.FindRunByID(ctx, run.ID)
		assert.Equal(t, wayharvest.ENOTFOUND, wayharvest.ErrorCode(err))
	})

	t.Run("cascades to the run's pages", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		runSvc := sqlite.NewRunService(db)
		pageSvc := sqlite.NewPageService(db)
		ctx := context.Background()

		run := &wayharvest.Run{Site: "example.com"}
		require.NoError(t, runSvc.CreateRun(ctx, run))

		pages := []*wayharvest.Page{
			{Seq: 0, Timestamp: "20040101000000", OriginalURL: "http://example.com/"},
			{Seq: 1, Timestamp: "20040201000000", OriginalURL: "http://example.com/about"},
		}
		require.NoError(t, pageSvc.CreatePages(ctx, run.ID, pages))

		require.NoError(t, runSvc.DeleteRun(ctx, run.ID))

		found, err := pageSvc.FindPages(ctx, wayharvest.PageFilter{RunID: &run.ID})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		err := svc.DeleteRun(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, wayharvest.ENOTFOUND, wayharvest.ErrorCode(err))
	})
}
