package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/wayharvest/wayharvest/cmd/wayharvest"
)

// newTestMain returns a Main backed by a throwaway database file.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("runs command works against a fresh database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"runs"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs found")
	})

	t.Run("db flag overrides the database path", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		dbPath := filepath.Join(t.TempDir(), "override.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"runs", "--db", dbPath}, stdout, stderr)

		require.NoError(t, err)
		assert.FileExists(t, dbPath)
	})

	t.Run("delete without --force fails through the full stack", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"delete", "some-run-id"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("delete of unknown run reports not found", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"delete", "missing", "--force"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})

	t.Run("pages of unknown run reports not found", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"pages", "missing"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("unknown command returns a parse error", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)

		require.Error(t, err)
	})
}
